package codec

import "fmt"

// Codec is a block-level compression capability record: a flat set of pure
// functions over caller-owned buffers, with no shared mutable state between
// calls. It replaces a class-hierarchy design with something that can be
// looked up from a table and invoked directly from any goroutine.
//
// CompressBlock and UncompressBlock never retain dst or src after returning.
// A return value of 0 from CompressBlock means the codec judged the block
// incompressible; callers fall back to storing it verbatim. A return value
// of 0 from UncompressBlock means decompression failed.
type Codec interface {
	// AlgorithmName identifies the codec in error messages and performance
	// reports.
	AlgorithmName() string

	// MaxCompressionLevel returns the highest level accepted by
	// CompressBlock. Levels are always in [1, MaxCompressionLevel()].
	MaxCompressionLevel() int

	// DefaultCompressionLevel returns the level used when a caller requests
	// level 0 ("unset").
	DefaultCompressionLevel() int

	// MinBlockSize returns the smallest subblock size this codec will
	// attempt to compress; smaller blocks are stored verbatim without being
	// offered to the codec at all.
	MinBlockSize() int

	// MaxBlockSize returns the largest subblock size this codec supports.
	MaxBlockSize() int

	// MaxCompressedBlockSize returns a safe upper bound on the number of
	// bytes CompressBlock can produce for an uncompressed block of the
	// given size. Callers allocate dst at this size before calling
	// CompressBlock.
	MaxCompressedBlockSize(uncompressedSize int) int

	// CompressBlock compresses src into dst and returns the number of bytes
	// written. It returns 0 if src is incompressible or len(dst) is too
	// small to hold the result.
	CompressBlock(dst, src []byte, level int) int

	// UncompressBlock decompresses src into dst and returns the number of
	// bytes written. It returns 0 on failure.
	UncompressBlock(dst, src []byte) int
}

// AlgorithmType identifies one of the built-in codecs.
type AlgorithmType uint8

const (
	AlgorithmNoop AlgorithmType = iota + 1
	AlgorithmDeflate
	AlgorithmLZ4
	AlgorithmLZ4HC
	AlgorithmZstd
	AlgorithmS2
)

// String implements fmt.Stringer.
func (a AlgorithmType) String() string {
	switch a {
	case AlgorithmNoop:
		return "noop"
	case AlgorithmDeflate:
		return "deflate"
	case AlgorithmLZ4:
		return "lz4"
	case AlgorithmLZ4HC:
		return "lz4hc"
	case AlgorithmZstd:
		return "zstd"
	case AlgorithmS2:
		return "s2"
	default:
		return fmt.Sprintf("AlgorithmType(%d)", uint8(a))
	}
}

// CreateCodec is a factory function that creates a Codec for the given
// algorithm.
func CreateCodec(algorithm AlgorithmType) (Codec, error) {
	switch algorithm {
	case AlgorithmNoop:
		return NewNoopCodec(), nil
	case AlgorithmDeflate:
		return NewDeflateCodec(), nil
	case AlgorithmLZ4:
		return NewLZ4Codec(), nil
	case AlgorithmLZ4HC:
		return NewLZ4HCCodec(), nil
	case AlgorithmZstd:
		return NewZstdCodec(), nil
	case AlgorithmS2:
		return NewS2Codec(), nil
	default:
		return nil, fmt.Errorf("invalid compression algorithm: %s", algorithm)
	}
}

var builtinCodecs = map[AlgorithmType]Codec{
	AlgorithmNoop:    NewNoopCodec(),
	AlgorithmDeflate: NewDeflateCodec(),
	AlgorithmLZ4:     NewLZ4Codec(),
	AlgorithmLZ4HC:   NewLZ4HCCodec(),
	AlgorithmZstd:    NewZstdCodec(),
	AlgorithmS2:      NewS2Codec(),
}

// GetCodec retrieves a built-in Codec for the given algorithm.
func GetCodec(algorithm AlgorithmType) (Codec, error) {
	if c, ok := builtinCodecs[algorithm]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("unsupported compression algorithm: %s", algorithm)
}
