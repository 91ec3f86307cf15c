package codec

import (
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse. lz4.Compressor
// carries an internal hash table that benefits from reuse across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec is the fast LZ77-class codec: lower compression ratio than
// LZ4HCCodec but considerably less CPU per byte.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

func (LZ4Codec) AlgorithmName() string { return "lz4" }

// MaxCompressionLevel is 1: the fast LZ4 encoder has no level knob, unlike
// its high-compression sibling LZ4HCCodec.
func (LZ4Codec) MaxCompressionLevel() int { return 1 }

func (LZ4Codec) DefaultCompressionLevel() int { return 1 }

func (LZ4Codec) MinBlockSize() int { return 32 }

func (LZ4Codec) MaxBlockSize() int { return 4 << 20 }

func (LZ4Codec) MaxCompressedBlockSize(uncompressedSize int) int {
	return lz4.CompressBlockBound(uncompressedSize)
}

// CompressBlock compresses src into dst using a pooled lz4.Compressor.
func (LZ4Codec) CompressBlock(dst, src []byte, level int) int {
	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst)
	if err != nil {
		return 0
	}

	return n
}

// UncompressBlock decompresses src into dst, which must be sized exactly to
// the declared uncompressed length.
func (LZ4Codec) UncompressBlock(dst, src []byte) int {
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return 0
	}

	return n
}
