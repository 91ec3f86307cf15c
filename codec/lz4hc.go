package codec

import "github.com/pierrec/lz4/v4"

// lz4hcLevels maps our 1-9 level scale onto the library's own
// CompressionLevel constants, so callers never have to know their values.
var lz4hcLevels = [...]lz4.CompressionLevel{
	lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4, lz4.Level5,
	lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

// LZ4HCCodec is the high-ratio variant of the LZ4 family: same block format
// and decompressor as LZ4Codec, but a slower, more thorough encoder.
type LZ4HCCodec struct{}

var _ Codec = LZ4HCCodec{}

// NewLZ4HCCodec creates a new high-compression LZ4 codec.
func NewLZ4HCCodec() LZ4HCCodec {
	return LZ4HCCodec{}
}

func (LZ4HCCodec) AlgorithmName() string { return "lz4hc" }

func (LZ4HCCodec) MaxCompressionLevel() int { return len(lz4hcLevels) }

func (LZ4HCCodec) DefaultCompressionLevel() int { return len(lz4hcLevels) }

func (LZ4HCCodec) MinBlockSize() int { return 32 }

func (LZ4HCCodec) MaxBlockSize() int { return 4 << 20 }

func (LZ4HCCodec) MaxCompressedBlockSize(uncompressedSize int) int {
	return lz4.CompressBlockBound(uncompressedSize)
}

// CompressBlock compresses src into dst at the given level, clamped into
// [1, MaxCompressionLevel()].
func (c LZ4HCCodec) CompressBlock(dst, src []byte, level int) int {
	if level < 1 || level > len(lz4hcLevels) {
		level = c.DefaultCompressionLevel()
	}

	hc := lz4.CompressorHC{Level: lz4hcLevels[level-1]}
	n, err := hc.CompressBlock(src, dst)
	if err != nil {
		return 0
	}

	return n
}

// UncompressBlock decompresses src into dst; LZ4HC shares its wire format
// and decompressor with the fast encoder.
func (LZ4HCCodec) UncompressBlock(dst, src []byte) int {
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return 0
	}

	return n
}
