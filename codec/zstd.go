package codec

// ZstdCodec is an optional additional high-ratio codec, kept alongside the
// required LZ4HCCodec for workloads where zstd's better ratio is worth its
// higher CPU cost. It is a different algorithm family than the LZ77 one
// LZ4HCCodec represents, so it does not itself satisfy the "high-ratio
// variant of the same LZ77 family" requirement.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a new Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

func (ZstdCodec) AlgorithmName() string { return "zstd" }

func (ZstdCodec) MaxCompressionLevel() int { return 4 }

func (ZstdCodec) DefaultCompressionLevel() int { return 1 }

func (ZstdCodec) MinBlockSize() int { return 64 }

func (ZstdCodec) MaxBlockSize() int { return 4 << 20 }

// MaxCompressedBlockSize uses zstd's small, roughly constant worst-case
// expansion margin; the library exports no block-bound function comparable
// to flate's deflateBound or lz4's CompressBlockBound.
func (ZstdCodec) MaxCompressedBlockSize(uncompressedSize int) int {
	return uncompressedSize + uncompressedSize>>8 + 64
}
