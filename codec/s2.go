package codec

import "github.com/klauspost/compress/s2"

// S2Codec is an optional fast Snappy-family codec, offered alongside the
// three required codec classes for workloads that favor S2's very low
// decompression cost over LZ4's slightly better ratio.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates a new S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

func (S2Codec) AlgorithmName() string { return "s2" }

func (S2Codec) MaxCompressionLevel() int { return 1 }

func (S2Codec) DefaultCompressionLevel() int { return 1 }

func (S2Codec) MinBlockSize() int { return 32 }

func (S2Codec) MaxBlockSize() int { return 4 << 20 }

func (S2Codec) MaxCompressedBlockSize(uncompressedSize int) int {
	return s2.MaxEncodedLen(uncompressedSize)
}

func (S2Codec) CompressBlock(dst, src []byte, level int) int {
	out := s2.Encode(dst[:0], src)
	if len(out) > len(dst) {
		return 0
	}

	return copy(dst, out)
}

func (S2Codec) UncompressBlock(dst, src []byte) int {
	n, err := s2.DecodedLen(src)
	if err != nil || n > len(dst) {
		return 0
	}

	out, err := s2.Decode(dst[:n], src)
	if err != nil {
		return 0
	}

	return len(out)
}
