package codec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

// DeflateCodec is the DEFLATE-class codec, built on klauspost/compress's
// drop-in replacement for compress/flate.
type DeflateCodec struct{}

var _ Codec = DeflateCodec{}

// NewDeflateCodec creates a new DEFLATE codec.
func NewDeflateCodec() DeflateCodec {
	return DeflateCodec{}
}

func (DeflateCodec) AlgorithmName() string { return "deflate" }

func (DeflateCodec) MaxCompressionLevel() int { return flate.BestCompression }

func (DeflateCodec) DefaultCompressionLevel() int { return 6 }

func (DeflateCodec) MinBlockSize() int { return 64 }

func (DeflateCodec) MaxBlockSize() int { return 1 << 20 }

// MaxCompressedBlockSize uses the classic zlib deflateBound expansion
// margin, which covers the worst case of fully incompressible input.
func (DeflateCodec) MaxCompressedBlockSize(uncompressedSize int) int {
	n := uncompressedSize
	return n + n>>12 + n>>14 + n>>25 + 13
}

// CompressBlock compresses src into dst at the given level, falling back to
// DefaultCompressionLevel when level is unset or out of range.
func (c DeflateCodec) CompressBlock(dst, src []byte, level int) int {
	if level <= 0 || level > flate.BestCompression {
		level = c.DefaultCompressionLevel()
	}

	var buf bytes.Buffer
	buf.Grow(len(dst))

	zw, err := flate.NewWriter(&buf, level)
	if err != nil {
		return 0
	}
	if _, err := zw.Write(src); err != nil {
		return 0
	}
	if err := zw.Close(); err != nil {
		return 0
	}

	if buf.Len() > len(dst) {
		return 0
	}

	return copy(dst, buf.Bytes())
}

// UncompressBlock decompresses src into dst, which must be sized exactly to
// the declared uncompressed length.
func (DeflateCodec) UncompressBlock(dst, src []byte) int {
	zr := flate.NewReader(bytes.NewReader(src))
	defer zr.Close()

	n, err := io.ReadFull(zr, dst)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0
	}

	return n
}
