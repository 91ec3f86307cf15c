//go:build nobuild

package codec

import "github.com/valyala/gozstd"

// CompressBlock compresses src into dst via the cgo-backed gozstd binding.
// Kept dormant behind the nobuild tag exactly as the teacher gates it: cgo
// zstd needs a C toolchain at build time that a pure-Go module should not
// require by default.
func (c ZstdCodec) CompressBlock(dst, src []byte, level int) int {
	if level < 1 {
		level = 3
	}

	out := gozstd.CompressLevel(nil, src, level)
	if len(out) > len(dst) {
		return 0
	}

	return copy(dst, out)
}

func (ZstdCodec) UncompressBlock(dst, src []byte) int {
	out, err := gozstd.Decompress(nil, src)
	if err != nil || len(out) > len(dst) {
		return 0
	}

	return copy(dst, out)
}
