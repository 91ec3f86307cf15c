//go:build !nobuild

package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdEncoderLevels maps our 1-4 level scale onto the library's own speed
// presets.
var zstdEncoderLevels = [...]zstd.EncoderLevel{
	zstd.SpeedFastest, zstd.SpeedDefault, zstd.SpeedBetterCompression, zstd.SpeedBestCompression,
}

// zstdEncoderPools pools one *zstd.Encoder per level: the encoder is
// designed for reuse once warmed up, but its level is fixed at construction.
var zstdEncoderPools = func() [len(zstdEncoderLevels)]*sync.Pool {
	var pools [len(zstdEncoderLevels)]*sync.Pool
	for i, lvl := range zstdEncoderLevels {
		lvl := lvl
		pools[i] = &sync.Pool{
			New: func() any {
				enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(lvl), zstd.WithEncoderCRC(false))
				if err != nil {
					panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
				}
				return enc
			},
		}
	}
	return pools
}()

// zstdDecoderPool pools zstd decoders for reuse; klauspost/compress/zstd is
// explicitly designed to operate without allocation after a warmup when the
// decoder is reused across calls.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return dec
	},
}

// CompressBlock compresses src into dst at the given level, clamped into
// [1, MaxCompressionLevel()].
func (c ZstdCodec) CompressBlock(dst, src []byte, level int) int {
	if level < 1 || level > len(zstdEncoderLevels) {
		level = c.DefaultCompressionLevel()
	}

	pool := zstdEncoderPools[level-1]
	enc := pool.Get().(*zstd.Encoder)
	defer pool.Put(enc)

	out := enc.EncodeAll(src, nil)
	if len(out) > len(dst) {
		return 0
	}

	return copy(dst, out)
}

// UncompressBlock decompresses src into dst using a pooled decoder.
func (ZstdCodec) UncompressBlock(dst, src []byte) int {
	dec := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	out, err := dec.DecodeAll(src, nil)
	if err != nil || len(out) > len(dst) {
		return 0
	}

	return copy(dst, out)
}
