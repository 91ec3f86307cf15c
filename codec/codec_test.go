package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockworksio/parablock/codec"
)

func allCodecs() []codec.Codec {
	return []codec.Codec{
		codec.NewNoopCodec(),
		codec.NewDeflateCodec(),
		codec.NewLZ4Codec(),
		codec.NewLZ4HCCodec(),
		codec.NewZstdCodec(),
		codec.NewS2Codec(),
	}
}

func TestCreateCodec(t *testing.T) {
	for _, algo := range []codec.AlgorithmType{
		codec.AlgorithmNoop, codec.AlgorithmDeflate, codec.AlgorithmLZ4,
		codec.AlgorithmLZ4HC, codec.AlgorithmZstd, codec.AlgorithmS2,
	} {
		c, err := codec.CreateCodec(algo)
		require.NoError(t, err)
		assert.Equal(t, algo.String(), c.AlgorithmName())
	}

	_, err := codec.CreateCodec(codec.AlgorithmType(255))
	assert.Error(t, err)
}

func TestGetCodec(t *testing.T) {
	c, err := codec.GetCodec(codec.AlgorithmLZ4)
	require.NoError(t, err)
	assert.Equal(t, "lz4", c.AlgorithmName())

	_, err = codec.GetCodec(codec.AlgorithmType(255))
	assert.Error(t, err)
}

func TestAlgorithmTypeString(t *testing.T) {
	assert.Equal(t, "lz4hc", codec.AlgorithmLZ4HC.String())
	assert.Contains(t, codec.AlgorithmType(255).String(), "255")
}

// TestCodecRoundTrip exercises every registered codec's basic
// compress/uncompress round trip against compressible and incompressible
// inputs, using buffers sized exactly the way the engine sizes them.
func TestCodecRoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"zeros":     make([]byte, 8192),
		"repeating": repeatingBytes(8192),
		"random":    randomBytes(8192),
	}

	for _, c := range allCodecs() {
		c := c
		for name, src := range inputs {
			name, src := name, src
			t.Run(c.AlgorithmName()+"/"+name, func(t *testing.T) {
				dst := make([]byte, c.MaxCompressedBlockSize(len(src)))
				n := c.CompressBlock(dst, src, c.DefaultCompressionLevel())

				out := make([]byte, len(src))
				if n == 0 {
					// Codec gave up; engine would fall back to verbatim storage.
					copy(out, src)
				} else {
					m := c.UncompressBlock(out, dst[:n])
					require.Equal(t, len(src), m)
				}

				assert.Equal(t, src, out)
			})
		}
	}
}

// TestCodecMaxCompressedBlockSizeBound checks that the declared bound is
// never smaller than what CompressBlock actually needs for incompressible
// input, for every codec that can report a non-zero result.
func TestCodecMaxCompressedBlockSizeBound(t *testing.T) {
	src := randomBytes(16384)

	for _, c := range allCodecs() {
		c := c
		t.Run(c.AlgorithmName(), func(t *testing.T) {
			bound := c.MaxCompressedBlockSize(len(src))
			dst := make([]byte, bound)
			n := c.CompressBlock(dst, src, c.DefaultCompressionLevel())
			assert.LessOrEqual(t, n, bound)
		})
	}
}

func repeatingBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 7)
	}
	return b
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	x := uint32(0x2545F491)
	for i := range b {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		b[i] = byte(x)
	}
	return b
}
