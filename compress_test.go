package parablock_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockworksio/parablock"
	"github.com/blockworksio/parablock/codec"
)

func roundTrip(t *testing.T, data []byte, cfg *parablock.Config) []byte {
	t.Helper()

	subblocks, err := parablock.Compress(data, cfg, nil)
	require.NoError(t, err)

	if len(subblocks) == 0 {
		return nil
	}

	dst := make([]byte, subblocks.TotalUncompressedSize())
	n, err := parablock.Uncompress(dst, subblocks, cfg, nil)
	require.NoError(t, err)
	require.Equal(t, len(dst), n)

	return dst
}

func TestCompressEmptyInput(t *testing.T) {
	cfg, err := parablock.NewConfig(codec.NewLZ4Codec())
	require.NoError(t, err)

	subblocks, err := parablock.Compress(nil, cfg, nil)
	require.NoError(t, err)
	assert.Nil(t, subblocks)
}

func TestCompressAllZeroRoundTrip(t *testing.T) {
	const total = 1 << 20
	const numSubblocks = 16

	cfg, err := parablock.NewConfig(codec.NewDeflateCodec(), parablock.WithSubblockSize(total/numSubblocks))
	require.NoError(t, err)

	data := make([]byte, total)

	var perf parablock.Performance
	subblocks, err := parablock.Compress(data, cfg, &perf)
	require.NoError(t, err)
	require.Len(t, subblocks, numSubblocks)

	dst := make([]byte, total)
	n, err := parablock.Uncompress(dst, subblocks, cfg, nil)
	require.NoError(t, err)
	require.Equal(t, total, n)
	assert.Equal(t, data, dst)

	assert.Greater(t, perf.SizeReduction, 0.9, "all-zero data should compress to near nothing")
}

func TestCompressIncompressibleDataGivesUp(t *testing.T) {
	// A tiny random-looking input, smaller than LZ4's MinBlockSize, is
	// stored verbatim; its footprint (payload + record overhead) is then
	// larger than the input itself, so Compress gives up entirely.
	data := []byte{0x9e, 0x01, 0xfa, 0x77, 0x3c, 0x44, 0x8b, 0x12}

	cfg, err := parablock.NewConfig(codec.NewLZ4Codec())
	require.NoError(t, err)

	subblocks, err := parablock.Compress(data, cfg, nil)
	require.NoError(t, err)
	assert.Empty(t, subblocks)
}

func TestCompressShuffleImprovesFootprint(t *testing.T) {
	// A sorted int32 array shuffled into byte planes groups like-valued
	// high bytes together, which a generic byte-oriented codec compresses
	// much better than the natural interleaved layout.
	const n = 4096
	data := make([]byte, n*4)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(data[i*4:], uint32(i))
	}

	base, err := parablock.NewConfig(codec.NewDeflateCodec())
	require.NoError(t, err)

	shuffled, err := parablock.NewConfig(codec.NewDeflateCodec(),
		parablock.WithByteShuffling(true), parablock.WithItemSize(4))
	require.NoError(t, err)

	var perfBase, perfShuffled parablock.Performance

	subblocksBase, err := parablock.Compress(data, base, &perfBase)
	require.NoError(t, err)
	subblocksShuffled, err := parablock.Compress(data, shuffled, &perfShuffled)
	require.NoError(t, err)

	footprintBase := len(data)
	if len(subblocksBase) > 0 {
		footprintBase = 0
		for _, sb := range subblocksBase {
			footprintBase += len(sb.Payload)
		}
	}

	footprintShuffled := len(data)
	if len(subblocksShuffled) > 0 {
		footprintShuffled = 0
		for _, sb := range subblocksShuffled {
			footprintShuffled += len(sb.Payload)
		}
	}

	assert.Less(t, footprintShuffled, footprintBase,
		"shuffling should improve compressibility of a sorted int32 array")

	// Round trip must still recover the exact original regardless.
	dst := roundTrip(t, data, shuffled)
	assert.Equal(t, data, dst)
}

func TestCompressWorkerCountDeterminism(t *testing.T) {
	data := make([]byte, 256*1024)
	for i := range data {
		data[i] = byte(i % 251)
	}

	single, err := parablock.NewConfig(codec.NewLZ4Codec(),
		parablock.WithSubblockSize(4096), parablock.WithParallel(false))
	require.NoError(t, err)

	eight, err := parablock.NewConfig(codec.NewLZ4Codec(),
		parablock.WithSubblockSize(4096), parablock.WithMaxProcessors(8))
	require.NoError(t, err)

	subblocksSingle, err := parablock.Compress(data, single, nil)
	require.NoError(t, err)
	subblocksEight, err := parablock.Compress(data, eight, nil)
	require.NoError(t, err)

	require.Equal(t, len(subblocksSingle), len(subblocksEight))
	for i := range subblocksSingle {
		assert.Equal(t, subblocksSingle[i].Payload, subblocksEight[i].Payload, "subblock %d", i)
		assert.Equal(t, subblocksSingle[i].UncompressedSize, subblocksEight[i].UncompressedSize, "subblock %d", i)
	}
}

func TestCompressNonMultipleOfSubblockSize(t *testing.T) {
	data := make([]byte, 10*1024+37)
	for i := range data {
		data[i] = byte(i)
	}

	cfg, err := parablock.NewConfig(codec.NewLZ4Codec(), parablock.WithSubblockSize(1024))
	require.NoError(t, err)

	dst := roundTrip(t, data, cfg)
	assert.Equal(t, data, dst)
}
