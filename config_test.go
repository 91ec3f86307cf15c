package parablock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockworksio/parablock"
	"github.com/blockworksio/parablock/codec"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := parablock.NewConfig(codec.NewLZ4Codec())
	require.NoError(t, err)
	require.NotNil(t, cfg)
}

func TestNewConfigRejectsNilCodec(t *testing.T) {
	_, err := parablock.NewConfig(nil)
	assert.Error(t, err)
}

func TestWithSubblockSizeRejectsZero(t *testing.T) {
	_, err := parablock.NewConfig(codec.NewLZ4Codec(), parablock.WithSubblockSize(0))
	assert.Error(t, err)
}

func TestWithItemSizeRejectsZero(t *testing.T) {
	_, err := parablock.NewConfig(codec.NewLZ4Codec(), parablock.WithItemSize(0))
	assert.Error(t, err)
}

func TestWithMaxProcessorsRejectsZero(t *testing.T) {
	_, err := parablock.NewConfig(codec.NewLZ4Codec(), parablock.WithMaxProcessors(0))
	assert.Error(t, err)
}
