package parablock

import (
	"fmt"
	"runtime"

	"github.com/blockworksio/parablock/codec"
	"github.com/blockworksio/parablock/internal/options"
)

// Config holds the tunable parameters of the compression and decompression
// engines: which codec to use, how large subblocks are, whether to shuffle,
// checksum, or parallelize, and how many goroutines to use at most.
type Config struct {
	codec codec.Codec

	compressionLevel     int
	subblockSize         int
	itemSize             int
	byteShufflingEnabled bool
	checksumsEnabled     bool
	parallelEnabled      bool
	maxProcessors        int
}

// Option configures a Config. See the With* functions below.
type Option = options.Option[*Config]

// NewConfig creates a Config for the given codec, applying opts in order.
// Unset fields fall back to sensible defaults: no shuffling, no checksums,
// parallel execution enabled, and the maximum subblock size the codec
// supports.
func NewConfig(c codec.Codec, opts ...Option) (*Config, error) {
	if c == nil {
		return nil, fmt.Errorf("codec must not be nil")
	}

	cfg := &Config{
		codec:           c,
		itemSize:        1,
		parallelEnabled: true,
		maxProcessors:   runtime.GOMAXPROCS(0),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithCompressionLevel sets the codec compression level. 0 (the default)
// means "use the codec's own default level."
func WithCompressionLevel(level int) Option {
	return options.NoError(func(c *Config) {
		c.compressionLevel = level
	})
}

// WithSubblockSize sets the size each subblock is split into before
// compression. Values outside the codec's [MinBlockSize, MaxBlockSize]
// range are clamped to MaxBlockSize at compress/uncompress time.
func WithSubblockSize(n int) Option {
	return options.New(func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("subblock size must be >= 1, got %d", n)
		}
		c.subblockSize = n
		return nil
	})
}

// WithItemSize sets the width, in bytes, of one array element for the
// byte-shuffle filter. It has no effect unless byte shuffling is also
// enabled via WithByteShuffling.
func WithItemSize(n int) Option {
	return options.New(func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("item size must be >= 1, got %d", n)
		}
		c.itemSize = n
		return nil
	})
}

// WithByteShuffling enables or disables the byte-shuffle pre-filter.
func WithByteShuffling(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.byteShufflingEnabled = enabled
	})
}

// WithChecksums enables or disables xxHash64 checksums over each
// subblock's compressed payload.
func WithChecksums(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.checksumsEnabled = enabled
	})
}

// WithParallel enables or disables fanning work out across goroutines. When
// disabled, Compress and Uncompress always run on the calling goroutine.
func WithParallel(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.parallelEnabled = enabled
	})
}

// WithMaxProcessors caps the number of worker goroutines used when parallel
// execution is enabled. The default is runtime.GOMAXPROCS(0).
func WithMaxProcessors(n int) Option {
	return options.New(func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("max processors must be >= 1, got %d", n)
		}
		c.maxProcessors = n
		return nil
	})
}

func (c *Config) clampedLevel() int {
	level := c.compressionLevel
	if level <= 0 {
		return c.codec.DefaultCompressionLevel()
	}
	if max := c.codec.MaxCompressionLevel(); level > max {
		return max
	}
	return level
}

func (c *Config) clampedSubblockSize() int {
	size := c.subblockSize
	if size < c.codec.MinBlockSize() || size > c.codec.MaxBlockSize() {
		return c.codec.MaxBlockSize()
	}
	return size
}

func (c *Config) shuffleEnabled() bool {
	return c.byteShufflingEnabled && c.itemSize > 1
}
