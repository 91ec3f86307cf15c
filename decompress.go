package parablock

import (
	"fmt"
	"time"

	"github.com/blockworksio/parablock/errs"
	"github.com/blockworksio/parablock/internal/worker"
	"github.com/blockworksio/parablock/internal/xhash"
	"github.com/blockworksio/parablock/shuffle"
)

// Uncompress reverses Compress, writing the reconstructed data into dst and
// returning the number of bytes produced.
//
// An empty subblocks list produces (0, nil) and leaves dst untouched; it is
// the caller's responsibility to know this means the original data was
// stored verbatim elsewhere, not that it was empty.
//
// perf, if non-nil, is filled in with measurements from this call.
func Uncompress(dst []byte, subblocks SubblockList, cfg *Config, perf *Performance) (int, error) {
	if len(subblocks) == 0 {
		return 0, nil
	}

	total := 0
	for _, sb := range subblocks {
		if len(sb.Payload) == 0 || sb.UncompressedSize == 0 {
			return 0, errs.ErrInvalidSubblock
		}
		total += sb.UncompressedSize
	}
	if len(dst) < total {
		return 0, fmt.Errorf("%w (required %d, available %d)", errs.ErrInsufficientBuffer, total, len(dst))
	}

	numWorkers := worker.RecommendedCount(cfg.parallelEnabled, cfg.maxProcessors, len(subblocks), 1)
	ranges := worker.Partition(numWorkers, len(subblocks))

	offsets := make([]int, numWorkers)
	offset := 0
	for w, r := range ranges {
		offsets[w] = offset
		for i := r.Begin; i < r.End; i++ {
			offset += subblocks[i].UncompressedSize
		}
	}

	c := cfg.codec
	start := time.Now()

	msgs := worker.Run(numWorkers, func(w int) error {
		r := ranges[w]
		produced := 0

		for i := r.Begin; i < r.End; i++ {
			sb := subblocks[i]
			blockOffset := offsets[w] + produced

			if sb.Checksum != 0 {
				if got := xhash.Sum64(sb.Payload); got != sb.Checksum {
					return &errs.ChecksumMismatchError{Offset: uint64(blockOffset), Expected: sb.Checksum, Actual: got}
				}
			}

			out := dst[blockOffset : blockOffset+sb.UncompressedSize]
			if sb.Verbatim() {
				copy(out, sb.Payload)
			} else {
				n := c.UncompressBlock(out, sb.Payload)
				if n == 0 {
					return fmt.Errorf("%w: failed to uncompress subblock (offset=%d, usize=%d, csize=%d)",
						errs.ErrCodecFailure, blockOffset, sb.UncompressedSize, len(sb.Payload))
				}
				if n != sb.UncompressedSize {
					return fmt.Errorf("%w: uncompressed subblock size mismatch (offset=%d, expected %d, got %d)",
						errs.ErrCodecFailure, blockOffset, sb.UncompressedSize, n)
				}
			}

			produced += sb.UncompressedSize
		}

		return nil
	})
	if len(msgs) > 0 {
		return 0, &errs.AggregateError{Algorithm: c.AlgorithmName(), Messages: msgs}
	}

	if cfg.shuffleEnabled() {
		shuffle.UnshuffleInPlace(dst[:total], cfg.itemSize)
	}

	if perf != nil {
		dt := time.Since(start)
		footprint := subblocks.footprint()
		perf.SizeReduction = float64(total-footprint) / float64(total)
		if dt > 0 {
			perf.ThroughputMiBps = float64(total) / dt.Seconds() / (1024 * 1024)
		}
		perf.ThreadCount = numWorkers
	}

	return total, nil
}
