package parablock

import (
	"time"

	"github.com/blockworksio/parablock/errs"
	"github.com/blockworksio/parablock/internal/worker"
	"github.com/blockworksio/parablock/internal/xhash"
	"github.com/blockworksio/parablock/shuffle"
)

// Compress splits data into subblocks, compresses each subblock
// independently — optionally across goroutines — and returns the resulting
// list in input order.
//
// data empty returns (nil, nil). A non-nil, empty result means the list's
// footprint (payload bytes plus the per-subblock record overhead) was not
// smaller than len(data); the caller must then store data itself.
//
// perf, if non-nil, is filled in with measurements from this call.
func Compress(data []byte, cfg *Config, perf *Performance) (SubblockList, error) {
	if len(data) == 0 {
		return nil, nil
	}

	level := cfg.clampedLevel()
	subblockSize := cfg.clampedSubblockSize()

	numSubblocks := len(data) / subblockSize
	remainder := len(data) % subblockSize
	numItems := numSubblocks
	if remainder > 0 {
		numItems++
	}

	start := time.Now()

	src := data
	if cfg.shuffleEnabled() {
		src = shuffle.Shuffle(data, cfg.itemSize)
	}

	numWorkers := worker.RecommendedCount(cfg.parallelEnabled, cfg.maxProcessors, numItems, 1)
	ranges := worker.Partition(numWorkers, numItems)
	results := make([]SubblockList, numWorkers)

	c := cfg.codec
	msgs := worker.Run(numWorkers, func(w int) error {
		r := ranges[w]
		var local SubblockList

		for i := r.Begin; i < r.End; i++ {
			usz := subblockSize
			if i >= numSubblocks {
				usz = remainder
			}
			if usz == 0 {
				continue
			}

			begin := i * subblockSize
			uncompressed := src[begin : begin+usz]

			var payload []byte
			if usz >= c.MinBlockSize() {
				dst := make([]byte, c.MaxCompressedBlockSize(usz))
				if n := c.CompressBlock(dst, uncompressed, level); n > 0 && n < usz {
					payload = dst[:n]
				}
			}
			if payload == nil {
				payload = append([]byte(nil), uncompressed...)
			}

			var checksum uint64
			if cfg.checksumsEnabled {
				checksum = xhash.Sum64(payload)
			}

			local = append(local, Subblock{
				Payload:          payload,
				UncompressedSize: usz,
				Checksum:         checksum,
			})
		}

		results[w] = local
		return nil
	})
	if len(msgs) > 0 {
		return nil, &errs.AggregateError{Algorithm: c.AlgorithmName(), Messages: msgs}
	}

	dt := time.Since(start)

	var subblocks SubblockList
	for _, r := range results {
		subblocks = append(subblocks, r...)
	}

	footprint := subblocks.footprint()

	if perf != nil {
		perf.SizeReduction = float64(len(data)-footprint) / float64(len(data))
		if dt > 0 {
			perf.ThroughputMiBps = float64(len(data)) / dt.Seconds() / (1024 * 1024)
		}
		perf.ThreadCount = numWorkers
	}

	if footprint >= len(data) {
		return SubblockList{}, nil
	}

	return subblocks, nil
}
