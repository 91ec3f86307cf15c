// Package parablock implements a parallel, block-based compression and
// decompression engine.
//
// # Overview
//
// parablock splits a byte buffer into fixed-size subblocks, compresses each
// one independently — optionally fanning the work out across goroutines —
// and reconstructs the original buffer from the resulting SubblockList. An
// optional byte-shuffle pre-filter improves compression of fixed-width
// numeric arrays by deinterleaving them into byte planes before splitting.
//
// # Basic usage
//
//	lz4, _ := codec.CreateCodec(codec.AlgorithmLZ4)
//	cfg, _ := parablock.NewConfig(lz4,
//	    parablock.WithSubblockSize(64*1024),
//	    parablock.WithChecksums(true),
//	)
//
//	var perf parablock.Performance
//	subblocks, err := parablock.Compress(data, cfg, &perf)
//	if err != nil {
//	    return err
//	}
//	if len(subblocks) == 0 {
//	    // Compression could not beat storing data verbatim; store data itself.
//	}
//
//	dst := make([]byte, len(data))
//	n, err := parablock.Uncompress(dst, subblocks, cfg, nil)
//
// # Give-up semantics
//
// Compress returns a nil list only when data itself is empty. It returns an
// empty, non-nil list when the list's footprint (all payload bytes plus the
// fixed per-subblock record overhead) is not smaller than len(data);
// callers must then fall back to storing data directly. Uncompress treats
// an empty list as "nothing to reconstruct" and leaves dst untouched — it
// is the caller's responsibility to know which case it is in.
//
// # Concurrency
//
// Workers never share mutable state beyond the aggregated error list, which
// is protected by a mutex (see internal/worker). A single worker runs
// directly on the calling goroutine; more than one worker always produces
// the same SubblockList as one worker would, in the same order, since each
// worker's output only depends on its own assigned subblocks.
//
// # Errors
//
// Compress and Uncompress return *errs.AggregateError when one or more
// workers fail, joining every failure's message rather than only the
// first. Failures inside workers (checksum mismatch, codec failure) are
// carried only as message text in the AggregateError; errors.Is and
// errors.As do not reach errs.ChecksumMismatchError or errs.ErrCodecFailure
// through it. Failures detected before any worker starts are returned
// directly: errs.ErrInvalidSubblock, and errs.ErrInsufficientBuffer wrapped
// with the required and available sizes.
package parablock
