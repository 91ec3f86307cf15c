package parablock

// Performance reports measurements from a single Compress or Uncompress
// call. Callers that do not need these numbers may pass a nil *Performance.
type Performance struct {
	// SizeReduction is (originalSize - footprint) / originalSize. Negative
	// values mean the subblock list is larger than the original data.
	// Compress reports such a value when it gives up and returns an empty
	// list, since the measurement is taken before that decision.
	SizeReduction float64

	// ThroughputMiBps is data processed per second, in mebibytes,
	// measured across shuffling and compression (or decompression and
	// unshuffling) combined.
	ThroughputMiBps float64

	// ThreadCount is the number of goroutines actually used. 1 means the
	// work ran directly on the caller's goroutine.
	ThreadCount int
}
