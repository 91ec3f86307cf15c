// Package errs defines the sentinel and structured error types the
// compression and decompression engines return.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSubblock means a subblock in a list had a zero-length payload
// or a zero declared uncompressed size.
var ErrInvalidSubblock = errors.New("invalid compressed subblock data")

// ErrInsufficientBuffer means the destination buffer passed to Uncompress
// was smaller than the total declared uncompressed size.
var ErrInsufficientBuffer = errors.New("insufficient uncompression buffer")

// ErrCodecFailure means a codec's UncompressBlock reported failure, or
// produced fewer bytes than the subblock's declared uncompressed size.
var ErrCodecFailure = errors.New("codec failure")

// ChecksumMismatchError reports a subblock whose payload does not hash to
// its recorded checksum.
type ChecksumMismatchError struct {
	Offset   uint64
	Expected uint64
	Actual   uint64
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("sub-block checksum mismatch (offset=%d, expected %#x, got %#x)", e.Offset, e.Expected, e.Actual)
}

// AggregateError joins every worker's failure message under the codec's
// algorithm name, matching the engine's "all workers run to completion, all
// errors are reported" contract.
type AggregateError struct {
	Algorithm string
	Messages  []string
}

func (e *AggregateError) Error() string {
	return e.Algorithm + " compression: " + strings.Join(e.Messages, "\n")
}
