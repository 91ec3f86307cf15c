// Package xhash computes the subblock payload checksums the engine uses to
// detect corrupted or truncated compressed data before decompression.
package xhash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the 64-bit xxHash of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
