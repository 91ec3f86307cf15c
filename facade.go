package parablock

import "github.com/blockworksio/parablock/shuffle"

// Shuffle reorders data by item plane ahead of compression. See the shuffle
// package for the full transform definition. Most callers enable shuffling
// through WithByteShuffling/WithItemSize instead of calling this directly;
// it is exported for callers who manage subblock splitting themselves.
func Shuffle(data []byte, itemSize int) []byte {
	return shuffle.Shuffle(data, itemSize)
}

// UnshuffleInPlace reverses Shuffle over data, in place.
func UnshuffleInPlace(data []byte, itemSize int) {
	shuffle.UnshuffleInPlace(data, itemSize)
}
