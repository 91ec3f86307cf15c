package parablock

// subblockOverheadBytes is the size of a persisted subblock record's fixed
// header fields (uncompressed_size, payload_length, checksum — three
// uint64s), used when deciding whether compression beat verbatim storage.
const subblockOverheadBytes = 24

// Subblock holds one independently compressed (or verbatim) chunk of data.
type Subblock struct {
	// Payload is the subblock's stored bytes: compressed, or a verbatim
	// copy of the original chunk when compression did not help.
	Payload []byte

	// UncompressedSize is the length of this subblock before compression.
	UncompressedSize int

	// Checksum is the xxHash64 of Payload, or 0 if checksums are disabled.
	Checksum uint64
}

// Verbatim reports whether this subblock was stored uncompressed.
func (s Subblock) Verbatim() bool {
	return len(s.Payload) == s.UncompressedSize
}

// SubblockList is an ordered list of subblocks; order is significant and is
// the only thing that reconstructs the original byte order on Uncompress.
type SubblockList []Subblock

// TotalUncompressedSize returns the sum of every subblock's
// UncompressedSize.
func (l SubblockList) TotalUncompressedSize() int {
	total := 0
	for _, s := range l {
		total += s.UncompressedSize
	}
	return total
}

// footprint returns the persisted size of the list: every payload's length
// plus its fixed per-record header overhead.
func (l SubblockList) footprint() int {
	total := 0
	for _, s := range l {
		total += len(s.Payload) + subblockOverheadBytes
	}
	return total
}
