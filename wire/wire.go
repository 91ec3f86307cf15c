// Package wire implements a concrete persisted form of a SubblockList: the
// record shape parablock's design fixes but leaves framing and endianness
// to the caller. Marshal and Unmarshal pick little-endian, matching mebo's
// own endian.GetLittleEndianEngine default.
package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/blockworksio/parablock"
	"github.com/blockworksio/parablock/internal/bufpool"
)

const recordHeaderSize = 24 // uncompressed_size, payload_length, checksum

// Marshal serializes a subblock list as a little-endian uint64 count
// followed by one record per subblock: uncompressed_size, payload_length,
// checksum (each uint64), then the payload bytes.
func Marshal(subblocks parablock.SubblockList) []byte {
	buf := bufpool.Get()
	defer bufpool.Put(buf)

	var hdr [8]byte
	binary.LittleEndian.PutUint64(hdr[:], uint64(len(subblocks)))
	buf.MustWrite(hdr[:])

	var rec [recordHeaderSize]byte
	for _, sb := range subblocks {
		binary.LittleEndian.PutUint64(rec[0:8], uint64(sb.UncompressedSize))
		binary.LittleEndian.PutUint64(rec[8:16], uint64(len(sb.Payload)))
		binary.LittleEndian.PutUint64(rec[16:24], sb.Checksum)
		buf.MustWrite(rec[:])
		buf.MustWrite(sb.Payload)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

// Unmarshal parses a subblock list previously produced by Marshal.
func Unmarshal(data []byte) (parablock.SubblockList, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("wire: truncated subblock list header")
	}

	count := binary.LittleEndian.Uint64(data[:8])
	data = data[8:]

	subblocks := make(parablock.SubblockList, 0, count)
	for i := uint64(0); i < count; i++ {
		if uint64(len(data)) < recordHeaderSize {
			return nil, fmt.Errorf("wire: truncated subblock record %d", i)
		}

		uncompressedSize := binary.LittleEndian.Uint64(data[0:8])
		payloadLength := binary.LittleEndian.Uint64(data[8:16])
		checksum := binary.LittleEndian.Uint64(data[16:24])
		data = data[recordHeaderSize:]

		if uint64(len(data)) < payloadLength {
			return nil, fmt.Errorf("wire: truncated subblock payload %d", i)
		}

		payload := make([]byte, payloadLength)
		copy(payload, data[:payloadLength])
		data = data[payloadLength:]

		subblocks = append(subblocks, parablock.Subblock{
			Payload:          payload,
			UncompressedSize: int(uncompressedSize),
			Checksum:         checksum,
		})
	}

	return subblocks, nil
}
