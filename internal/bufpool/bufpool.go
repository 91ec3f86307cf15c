// Package bufpool provides a small pooled growable buffer, adapted from
// mebo's internal/pool byte buffer for the narrower job of building wire
// output: append-only, no Read side, no oversized-buffer growth tiers.
package bufpool

import "sync"

const (
	defaultSize = 4096
	maxRetained = 1 << 20
)

// Buffer is a growable, append-only byte buffer meant for pooled reuse.
type Buffer struct {
	b []byte
}

// Bytes returns the buffer's current contents. The returned slice is only
// valid until the next call to MustWrite or Reset.
func (buf *Buffer) Bytes() []byte { return buf.b }

// Len returns the number of bytes written so far.
func (buf *Buffer) Len() int { return len(buf.b) }

// Reset empties the buffer without releasing its backing array.
func (buf *Buffer) Reset() { buf.b = buf.b[:0] }

// MustWrite appends data, growing the backing array as needed.
func (buf *Buffer) MustWrite(data []byte) {
	buf.b = append(buf.b, data...)
}

var pool = sync.Pool{
	New: func() any { return &Buffer{b: make([]byte, 0, defaultSize)} },
}

// Get retrieves a reset Buffer from the pool.
func Get() *Buffer {
	return pool.Get().(*Buffer)
}

// Put returns buf to the pool, discarding it instead if it grew unusually
// large, so one oversized call doesn't keep that memory pinned forever.
func Put(buf *Buffer) {
	if cap(buf.b) > maxRetained {
		return
	}
	buf.Reset()
	pool.Put(buf)
}
