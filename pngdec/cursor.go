package pngdec

import "fmt"

// Cursor is a bounds-checked sequential reader over a borrowed byte buffer.
//
// A Cursor never copies the underlying buffer; Fetch returns subslices of it,
// which stay valid only as long as the buffer itself. The position invariant
// 0 <= pos <= len(data) holds at all times: a failed read reports ErrTruncated
// and leaves the position unchanged.
//
// Cursor is a small value type. Copying one yields an independent traversal
// over the same buffer, which the chunk demuxer relies on for replaying the
// chunk stream.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a Cursor positioned at the start of data.
func NewCursor(data []byte) Cursor {
	return Cursor{data: data}
}

// Len returns the total buffer length.
func (c *Cursor) Len() int { return len(c.data) }

// Pos returns the current read position.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Fetch returns the next n bytes as a view into the buffer and advances the
// position by n. If fewer than n bytes remain it fails with ErrTruncated and
// does not advance.
func (c *Cursor) Fetch(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncated, n, c.pos, len(c.data)-c.pos)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// FetchU32BE reads the next four bytes as a big-endian unsigned integer.
// The value is assembled byte by byte, independent of host byte order.
func (c *Cursor) FetchU32BE() (uint32, error) {
	b, err := c.Fetch(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// Skip advances the position by n bytes without returning them.
func (c *Cursor) Skip(n int) error {
	_, err := c.Fetch(n)
	return err
}
