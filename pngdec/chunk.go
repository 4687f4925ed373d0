package pngdec

import (
	"bytes"
	"fmt"
)

// pngSignature is the fixed 8-byte magic sequence at the start of every PNG.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Well-known chunk type tags.
const (
	TypeIHDR = "IHDR"
	TypeIDAT = "IDAT"
	TypeIEND = "IEND"
)

// Chunk is one tagged record of the PNG container. It is an ephemeral view:
// Data aliases the input buffer and is never copied at this stage.
//
// CRC is the declared chunk checksum. It is carried through for completeness
// but never verified.
type Chunk struct {
	Length uint32
	Type   [4]byte
	Data   []byte
	CRC    uint32
}

// TypeString returns the four-character chunk type tag.
func (c Chunk) TypeString() string { return string(c.Type[:]) }

// Critical reports whether the chunk is critical per the PNG naming
// convention: an uppercase first letter in the type tag.
func (c Chunk) Critical() bool { return c.Type[0] >= 'A' && c.Type[0] <= 'Z' }

// Demuxer splits a PNG byte buffer into its chunk sequence.
//
// NewDemuxer validates the signature; Next then yields chunks in file order.
// Replay returns an independent demuxer rewound to the first chunk, so the
// stream can be traversed more than once (header extraction and IDAT
// gathering are two separate passes).
type Demuxer struct {
	cur Cursor
}

// NewDemuxer validates the PNG signature of data and returns a demuxer
// positioned at the first chunk. It fails with ErrInvalidSignature if the
// first 8 bytes are not the PNG magic, or ErrTruncated if the buffer is
// shorter than the signature.
func NewDemuxer(data []byte) (*Demuxer, error) {
	cur := NewCursor(data)
	sig, err := cur.Fetch(len(pngSignature))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if !bytes.Equal(sig, pngSignature) {
		return nil, ErrInvalidSignature
	}
	return &Demuxer{cur: cur}, nil
}

// Next parses the chunk at the current position and advances past it,
// including the trailing CRC. It fails with ErrTruncated if any field would
// run past the end of the buffer. Next does not interpret chunk payloads.
func (d *Demuxer) Next() (Chunk, error) {
	length, err := d.cur.FetchU32BE()
	if err != nil {
		return Chunk{}, err
	}
	tag, err := d.cur.Fetch(4)
	if err != nil {
		return Chunk{}, err
	}
	var chunk Chunk
	chunk.Length = length
	copy(chunk.Type[:], tag)
	chunk.Data, err = d.cur.Fetch(int(length))
	if err != nil {
		return Chunk{}, fmt.Errorf("chunk %q: %w", tag, err)
	}
	chunk.CRC, err = d.cur.FetchU32BE()
	if err != nil {
		return Chunk{}, fmt.Errorf("chunk %q: %w", tag, err)
	}
	return chunk, nil
}

// Done reports whether the demuxer has consumed the whole buffer.
func (d *Demuxer) Done() bool { return d.cur.Remaining() == 0 }

// Replay returns an independent demuxer rewound to just past the signature.
// The receiver's position is not disturbed.
func (d *Demuxer) Replay() *Demuxer {
	cur := NewCursor(d.cur.data)
	cur.pos = len(pngSignature)
	return &Demuxer{cur: cur}
}
