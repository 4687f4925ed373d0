package pngdec

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
)

// Inflate decompresses the concatenated IDAT stream into a buffer of exactly
// want bytes.
//
// The contract is exact-size: the stream must inflate to precisely want
// bytes. A stream that ends cleanly before producing them is reported as
// ErrSizeMismatch (an internal consistency fault: the header-derived size and
// the stream disagree). A stream that is cut off mid-data, or that would
// produce more than want bytes, is reported as ErrInflateTruncated. Malformed
// zlib data is ErrInflateCorrupt.
func Inflate(compressed []byte, want int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, classifyInflateErr(err)
	}
	defer zr.Close()

	out := make([]byte, want)
	filled := 0
	for filled < want {
		n, err := zr.Read(out[filled:])
		filled += n
		if filled >= want {
			// A final read may legitimately pair its last bytes with EOF;
			// the probe below settles whether the stream truly ends here.
			break
		}
		if err == io.EOF {
			return nil, fmt.Errorf("%w: stream ended at %d bytes, want %d", ErrSizeMismatch, filled, want)
		}
		if err != nil {
			return nil, classifyInflateErr(err)
		}
	}

	// The stream must end exactly here. Any further byte means the output
	// buffer was too small for what the stream carries.
	var probe [1]byte
	n, err := zr.Read(probe[:])
	for n == 0 && err == nil {
		n, err = zr.Read(probe[:])
	}
	if n > 0 {
		return nil, fmt.Errorf("%w: stream continues past expected %d bytes", ErrInflateTruncated, want)
	}
	if err != io.EOF {
		return nil, classifyInflateErr(err)
	}
	return out, nil
}

// classifyInflateErr maps zlib/flate failures onto the decoder's inflate
// error taxonomy.
func classifyInflateErr(err error) error {
	var corrupt flate.CorruptInputError
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return fmt.Errorf("%w: %v", ErrInflateTruncated, err)
	case errors.Is(err, zlib.ErrHeader), errors.Is(err, zlib.ErrChecksum),
		errors.Is(err, zlib.ErrDictionary), errors.As(err, &corrupt):
		return fmt.Errorf("%w: %v", ErrInflateCorrupt, err)
	default:
		// flate.InternalError and anything else unexpected from the
		// decompressor. Grouped with the memory class, matching the
		// catch-all resource failure of a zlib uncompress call.
		return fmt.Errorf("%w: %v", ErrInflateMemory, err)
	}
}
