package pngdec

import "errors"

// Sentinel errors for PNG decoding.
// Every decode failure wraps exactly one of these, so callers can classify
// failures with errors.Is without parsing message text.
var (
	// Container errors
	ErrInvalidSignature = errors.New("pngdec: not a PNG file")
	ErrTruncated        = errors.New("pngdec: truncated data")
	ErrUnsupportedImage = errors.New("pngdec: unsupported image")

	// Inflate errors, mirroring the three failure classes of a zlib
	// decompressor: resource exhaustion, insufficient input or output
	// space, and malformed data.
	ErrInflateMemory    = errors.New("pngdec: inflate out of memory")
	ErrInflateTruncated = errors.New("pngdec: inflate ran out of data or output space")
	ErrInflateCorrupt   = errors.New("pngdec: inflate data corrupt")

	// ErrSizeMismatch reports a successful inflate whose output size differs
	// from the size computed from the header. This is an internal consistency
	// fault (a size computation defect), not a malformed-input condition.
	ErrSizeMismatch = errors.New("pngdec: decompressed size does not match header")

	// ErrInvalidFilterType reports a scanline filter byte outside 0-4.
	ErrInvalidFilterType = errors.New("pngdec: invalid scanline filter type")
)
