// Package pngdec decodes non-interlaced 8-bit truecolor PNG images into a
// reconstructed pixel buffer.
//
// The decode pipeline is strictly sequential:
//
//	raw bytes -> chunk demux -> header parse
//	                         -> IDAT gathering -> inflate -> filter reversal
//
// Each stage fully consumes the previous stage's output before the next stage
// starts, and the first error aborts the whole decode. No partial pixel data
// is ever returned.
//
// Scope: color types 2 (RGB) and 6 (RGBA) at bit depth 8 only. Palette and
// grayscale images, other bit depths, and Adam7 interlacing are rejected with
// ErrUnsupportedImage. Per-chunk CRC values are parsed but not verified.
package pngdec
