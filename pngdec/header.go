package pngdec

import "fmt"

// Color type bit flags as defined by the PNG header.
const (
	colorMaskPalette = 0x01
	colorMaskColor   = 0x02
	colorMaskAlpha   = 0x04
)

// ihdrPayloadSize is the fixed payload length of a well-formed IHDR chunk.
const ihdrPayloadSize = 13

// Header holds the image parameters extracted from the IHDR chunk.
// It is created once from the mandatory first chunk and immutable thereafter.
type Header struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// ParseHeader extracts and validates the image header from the first chunk of
// the stream. The chunk must be an IHDR with a 13-byte payload describing an
// 8-bit truecolor image with default compression, filtering and no
// interlacing; anything else fails with ErrUnsupportedImage.
func ParseHeader(chunk Chunk) (Header, error) {
	if chunk.TypeString() != TypeIHDR {
		return Header{}, fmt.Errorf("%w: first chunk is %q, want IHDR", ErrUnsupportedImage, chunk.TypeString())
	}
	if len(chunk.Data) != ihdrPayloadSize {
		return Header{}, fmt.Errorf("%w: IHDR payload is %d bytes, want %d", ErrUnsupportedImage, len(chunk.Data), ihdrPayloadSize)
	}

	cur := NewCursor(chunk.Data)
	var h Header
	h.Width, _ = cur.FetchU32BE()
	h.Height, _ = cur.FetchU32BE()
	rest, _ := cur.Fetch(5)
	h.BitDepth = rest[0]
	h.ColorType = rest[1]
	h.CompressionMethod = rest[2]
	h.FilterMethod = rest[3]
	h.InterlaceMethod = rest[4]

	if !h.IsTruecolor() || h.hasPalette() {
		return Header{}, fmt.Errorf("%w: color type %d is not truecolor", ErrUnsupportedImage, h.ColorType)
	}
	if h.BitDepth != 8 {
		return Header{}, fmt.Errorf("%w: bit depth %d, only 8 supported", ErrUnsupportedImage, h.BitDepth)
	}
	if h.CompressionMethod != 0 {
		return Header{}, fmt.Errorf("%w: compression method %d", ErrUnsupportedImage, h.CompressionMethod)
	}
	if h.FilterMethod != 0 {
		return Header{}, fmt.Errorf("%w: filter method %d", ErrUnsupportedImage, h.FilterMethod)
	}
	if h.InterlaceMethod != 0 {
		return Header{}, fmt.Errorf("%w: interlace method %d", ErrUnsupportedImage, h.InterlaceMethod)
	}
	return h, nil
}

// IsTruecolor reports whether the color type carries direct RGB samples.
func (h Header) IsTruecolor() bool { return h.ColorType&colorMaskColor != 0 }

func (h Header) hasPalette() bool { return h.ColorType&colorMaskPalette != 0 }

// HasAlpha reports whether samples carry an alpha channel.
func (h Header) HasAlpha() bool { return h.ColorType&colorMaskAlpha != 0 }

// PixelSize returns the number of bytes per pixel sample: 3 for RGB,
// 4 for RGBA, scaled by the byte width of the bit depth.
func (h Header) PixelSize() int {
	channels := 3
	if h.HasAlpha() {
		channels = 4
	}
	return channels * int(h.BitDepth) / 8
}

// Stride returns the byte length of one encoded scanline: one filter-type
// byte followed by the row's sample bytes.
func (h Header) Stride() int {
	return int(h.Width)*h.PixelSize() + 1
}

// RawSize returns the exact decompressed size of the scanline data:
// height rows of Stride bytes each.
func (h Header) RawSize() int {
	return int(h.Height) * h.Stride()
}
