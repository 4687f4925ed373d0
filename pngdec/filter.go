package pngdec

import "fmt"

// FilterType identifies the per-scanline predictor used to delta-encode a
// row. The five values are exhaustive; any other filter byte is an error.
type FilterType byte

const (
	FilterNone    FilterType = 0
	FilterSub     FilterType = 1
	FilterUp      FilterType = 2
	FilterAverage FilterType = 3
	FilterPaeth   FilterType = 4

	numFilterTypes = 5
)

// String returns the PNG specification name of the filter type.
func (f FilterType) String() string {
	switch f {
	case FilterNone:
		return "none"
	case FilterSub:
		return "sub"
	case FilterUp:
		return "up"
	case FilterAverage:
		return "average"
	case FilterPaeth:
		return "paeth"
	default:
		return fmt.Sprintf("invalid(%d)", byte(f))
	}
}

// FilterCounts tallies how many rows used each filter type during one decode.
type FilterCounts [numFilterTypes]int

// Reconstruct reverses the per-row filters in raw, in place, turning encoded
// deltas into true pixel bytes. raw is the decompressed scanline buffer: for
// each row, one filter-type byte followed by Width*PixelSize sample bytes.
//
// The transform is destructive and order-dependent: rows are processed top to
// bottom and samples left to right, because Sub, Average and Paeth read the
// already-reconstructed left neighbor, and Up, Average and Paeth read the
// already-reconstructed row above. Channels within one sample never depend on
// each other.
//
// Reconstruct fails with ErrInvalidFilterType on a filter byte outside 0-4;
// rows before the failing one are left reconstructed, which is fine because
// the caller discards the buffer on any error.
func Reconstruct(raw []byte, h Header) (FilterCounts, error) {
	var counts FilterCounts
	pixelSize := h.PixelSize()
	stride := h.Stride()

	for y := 0; y < int(h.Height); y++ {
		ft := FilterType(raw[y*stride])
		if ft >= numFilterTypes {
			return counts, fmt.Errorf("%w: %d in row %d", ErrInvalidFilterType, byte(ft), y)
		}
		counts[ft]++

		line := raw[y*stride+1 : (y+1)*stride]
		var prev []byte
		if y > 0 {
			prev = raw[(y-1)*stride+1 : y*stride]
		}
		reconstructRow(ft, line, prev, int(h.Width), pixelSize)
	}
	return counts, nil
}

// reconstructRow reverses one row's filter in place. line holds the row's
// sample bytes (filter byte already stripped); prev is the reconstructed row
// above, or nil for the top row.
func reconstructRow(ft FilterType, line, prev []byte, width, pixelSize int) {
	for x := 0; x < width; x++ {
		for i := 0; i < pixelSize; i++ {
			pos := x*pixelSize + i
			raw := line[pos]

			var predictor byte
			switch ft {
			case FilterNone:
				predictor = 0
			case FilterSub:
				if x > 0 {
					predictor = line[pos-pixelSize]
				}
			case FilterUp:
				if prev != nil {
					predictor = prev[pos]
				}
			case FilterAverage:
				var left, above int
				if x > 0 {
					left = int(line[pos-pixelSize])
				}
				if prev != nil {
					above = int(prev[pos])
				}
				predictor = byte((left + above) / 2)
			case FilterPaeth:
				var a, b, c int
				if x > 0 {
					a = int(line[pos-pixelSize])
				}
				if prev != nil {
					b = int(prev[pos])
					if x > 0 {
						c = int(prev[pos-pixelSize])
					}
				}
				predictor = paethPredict(a, b, c)
			}

			// The sum wraps modulo 256; predictor selection above does not.
			line[pos] = raw + predictor
		}
	}
}

// paethPredict picks the neighbor (left, above, above-left) closest to the
// linear estimate p = a + b - c. The arithmetic here is signed and exact;
// only the final raw+predictor addition wraps.
func paethPredict(a, b, c int) byte {
	p := a + b - c
	pa := intAbs(p - a)
	pb := intAbs(p - b)
	pc := intAbs(p - c)
	if pa <= pb && pa <= pc {
		return byte(a)
	}
	if pb <= pc {
		return byte(b)
	}
	return byte(c)
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
