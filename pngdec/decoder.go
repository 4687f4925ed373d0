package pngdec

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"png2ppm/metrics"
)

// Image is the result of a successful decode: the validated header plus the
// reconstructed scanline buffer.
//
// Pix keeps the decompressed layout, so each row still starts with its
// (now meaningless) filter byte; Row hides that detail. The buffer is owned
// by the Image and safe to hand off once Decode returns.
type Image struct {
	Header Header
	Pix    []byte
}

// Row returns the reconstructed sample bytes of row y, without the leading
// filter byte. Each sample is PixelSize consecutive bytes.
func (img *Image) Row(y int) []byte {
	stride := img.Header.Stride()
	return img.Pix[y*stride+1 : (y+1)*stride]
}

// Decode runs the full pipeline over a PNG byte buffer: signature and header
// validation, IDAT gathering, inflation to the exact header-derived size, and
// in-place filter reversal.
//
// Decode is fail-fast: the first error aborts and no partial image is
// returned. The input buffer is only borrowed; the returned Image owns its
// pixel buffer. The returned record carries counters and stage timings for
// the run and is non-nil exactly when the error is nil.
//
// log may be nil to decode silently.
func Decode(data []byte, log *zap.Logger) (*Image, *metrics.DecodeRecord, error) {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()
	rec := &metrics.DecodeRecord{}

	demux, err := NewDemuxer(data)
	if err != nil {
		return nil, nil, err
	}

	first, err := demux.Next()
	if err != nil {
		return nil, nil, err
	}
	header, err := ParseHeader(first)
	if err != nil {
		return nil, nil, err
	}
	log.Info("image header parsed",
		zap.Uint32("width", header.Width),
		zap.Uint32("height", header.Height),
		zap.Uint8("bit_depth", header.BitDepth),
		zap.Uint8("color_type", header.ColorType),
		zap.Bool("has_alpha", header.HasAlpha()),
		zap.Int("pixel_size", header.PixelSize()),
	)
	rec.Width = int(header.Width)
	rec.Height = int(header.Height)
	rec.PixelSize = header.PixelSize()

	compressed, inventory := GatherIDAT(demux)
	for _, info := range inventory {
		log.Debug("chunk",
			zap.String("type", info.Type),
			zap.Uint32("length", info.Length),
			zap.Bool("critical", info.Critical),
		)
		rec.ChunkCount++
		if !info.Critical {
			rec.AncillaryChunks++
		}
		if info.Type == TypeIDAT {
			rec.IDATChunks++
		}
	}
	rec.CompressedBytes = len(compressed)
	rec.ParseDuration = time.Since(start)

	inflateStart := time.Now()
	raw, err := Inflate(compressed, header.RawSize())
	if err != nil {
		return nil, nil, fmt.Errorf("inflating %d IDAT bytes: %w", len(compressed), err)
	}
	rec.RawBytes = len(raw)
	rec.InflateDuration = time.Since(inflateStart)
	log.Info("IDAT stream inflated",
		zap.Int("compressed_bytes", len(compressed)),
		zap.Int("raw_bytes", len(raw)),
	)

	reconStart := time.Now()
	counts, err := Reconstruct(raw, header)
	if err != nil {
		return nil, nil, err
	}
	rec.ReconstructDuration = time.Since(reconStart)
	rec.FilterRows = make(map[string]int, numFilterTypes)
	for ft, n := range counts {
		if n > 0 {
			rec.FilterRows[FilterType(ft).String()] = n
		}
	}
	rec.TotalDuration = time.Since(start)

	return &Image{Header: header, Pix: raw}, rec, nil
}
