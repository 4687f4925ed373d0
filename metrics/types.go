// Package metrics defines the per-decode measurement record.
//
// A DecodeRecord is filled in by the decoder as the pipeline runs and logged
// once at the end of a run. It is plain data with no concurrency concerns:
// one decode, one record.
package metrics

import (
	"time"

	"go.uber.org/zap"
)

// DecodeRecord aggregates counters and stage timings for one decode run.
type DecodeRecord struct {
	// Image parameters from the header
	Width     int
	Height    int
	PixelSize int

	// Container counters
	ChunkCount      int // chunks seen during the gathering walk
	AncillaryChunks int // chunks skipped as non-critical
	IDATChunks      int // compressed-data chunks concatenated
	CompressedBytes int // total IDAT payload bytes
	RawBytes        int // decompressed scanline bytes

	// FilterRows counts reconstructed rows per filter type name
	// (none, sub, up, average, paeth).
	FilterRows map[string]int

	// Stage timings
	ParseDuration       time.Duration // signature, header, IDAT gathering
	InflateDuration     time.Duration
	ReconstructDuration time.Duration
	TotalDuration       time.Duration
}

// Fields renders the record as structured log fields.
func (r *DecodeRecord) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("width", r.Width),
		zap.Int("height", r.Height),
		zap.Int("pixel_size", r.PixelSize),
		zap.Int("chunks", r.ChunkCount),
		zap.Int("ancillary_chunks", r.AncillaryChunks),
		zap.Int("idat_chunks", r.IDATChunks),
		zap.Int("compressed_bytes", r.CompressedBytes),
		zap.Int("raw_bytes", r.RawBytes),
		zap.Any("filter_rows", r.FilterRows),
		zap.Duration("parse", r.ParseDuration),
		zap.Duration("inflate", r.InflateDuration),
		zap.Duration("reconstruct", r.ReconstructDuration),
		zap.Duration("total", r.TotalDuration),
	}
}
