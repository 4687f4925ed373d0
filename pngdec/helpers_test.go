package pngdec

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"testing"
)

// appendChunk appends one wire-format chunk (length, type, payload, CRC) to
// dst. The CRC is computed over type+payload; the decoder never checks it,
// but valid CRCs keep the fixtures usable with reference decoders too.
func appendChunk(dst []byte, typ string, payload []byte) []byte {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(payload)))
	dst = append(dst, length[:]...)
	dst = append(dst, typ...)
	dst = append(dst, payload...)

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(payload)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	return append(dst, sum[:]...)
}

// ihdrPayload builds a 13-byte IHDR payload.
func ihdrPayload(width, height uint32, bitDepth, colorType byte) []byte {
	p := make([]byte, ihdrPayloadSize)
	binary.BigEndian.PutUint32(p[0:], width)
	binary.BigEndian.PutUint32(p[4:], height)
	p[8] = bitDepth
	p[9] = colorType
	return p
}

// deflate compresses data as a zlib stream.
func deflate(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("compressing fixture: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing compressor: %v", err)
	}
	return buf.Bytes()
}

// applyFilter forward-filters one row of samples so the decoder has something
// to reverse. prev is the unfiltered row above, or nil for the top row.
func applyFilter(ft FilterType, row, prev []byte, pixelSize int) []byte {
	out := make([]byte, len(row))
	for pos := range row {
		var left, above, aboveLeft byte
		if pos >= pixelSize {
			left = row[pos-pixelSize]
		}
		if prev != nil {
			above = prev[pos]
			if pos >= pixelSize {
				aboveLeft = prev[pos-pixelSize]
			}
		}
		var predictor byte
		switch ft {
		case FilterNone:
		case FilterSub:
			predictor = left
		case FilterUp:
			predictor = above
		case FilterAverage:
			predictor = byte((int(left) + int(above)) / 2)
		case FilterPaeth:
			predictor = paethPredict(int(left), int(above), int(aboveLeft))
		}
		out[pos] = row[pos] - predictor
	}
	return out
}

// buildPNG assembles a complete PNG file from unfiltered sample rows, forward
// filtering each row with the given filter type. colorType must be 2 (RGB) or
// 6 (RGBA); rows[y] holds width*pixelSize sample bytes.
func buildPNG(t *testing.T, width, height uint32, colorType byte, filters []FilterType, rows [][]byte) []byte {
	t.Helper()
	pixelSize := 3
	if colorType == 6 {
		pixelSize = 4
	}

	var raw []byte
	for y, row := range rows {
		var prev []byte
		if y > 0 {
			prev = rows[y-1]
		}
		raw = append(raw, byte(filters[y]))
		raw = append(raw, applyFilter(filters[y], row, prev, pixelSize)...)
	}

	png := append([]byte(nil), pngSignature...)
	png = appendChunk(png, TypeIHDR, ihdrPayload(width, height, 8, colorType))
	png = appendChunk(png, TypeIDAT, deflate(t, raw))
	png = appendChunk(png, TypeIEND, nil)
	return png
}
