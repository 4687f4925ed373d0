package pngdec

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math/rand"
	"testing"
)

func TestDecodePerFilter(t *testing.T) {
	// Three 4x3 RGB rows of fixed sample bytes, forward-filtered with each
	// filter type in turn and decoded back.
	width, height := uint32(4), uint32(3)
	rows := [][]byte{
		{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120},
		{200, 190, 180, 170, 160, 150, 140, 130, 120, 110, 100, 90},
		{0, 255, 128, 64, 32, 16, 8, 4, 2, 1, 3, 5},
	}

	for _, ft := range []FilterType{FilterNone, FilterSub, FilterUp, FilterAverage, FilterPaeth} {
		t.Run(ft.String(), func(t *testing.T) {
			filters := []FilterType{ft, ft, ft}
			data := buildPNG(t, width, height, 2, filters, rows)

			img, rec, err := Decode(data, nil)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			for y := range rows {
				if !bytes.Equal(img.Row(y), rows[y]) {
					t.Errorf("row %d = %v, want %v", y, img.Row(y), rows[y])
				}
			}
			if rec.FilterRows[ft.String()] != int(height) {
				t.Errorf("FilterRows[%s] = %d, want %d", ft, rec.FilterRows[ft.String()], height)
			}
		})
	}

	t.Run("mixed filters per row", func(t *testing.T) {
		filters := []FilterType{FilterNone, FilterPaeth, FilterAverage}
		data := buildPNG(t, width, height, 2, filters, rows)
		img, _, err := Decode(data, nil)
		if err != nil {
			t.Fatalf("Decode() error: %v", err)
		}
		for y := range rows {
			if !bytes.Equal(img.Row(y), rows[y]) {
				t.Errorf("row %d = %v, want %v", y, img.Row(y), rows[y])
			}
		}
	})
}

func TestDecodeSinglePixel(t *testing.T) {
	rows := [][]byte{{123, 45, 67}}
	data := buildPNG(t, 1, 1, 2, []FilterType{FilterNone}, rows)
	img, _, err := Decode(data, nil)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !bytes.Equal(img.Row(0), rows[0]) {
		t.Errorf("pixel = %v, want %v", img.Row(0), rows[0])
	}
}

func TestDecodeMatchesReferenceDecoder(t *testing.T) {
	// Encode deterministic pseudo-random images with the standard library
	// encoder (which picks its own per-row filters) and cross-check our
	// pixels against what the reference decoder sees.
	rng := rand.New(rand.NewSource(42))

	t.Run("opaque RGB", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 17, 11))
		for i := 0; i < len(src.Pix); i += 4 {
			src.Pix[i+0] = byte(rng.Intn(256))
			src.Pix[i+1] = byte(rng.Intn(256))
			src.Pix[i+2] = byte(rng.Intn(256))
			src.Pix[i+3] = 0xff
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, src); err != nil {
			t.Fatalf("encoding fixture: %v", err)
		}

		img, _, err := Decode(buf.Bytes(), nil)
		if err != nil {
			t.Fatalf("Decode() error: %v", err)
		}
		// Fully opaque images encode as color type 2 (RGB).
		if img.Header.HasAlpha() {
			t.Fatalf("expected RGB encoding, got color type %d", img.Header.ColorType)
		}
		for y := 0; y < 11; y++ {
			row := img.Row(y)
			for x := 0; x < 17; x++ {
				for i := 0; i < 3; i++ {
					want := src.Pix[y*src.Stride+x*4+i]
					if got := row[x*3+i]; got != want {
						t.Fatalf("pixel (%d,%d) channel %d = %d, want %d", x, y, i, got, want)
					}
				}
			}
		}
	})

	t.Run("translucent RGBA", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 9, 13))
		for i := range src.Pix {
			src.Pix[i] = byte(rng.Intn(256))
		}
		src.Pix[3] = 0x80 // force at least one non-opaque alpha
		var buf bytes.Buffer
		if err := png.Encode(&buf, src); err != nil {
			t.Fatalf("encoding fixture: %v", err)
		}

		img, _, err := Decode(buf.Bytes(), nil)
		if err != nil {
			t.Fatalf("Decode() error: %v", err)
		}
		if !img.Header.HasAlpha() {
			t.Fatalf("expected RGBA encoding, got color type %d", img.Header.ColorType)
		}
		for y := 0; y < 13; y++ {
			if !bytes.Equal(img.Row(y), src.Pix[y*src.Stride:y*src.Stride+9*4]) {
				t.Fatalf("row %d differs from reference", y)
			}
		}
	})
}

func TestDecodeDeterminism(t *testing.T) {
	rows := [][]byte{
		{1, 2, 3, 4, 5, 6},
		{7, 8, 9, 10, 11, 12},
	}
	data := buildPNG(t, 2, 2, 2, []FilterType{FilterSub, FilterPaeth}, rows)

	first, _, err := Decode(data, nil)
	if err != nil {
		t.Fatalf("first Decode() error: %v", err)
	}
	second, _, err := Decode(data, nil)
	if err != nil {
		t.Fatalf("second Decode() error: %v", err)
	}
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("identical input decoded to different bytes")
	}
}

func TestDecodeScatteredIDAT(t *testing.T) {
	rows := [][]byte{
		{10, 20, 30, 40, 50, 60},
		{70, 80, 90, 100, 110, 120},
	}
	whole := buildPNG(t, 2, 2, 2, []FilterType{FilterUp, FilterUp}, rows)

	// Rebuild the same image with the zlib stream split across three IDAT
	// chunks, an ancillary chunk wedged between them.
	var raw []byte
	var prev []byte
	for _, row := range rows {
		raw = append(raw, byte(FilterUp))
		raw = append(raw, applyFilter(FilterUp, row, prev, 3)...)
		prev = row
	}
	z := deflate(t, raw)

	scattered := append([]byte(nil), pngSignature...)
	scattered = appendChunk(scattered, TypeIHDR, ihdrPayload(2, 2, 8, 2))
	scattered = appendChunk(scattered, TypeIDAT, z[:3])
	scattered = appendChunk(scattered, "tEXt", []byte("comment"))
	scattered = appendChunk(scattered, TypeIDAT, z[3:7])
	scattered = appendChunk(scattered, TypeIDAT, z[7:])
	scattered = appendChunk(scattered, TypeIEND, nil)

	img1, _, err := Decode(whole, nil)
	if err != nil {
		t.Fatalf("Decode(whole) error: %v", err)
	}
	img2, rec, err := Decode(scattered, nil)
	if err != nil {
		t.Fatalf("Decode(scattered) error: %v", err)
	}
	if !bytes.Equal(img1.Pix, img2.Pix) {
		t.Error("scattered IDAT decoded differently from single IDAT")
	}
	if rec.IDATChunks != 3 {
		t.Errorf("IDATChunks = %d, want 3", rec.IDATChunks)
	}
	if rec.AncillaryChunks != 1 {
		t.Errorf("AncillaryChunks = %d, want 1", rec.AncillaryChunks)
	}
}

func TestDecodeFailures(t *testing.T) {
	rows := [][]byte{{1, 2, 3}}
	valid := buildPNG(t, 1, 1, 2, []FilterType{FilterNone}, rows)

	t.Run("not a png", func(t *testing.T) {
		_, _, err := Decode([]byte("definitely not a png"), nil)
		if !errors.Is(err, ErrInvalidSignature) {
			t.Errorf("Decode() = %v, want ErrInvalidSignature", err)
		}
	})

	t.Run("signature only", func(t *testing.T) {
		_, _, err := Decode(pngSignature, nil)
		if !errors.Is(err, ErrTruncated) {
			t.Errorf("Decode() = %v, want ErrTruncated", err)
		}
	})

	t.Run("file cut off inside IDAT", func(t *testing.T) {
		// Removes the IEND chunk and the tail of the IDAT chunk. The
		// gathering pass stops at the unparseable chunk, leaving an
		// incomplete compressed stream; never an out-of-range read.
		cut := valid[:len(valid)-20]
		_, _, err := Decode(cut, nil)
		if err == nil {
			t.Fatal("Decode() succeeded on truncated file")
		}
	})

	t.Run("palette image rejected", func(t *testing.T) {
		data := append([]byte(nil), pngSignature...)
		data = appendChunk(data, TypeIHDR, ihdrPayload(1, 1, 8, 3))
		_, _, err := Decode(data, nil)
		if !errors.Is(err, ErrUnsupportedImage) {
			t.Errorf("Decode() = %v, want ErrUnsupportedImage", err)
		}
	})

	t.Run("interlaced image rejected", func(t *testing.T) {
		payload := ihdrPayload(1, 1, 8, 2)
		payload[12] = 1
		data := append([]byte(nil), pngSignature...)
		data = appendChunk(data, TypeIHDR, payload)
		_, _, err := Decode(data, nil)
		if !errors.Is(err, ErrUnsupportedImage) {
			t.Errorf("Decode() = %v, want ErrUnsupportedImage", err)
		}
	})

	t.Run("undersized scanline stream", func(t *testing.T) {
		// Header claims 2x2 but the stream carries a single 1x1 row.
		short := deflate(t, []byte{0, 1, 2, 3})
		data := append([]byte(nil), pngSignature...)
		data = appendChunk(data, TypeIHDR, ihdrPayload(2, 2, 8, 2))
		data = appendChunk(data, TypeIDAT, short)
		data = appendChunk(data, TypeIEND, nil)

		_, _, err := Decode(data, nil)
		if !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("Decode() = %v, want ErrSizeMismatch", err)
		}
	})

	t.Run("invalid filter byte in stream", func(t *testing.T) {
		bad := deflate(t, []byte{7, 1, 2, 3})
		data := append([]byte(nil), pngSignature...)
		data = appendChunk(data, TypeIHDR, ihdrPayload(1, 1, 8, 2))
		data = appendChunk(data, TypeIDAT, bad)
		data = appendChunk(data, TypeIEND, nil)

		_, _, err := Decode(data, nil)
		if !errors.Is(err, ErrInvalidFilterType) {
			t.Errorf("Decode() = %v, want ErrInvalidFilterType", err)
		}
	})

	t.Run("missing IDAT", func(t *testing.T) {
		data := append([]byte(nil), pngSignature...)
		data = appendChunk(data, TypeIHDR, ihdrPayload(1, 1, 8, 2))
		data = appendChunk(data, TypeIEND, nil)

		_, _, err := Decode(data, nil)
		if !errors.Is(err, ErrInflateTruncated) {
			t.Errorf("Decode() = %v, want ErrInflateTruncated", err)
		}
	})
}
