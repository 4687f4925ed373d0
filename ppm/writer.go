// Package ppm emits decoded images as plain-text PPM (the P3 format).
package ppm

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"png2ppm/pngdec"
)

// Write emits img to w as plain-text PPM: a "P3 <width> <height> 255" header
// line, then one line per row of space-separated decimal RGB values.
//
// Only the first three channels of each sample are emitted; an alpha channel,
// when present, is decoded but dropped from the output.
func Write(w io.Writer, img *pngdec.Image) error {
	bw := bufio.NewWriter(w)

	h := img.Header
	line := []byte("P3 ")
	line = strconv.AppendUint(line, uint64(h.Width), 10)
	line = append(line, ' ')
	line = strconv.AppendUint(line, uint64(h.Height), 10)
	line = append(line, " 255\n"...)
	if _, err := bw.Write(line); err != nil {
		return err
	}

	pixelSize := h.PixelSize()
	line = line[:0]
	for y := 0; y < int(h.Height); y++ {
		row := img.Row(y)
		line = line[:0]
		for x := 0; x < int(h.Width); x++ {
			sample := row[x*pixelSize:]
			for i := 0; i < 3; i++ {
				line = strconv.AppendUint(line, uint64(sample[i]), 10)
				line = append(line, ' ')
			}
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes img to path, creating or truncating the file.
func WriteFile(path string, img *pngdec.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
