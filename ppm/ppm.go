// Package ppm writes framebuffers as portable pixmaps.
//
// Two encodings are supported:
//
//   - P6 (binary): header "P6 <w> <h> 255\n", then R, G, B bytes per pixel
//   - P3 (ASCII): header "P3 <w> <h> 255\n", then "<R> <G> <B> " per pixel
//     and one newline per row
//
// R, G and B are the X, Y and Z lanes of each packed pixel; the W lane is
// never written.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/gogpu/iraster"
)

// Encode writes fb to w, as P6 when binary is true and P3 otherwise.
func Encode(w io.Writer, fb *iraster.Framebuffer, binary bool) error {
	if binary {
		return EncodeBinary(w, fb)
	}
	return EncodeASCII(w, fb)
}

// EncodeBinary writes fb as a P6 pixmap.
func EncodeBinary(w io.Writer, fb *iraster.Framebuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6 %d %d 255\n", fb.Width(), fb.Height()); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}
	rgb := make([]byte, 0, fb.Width()*3)
	for y := range fb.Height() {
		rgb = rgb[:0]
		for _, c := range fb.Row(y) {
			rgb = append(rgb, c.X(), c.Y(), c.Z())
		}
		if _, err := bw.Write(rgb); err != nil {
			return fmt.Errorf("ppm: write row %d: %w", y, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: flush: %w", err)
	}
	return nil
}

// EncodeASCII writes fb as a P3 pixmap.
func EncodeASCII(w io.Writer, fb *iraster.Framebuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3 %d %d 255\n", fb.Width(), fb.Height()); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}
	var line []byte
	for y := range fb.Height() {
		line = line[:0]
		for _, c := range fb.Row(y) {
			line = strconv.AppendUint(line, uint64(c.X()), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(c.Y()), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(c.Z()), 10)
			line = append(line, ' ')
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("ppm: write row %d: %w", y, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: flush: %w", err)
	}
	return nil
}
