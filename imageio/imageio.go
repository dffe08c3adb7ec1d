// Package imageio saves and loads framebuffers in the formats the
// command-line tool supports.
//
// Besides PPM, framebuffers can be written as PNG, BMP and TIFF, or as a
// raw dump of the packed words. The raw dump stores each pixel as a
// little-endian 32-bit word, row-major, which is the memory image a
// 32-bit RISC-V target leaves in its framebuffer; a dump taken from a
// simulator can be loaded back with LoadRaw and compared.
package imageio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/iraster"
	"github.com/gogpu/iraster/ppm"
)

// ErrUnsupportedFormat is returned for unknown file extensions.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// ErrSizeMismatch is returned when a raw dump does not hold exactly
// width*height words.
var ErrSizeMismatch = errors.New("imageio: raw dump size mismatch")

// Format identifies an output encoding.
type Format int

const (
	// FormatPPM is a netpbm P6 or P3 file (.ppm).
	FormatPPM Format = iota
	// FormatPNG is a PNG file (.png).
	FormatPNG
	// FormatBMP is a 24-bit BMP file (.bmp).
	FormatBMP
	// FormatTIFF is a Deflate-compressed TIFF file (.tif, .tiff).
	FormatTIFF
	// FormatRaw is the packed words as little-endian uint32 (.bin).
	FormatRaw
	// FormatRawZstd is FormatRaw compressed with zstd (.bin.zst).
	FormatRawZstd
)

var formatNames = [...]string{
	FormatPPM:     "ppm",
	FormatPNG:     "png",
	FormatBMP:     "bmp",
	FormatTIFF:    "tiff",
	FormatRaw:     "raw",
	FormatRawZstd: "raw+zstd",
}

// String returns the format name used in log output.
func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks the format from the file extension:
// .ppm, .png, .bmp, .tif/.tiff, .bin, .bin.zst.
func FormatFromPath(path string) (Format, error) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".bin.zst") {
		return FormatRawZstd, nil
	}
	switch filepath.Ext(lower) {
	case ".ppm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".bin":
		return FormatRaw, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Options control encoding.
type Options struct {
	// BinaryPPM selects P6 over P3.
	BinaryPPM bool
}

// Encode writes fb to w in format f.
func Encode(w io.Writer, fb *iraster.Framebuffer, f Format, opts Options) error {
	switch f {
	case FormatPPM:
		return ppm.Encode(w, fb, opts.BinaryPPM)
	case FormatPNG:
		return png.Encode(w, fb.ToImage())
	case FormatBMP:
		return bmp.Encode(w, fb.ToImage())
	case FormatTIFF:
		return tiff.Encode(w, fb.ToImage(), &tiff.Options{Compression: tiff.Deflate})
	case FormatRaw:
		return encodeRaw(w, fb)
	case FormatRawZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("imageio: zstd writer: %w", err)
		}
		if err := encodeRaw(enc, fb); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// Save writes fb to path in the format implied by its extension.
func Save(path string, fb *iraster.Framebuffer, opts Options) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := Encode(file, fb, f, opts); err != nil {
		_ = file.Close()
		return fmt.Errorf("imageio: encode %s: %w", f, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("imageio: close file: %w", err)
	}
	iraster.Logger().Info("framebuffer written", "path", path, "format", f.String())
	return nil
}

func encodeRaw(w io.Writer, fb *iraster.Framebuffer) error {
	bw := bufio.NewWriter(w)
	var word [4]byte
	for _, c := range fb.Words() {
		binary.LittleEndian.PutUint32(word[:], uint32(c))
		if _, err := bw.Write(word[:]); err != nil {
			return fmt.Errorf("imageio: write raw: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("imageio: write raw: %w", err)
	}
	return nil
}

// DecodeRaw reads a raw word dump of a width x height framebuffer.
// compressed selects zstd-compressed input.
func DecodeRaw(r io.Reader, width, height int, compressed bool) (*iraster.Framebuffer, error) {
	if compressed {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("imageio: zstd reader: %w", err)
		}
		defer dec.Close()
		r = dec
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: read raw: %w", err)
	}
	if len(data) != width*height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrSizeMismatch, len(data), width, height)
	}
	fb := iraster.NewFramebuffer(width, height)
	for y := range height {
		for x := range width {
			off := (y*width + x) * 4
			fb.SetPixel(x, y, iraster.Vec4(binary.LittleEndian.Uint32(data[off:])))
		}
	}
	return fb, nil
}

// LoadRaw reads a .bin or .bin.zst dump from path.
func LoadRaw(path string, width, height int) (*iraster.Framebuffer, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	if f != FormatRaw && f != FormatRawZstd {
		return nil, fmt.Errorf("%w: %s is not a raw dump", ErrUnsupportedFormat, path)
	}
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return DecodeRaw(file, width, height, f == FormatRawZstd)
}

// Diff returns the number of pixels whose packed words differ, and the
// first differing pixel when count > 0. Framebuffers of different sizes
// are reported as ErrSizeMismatch.
func Diff(a, b *iraster.Framebuffer) (count, firstX, firstY int, err error) {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return 0, 0, 0, fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, a.Width(), a.Height(), b.Width(), b.Height())
	}
	firstX, firstY = -1, -1
	aw, bw := a.Words(), b.Words()
	for i := range aw {
		if aw[i] != bw[i] {
			if count == 0 {
				firstX, firstY = i%a.Width(), i/a.Width()
			}
			count++
		}
	}
	return count, firstX, firstY, nil
}
