package iraster

import (
	"image"
	"image/color"
)

// Framebuffer is a row-major buffer of packed colors, one word per pixel.
//
// Each pixel is written once per render and distinct pixels never share
// state, so rows may be filled concurrently without synchronization.
// Framebuffer implements image.Image; the X, Y, Z lanes are read as
// R, G, B and every pixel is opaque. The W lane is padding and never
// reaches an encoder.
type Framebuffer struct {
	width  int
	height int
	pix    []Vec4
}

// NewFramebuffer allocates a framebuffer of the given dimensions, cleared
// to Black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]Vec4, width*height),
	}
}

// Width returns the framebuffer width.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the framebuffer height.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Words returns the underlying pixel slice, row-major.
func (fb *Framebuffer) Words() []Vec4 {
	return fb.pix
}

// Row returns the pixels of row y. It panics if y is out of range.
func (fb *Framebuffer) Row(y int) []Vec4 {
	i := y * fb.width
	return fb.pix[i : i+fb.width]
}

// SetPixel stores c at (x, y). Out-of-bounds writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c Vec4) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.pix[y*fb.width+x] = c
}

// Pixel returns the packed color at (x, y), or Black outside the buffer.
func (fb *Framebuffer) Pixel(x, y int) Vec4 {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return Black
	}
	return fb.pix[y*fb.width+x]
}

// ToImage converts the framebuffer to an opaque image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for i, c := range fb.pix {
		j := i * 4
		img.Pix[j+0] = c.X()
		img.Pix[j+1] = c.Y()
		img.Pix[j+2] = c.Z()
		img.Pix[j+3] = 255
	}
	return img
}

// At implements the image.Image interface.
func (fb *Framebuffer) At(x, y int) color.Color {
	c := fb.Pixel(x, y)
	return color.RGBA{R: c.X(), G: c.Y(), B: c.Z(), A: 255}
}

// Bounds implements the image.Image interface.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// ColorModel implements the image.Image interface.
func (fb *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}
