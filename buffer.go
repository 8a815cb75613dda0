package polyclip

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Buffer errors.
var (
	// ErrInvalidSize is returned when a buffer dimension is not positive.
	ErrInvalidSize = errors.New("polyclip: invalid buffer size")
)

// Buffer is a fixed-size grid of RGB pixels addressed by (x, y) with the
// origin at the top-left.
//
// Writes outside the grid are silently dropped; every rasterizer relies on
// that. A Buffer is not safe for concurrent use.
type Buffer struct {
	width      int
	height     int
	background Color
	data       []uint8 // RGB format, 3 bytes per pixel
}

// NewBuffer creates a buffer with the given dimensions, filled with the
// background color (DarkGray unless overridden by [WithBackground]).
func NewBuffer(width, height int, opts ...BufferOption) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Buffer{
		width:      width,
		height:     height,
		background: o.background,
		data:       make([]uint8, width*height*3),
	}
	b.Clear(o.background)
	return b, nil
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Background returns the color the buffer was created with.
func (b *Buffer) Background() Color {
	return b.background
}

// Data returns the raw pixel data (RGB format, row-major, top row first).
func (b *Buffer) Data() []uint8 {
	return b.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are ignored.
func (b *Buffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 3
	b.data[i+0] = c.R
	b.data[i+1] = c.G
	b.data[i+2] = c.B
}

// GetPixel returns the color of a single pixel, or the zero Color when out
// of bounds.
func (b *Buffer) GetPixel(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Color{}
	}
	i := (y*b.width + x) * 3
	return Color{R: b.data[i+0], G: b.data[i+1], B: b.data[i+2]}
}

// RGB returns the channels of a single pixel. It lets encoders read the
// buffer without depending on this package.
func (b *Buffer) RGB(x, y int) (uint8, uint8, uint8) {
	c := b.GetPixel(x, y)
	return c.R, c.G, c.B
}

// Clear fills the entire buffer with a color.
func (b *Buffer) Clear(c Color) {
	for i := 0; i < len(b.data); i += 3 {
		b.data[i+0] = c.R
		b.data[i+1] = c.G
		b.data[i+2] = c.B
	}
}

// Reset fills the buffer with its background color.
func (b *Buffer) Reset() {
	b.Clear(b.background)
}

// ToImage converts the buffer to an opaque image.NRGBA.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for src, dst := 0, 0; src < len(b.data); src, dst = src+3, dst+4 {
		img.Pix[dst+0] = b.data[src+0]
		img.Pix[dst+1] = b.data[src+1]
		img.Pix[dst+2] = b.data[src+2]
		img.Pix[dst+3] = 0xff
	}
	return img
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.GetPixel(x, y)
}

// Set implements the draw.Image interface.
func (b *Buffer) Set(x, y int, c color.Color) {
	b.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return ColorModel
}
