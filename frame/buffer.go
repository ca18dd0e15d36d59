package frame

import (
	"fmt"

	"github.com/opd-ai/rasterkit/limits"
)

// Buffer is a width×height RGB image with interleaved 8-bit samples.
//
// The invariant len(Pix) == Width*Height*3 holds for every Buffer created by
// New or Ensure.
type Buffer struct {
	Width  int
	Height int
	Pix    []byte
}

// New allocates a zeroed buffer of the given dimensions.
// Negative dimensions are a programming error and panic.
func New(width, height int) *Buffer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("frame: negative dimensions %dx%d", width, height))
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, limits.SampleCount(width, height)),
	}
}

// Ensure returns a buffer sized exactly width×height×3.
//
// If prev is non-nil and already has the requested dimensions it is returned
// unchanged, contents included. Otherwise a new buffer is allocated and prev
// is left for the garbage collector.
func Ensure(prev *Buffer, width, height int) *Buffer {
	if prev != nil && prev.Width == width && prev.Height == height {
		return prev
	}
	return New(width, height)
}

// Len returns the number of samples in the buffer.
func (b *Buffer) Len() int {
	return len(b.Pix)
}

// Offset returns the index of the red sample of pixel (x, y).
func (b *Buffer) Offset(x, y int) int {
	return (y*b.Width + x) * limits.BytesPerPixel
}

// InBounds reports whether (x, y) addresses a pixel of b.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Pixel returns the samples at (x, y). It panics if (x, y) is out of range.
func (b *Buffer) Pixel(x, y int) (r, g, bl byte) {
	b.mustContain(x, y)
	i := b.Offset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// SetPixel stores the samples at (x, y). It panics if (x, y) is out of range.
func (b *Buffer) SetPixel(x, y int, r, g, bl byte) {
	b.mustContain(x, y)
	i := b.Offset(x, y)
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
}

// SameSize reports whether o has the same dimensions as b.
func (b *Buffer) SameSize(o *Buffer) bool {
	return o != nil && b.Width == o.Width && b.Height == o.Height
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		Width:  b.Width,
		Height: b.Height,
		Pix:    append([]byte(nil), b.Pix...),
	}
}

// Fill sets every pixel to the given color.
func (b *Buffer) Fill(r, g, bl byte) {
	for i := 0; i+2 < len(b.Pix); i += limits.BytesPerPixel {
		b.Pix[i] = r
		b.Pix[i+1] = g
		b.Pix[i+2] = bl
	}
}

// String returns a short description such as "640x480".
func (b *Buffer) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

func (b *Buffer) mustContain(x, y int) {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("frame: pixel (%d,%d) out of range for %dx%d buffer", x, y, b.Width, b.Height))
	}
}
