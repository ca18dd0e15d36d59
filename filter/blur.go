package filter

import (
	"fmt"

	"github.com/opd-ai/rasterkit/frame"
)

// DefaultBlurRadius is the radius of the stream blur filter (a 5x5 window).
const DefaultBlurRadius = 2

// BlurEffect applies a box blur to all three channels.
type BlurEffect struct {
	radius int
}

// NewBoxBlur creates a box blur averaging a (2*radius+1)² window.
// radius must be at least 1.
func NewBoxBlur(radius int) (*BlurEffect, error) {
	if radius < 1 {
		return nil, fmt.Errorf("%w: blur radius %d, must be >= 1", ErrInvalidParameter, radius)
	}
	return &BlurEffect{radius: radius}, nil
}

// Apply writes the windowed mean of src into dst.
//
// The window is clipped to the image, so border pixels average fewer
// neighbors; there is no wraparound or mirroring. Means are truncated.
func (be *BlurEffect) Apply(dst, src *frame.Buffer) error {
	if err := checkBuffers(dst, src, false); err != nil {
		return err
	}

	width, height := src.Width, src.Height
	for y := 0; y < height; y++ {
		y0, y1 := clip(y-be.radius, y+be.radius, height)
		for x := 0; x < width; x++ {
			x0, x1 := clip(x-be.radius, x+be.radius, width)

			var sumR, sumG, sumB int
			for ny := y0; ny <= y1; ny++ {
				row := src.Pix[src.Offset(x0, ny):src.Offset(x1+1, ny)]
				for i := 0; i < len(row); i += 3 {
					sumR += int(row[i])
					sumG += int(row[i+1])
					sumB += int(row[i+2])
				}
			}

			count := (x1 - x0 + 1) * (y1 - y0 + 1)
			i := dst.Offset(x, y)
			dst.Pix[i] = byte(sumR / count)
			dst.Pix[i+1] = byte(sumG / count)
			dst.Pix[i+2] = byte(sumB / count)
		}
	}
	return nil
}

// Name returns the kernel name.
func (be *BlurEffect) Name() string {
	return fmt.Sprintf("BoxBlur(%d)", be.radius)
}

// InPlace reports false: outputs depend on neighboring inputs.
func (be *BlurEffect) InPlace() bool {
	return false
}

// Radius returns the blur radius.
func (be *BlurEffect) Radius() int {
	return be.radius
}

// clip bounds the inclusive range [lo, hi] to [0, n-1].
func clip(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi
}
