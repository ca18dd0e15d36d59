package filter

import (
	"fmt"
	"math"

	"github.com/opd-ai/rasterkit/frame"
)

var (
	// Bayer2 is the 2x2 ordered dither threshold matrix.
	Bayer2 = [][]float64{
		{0.0 / 4, 2.0 / 4},
		{3.0 / 4, 1.0 / 4},
	}

	// Bayer4 is the 4x4 ordered dither threshold matrix.
	Bayer4 = [][]float64{
		{0.0 / 16, 8.0 / 16, 2.0 / 16, 10.0 / 16},
		{12.0 / 16, 4.0 / 16, 14.0 / 16, 6.0 / 16},
		{3.0 / 16, 11.0 / 16, 1.0 / 16, 9.0 / 16},
		{15.0 / 16, 7.0 / 16, 13.0 / 16, 5.0 / 16},
	}
)

// DitherEffect brightens each sample by a position-dependent threshold
// offset taken from an N×N matrix tiled over the image.
type DitherEffect struct {
	name    string
	offsets [][]int
}

// NewOrderedDither creates a dither kernel from a square matrix with values
// in [0, 1). Each value is scaled to an offset round(m*255).
func NewOrderedDither(name string, matrix [][]float64) (*DitherEffect, error) {
	n := len(matrix)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty dither matrix", ErrInvalidParameter)
	}

	offsets := make([][]int, n)
	for y, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: dither matrix row %d has %d values, want %d", ErrInvalidParameter, y, len(row), n)
		}
		offsets[y] = make([]int, n)
		for x, m := range row {
			if m < 0 || m >= 1 || math.IsNaN(m) {
				return nil, fmt.Errorf("%w: dither value %v at (%d,%d) outside [0,1)", ErrInvalidParameter, m, x, y)
			}
			offsets[y][x] = int(math.Round(m * 255))
		}
	}

	return &DitherEffect{name: name, offsets: offsets}, nil
}

// NewDither2 creates the 2x2 Bayer dither kernel.
func NewDither2() *DitherEffect {
	d, _ := NewOrderedDither("Dither2", Bayer2)
	return d
}

// NewDither4 creates the 4x4 Bayer dither kernel.
func NewDither4() *DitherEffect {
	d, _ := NewOrderedDither("Dither4", Bayer4)
	return d
}

// Apply writes min(255, in + offset[y mod N][x mod N]) for every sample.
func (de *DitherEffect) Apply(dst, src *frame.Buffer) error {
	if err := checkBuffers(dst, src, false); err != nil {
		return err
	}

	n := len(de.offsets)
	for y := 0; y < src.Height; y++ {
		row := de.offsets[y%n]
		for x := 0; x < src.Width; x++ {
			off := row[x%n]
			i := src.Offset(x, y)
			for c := 0; c < 3; c++ {
				v := int(src.Pix[i+c]) + off
				if v > 255 {
					v = 255
				}
				dst.Pix[i+c] = byte(v)
			}
		}
	}
	return nil
}

// Name returns the kernel name.
func (de *DitherEffect) Name() string {
	return de.name
}

// InPlace reports false; the stream dither filters render into a scratch frame.
func (de *DitherEffect) InPlace() bool {
	return false
}

// Size returns the matrix dimension N.
func (de *DitherEffect) Size() int {
	return len(de.offsets)
}
