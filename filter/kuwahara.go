package filter

import (
	"fmt"
	"math"

	"github.com/opd-ai/rasterkit/frame"
)

// DefaultKuwaharaSize is the window size of the stream Kuwahara filter.
const DefaultKuwaharaSize = 7

// KuwaharaEffect is an edge-preserving smoothing filter.
//
// For each pixel it examines four overlapping (pad+1)×(pad+1) quadrants that
// share the pixel's row and column, pad = size/2, and outputs the mean color
// of the quadrant with the lowest variance. Flat areas are smoothed while
// edges keep the side they belong to.
type KuwaharaEffect struct {
	size int
}

// NewKuwahara creates a Kuwahara kernel with the given window size.
// size must be at least 1; size 1 is the identity.
func NewKuwahara(size int) (*KuwaharaEffect, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: kuwahara size %d, must be >= 1", ErrInvalidParameter, size)
	}
	return &KuwaharaEffect{size: size}, nil
}

// regionStats accumulates per-channel sums over a rectangle of pixels.
type regionStats struct {
	sum   [3]int64
	sumSq [3]int64
	count int64
}

// accumulate adds the inclusive rectangle [x0,x1]×[y0,y1] of src.
func (rs *regionStats) accumulate(src *frame.Buffer, x0, y0, x1, y1 int) {
	*rs = regionStats{}
	for y := y0; y <= y1; y++ {
		row := src.Pix[src.Offset(x0, y):src.Offset(x1+1, y)]
		for i := 0; i < len(row); i += 3 {
			for c := 0; c < 3; c++ {
				v := int64(row[i+c])
				rs.sum[c] += v
				rs.sumSq[c] += v * v
			}
		}
		rs.count += int64(x1 - x0 + 1)
	}
}

// variance returns the population variance averaged over the three channels.
//
// Per channel n²·var = n·Σv² − (Σv)², which is exact in integers; only the
// final division rounds, so equal variances compare equal.
func (rs *regionStats) variance() float64 {
	n := rs.count
	var num int64
	for c := 0; c < 3; c++ {
		s := rs.sum[c]
		num += n*rs.sumSq[c] - s*s
	}
	return float64(num) / float64(3*n*n)
}

// Apply writes the smoothed src into dst.
func (ke *KuwaharaEffect) Apply(dst, src *frame.Buffer) error {
	if err := checkBuffers(dst, src, false); err != nil {
		return err
	}

	pad := ke.size / 2
	// Row and column offsets {dy0, dx0, dy1, dx1}, in evaluation order.
	// Earlier quadrants win ties.
	quadrants := [4][4]int{
		{-pad, -pad, 0, 0}, // top left
		{-pad, 0, 0, pad},  // top right
		{0, -pad, pad, 0},  // bottom left
		{0, 0, pad, pad},   // bottom right
	}

	width, height := src.Width, src.Height
	var rs regionStats
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			best := math.Inf(1)
			var mean [3]int64

			for _, q := range quadrants {
				y0, y1 := clip(y+q[0], y+q[2], height)
				x0, x1 := clip(x+q[1], x+q[3], width)
				if y0 > y1 || x0 > x1 {
					continue
				}

				rs.accumulate(src, x0, y0, x1, y1)
				if rs.count == 0 {
					continue
				}
				if v := rs.variance(); v < best {
					best = v
					for c := 0; c < 3; c++ {
						mean[c] = rs.sum[c] / rs.count
					}
				}
			}

			i := dst.Offset(x, y)
			dst.Pix[i] = byte(mean[0])
			dst.Pix[i+1] = byte(mean[1])
			dst.Pix[i+2] = byte(mean[2])
		}
	}
	return nil
}

// Name returns the kernel name.
func (ke *KuwaharaEffect) Name() string {
	return fmt.Sprintf("Kuwahara(%d)", ke.size)
}

// InPlace reports false: outputs depend on neighboring inputs.
func (ke *KuwaharaEffect) InPlace() bool {
	return false
}

// Size returns the window size.
func (ke *KuwaharaEffect) Size() int {
	return ke.size
}
