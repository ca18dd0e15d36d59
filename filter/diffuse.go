package filter

import (
	"math"

	"github.com/opd-ai/rasterkit/frame"
)

// websafeLevels are the six web-safe sample values.
var websafeLevels = [...]float64{0, 51, 102, 153, 204, 255}

// DiffuseEffect posterizes a frame to six gray web-safe levels and spreads
// each pixel's quantization error over its unvisited neighbors with
// Floyd-Steinberg weights (7/16 right, 3/16 below left, 5/16 below,
// 1/16 below right).
//
// Each pixel takes the single level with the smallest summed absolute
// difference over its three channels and writes it to all of them, so the
// output is gray. The error stays per channel.
type DiffuseEffect struct{}

// NewDiffuse creates the error diffusion kernel.
func NewDiffuse() *DiffuseEffect {
	return &DiffuseEffect{}
}

// Apply renders the diffused src into dst, scanning rows top to bottom and
// pixels left to right.
func (de *DiffuseEffect) Apply(dst, src *frame.Buffer) error {
	if err := checkBuffers(dst, src, false); err != nil {
		return err
	}

	// Error rows carry one spare pixel on each side so edge pixels need no
	// bounds checks; error pushed into the margins is dropped.
	width := src.Width
	cur := make([][3]float64, width+2)
	next := make([][3]float64, width+2)

	for y := 0; y < src.Height; y++ {
		for x := 0; x < width; x++ {
			i := src.Offset(x, y)
			var v [3]float64
			for c := 0; c < 3; c++ {
				v[c] = float64(src.Pix[i+c]) + cur[x+1][c]
			}

			level := nearestLevel(v)
			dst.Pix[i] = byte(level)
			dst.Pix[i+1] = byte(level)
			dst.Pix[i+2] = byte(level)

			for c := 0; c < 3; c++ {
				e := v[c] - level
				cur[x+2][c] += e * 7 / 16
				next[x][c] += e * 3 / 16
				next[x+1][c] += e * 5 / 16
				next[x+2][c] += e * 1 / 16
			}
		}
		cur, next = next, cur
		clear(next)
	}
	return nil
}

// nearestLevel returns the first level with the smallest summed distance.
func nearestLevel(v [3]float64) float64 {
	best, bestDist := websafeLevels[0], math.Inf(1)
	for _, l := range websafeLevels {
		d := math.Abs(v[0]-l) + math.Abs(v[1]-l) + math.Abs(v[2]-l)
		if d < bestDist {
			best, bestDist = l, d
		}
	}
	return best
}

// Name returns the kernel name.
func (de *DiffuseEffect) Name() string {
	return "Diffuse"
}

// InPlace reports false: errors flow into pixels not yet read.
func (de *DiffuseEffect) InPlace() bool {
	return false
}
