package filter

import (
	"github.com/opd-ai/rasterkit/frame"
)

// LumaWeights are the per-channel coefficients of a luminance formula.
type LumaWeights struct {
	R, G, B float64
}

var (
	// Rec601 is the luma formula used by the video grayscale filter.
	Rec601 = LumaWeights{R: 0.299, G: 0.587, B: 0.114}

	// LuminosityWeights is the formula used by the BMP converter. It is not
	// equivalent to Rec601.
	LuminosityWeights = LumaWeights{R: 0.21, G: 0.72, B: 0.07}
)

// truncationSlack absorbs float error when truncating a weighted sum. The
// weights have at most three decimals, so an exact sum is either an integer
// or at least 0.001 away from the next one.
const truncationSlack = 1e-6

// GrayscaleEffect replaces every pixel with its luminance.
type GrayscaleEffect struct {
	name    string
	weights LumaWeights
}

// NewGrayscale creates the Rec. 601 grayscale kernel.
func NewGrayscale() *GrayscaleEffect {
	return &GrayscaleEffect{name: "Grayscale", weights: Rec601}
}

// NewLuminosity creates the luminosity grayscale kernel.
func NewLuminosity() *GrayscaleEffect {
	return &GrayscaleEffect{name: "Luminosity", weights: LuminosityWeights}
}

// Luma returns the truncated luminance of one pixel.
func (w LumaWeights) Luma(r, g, b byte) byte {
	v := w.R*float64(r) + w.G*float64(g) + w.B*float64(b) + truncationSlack
	if v >= 255 {
		return 255
	}
	return byte(v)
}

// Apply writes the luminance of each src pixel into all three channels of dst.
func (ge *GrayscaleEffect) Apply(dst, src *frame.Buffer) error {
	if err := checkBuffers(dst, src, true); err != nil {
		return err
	}

	s, d := src.Pix, dst.Pix
	for i := 0; i+2 < len(s); i += 3 {
		g := ge.weights.Luma(s[i], s[i+1], s[i+2])
		d[i], d[i+1], d[i+2] = g, g, g
	}
	return nil
}

// Name returns the kernel name.
func (ge *GrayscaleEffect) Name() string {
	return ge.name
}

// InPlace reports true: each output pixel depends only on the same input pixel.
func (ge *GrayscaleEffect) InPlace() bool {
	return true
}

// Weights returns the luminance coefficients.
func (ge *GrayscaleEffect) Weights() LumaWeights {
	return ge.weights
}
