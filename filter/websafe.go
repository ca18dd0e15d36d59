package filter

import (
	"github.com/opd-ai/rasterkit/frame"
)

// websafeStep is the spacing of the six web-safe levels 0, 51, ..., 255.
const websafeStep = 51

// WebsafeEffect quantizes each channel to the nearest web-safe level.
type WebsafeEffect struct{}

// NewWebsafe creates the web-safe palette kernel.
func NewWebsafe() *WebsafeEffect {
	return &WebsafeEffect{}
}

// Apply maps every sample of src to the nearest multiple of 51 in dst.
func (we *WebsafeEffect) Apply(dst, src *frame.Buffer) error {
	if err := checkBuffers(dst, src, true); err != nil {
		return err
	}
	for i, v := range src.Pix {
		dst.Pix[i] = websafeLevel(v)
	}
	return nil
}

// websafeLevel rounds v to the nearest level. The step is odd, so no
// sample is equidistant from two levels.
func websafeLevel(v byte) byte {
	return byte((int(v) + websafeStep/2) / websafeStep * websafeStep)
}

// Name returns the kernel name.
func (we *WebsafeEffect) Name() string {
	return "Websafe"
}

// InPlace reports true.
func (we *WebsafeEffect) InPlace() bool {
	return true
}
