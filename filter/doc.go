// Package filter provides the per-frame pixel kernels applied by the raster
// stream tools.
//
// Every kernel maps one frame.Buffer to another of identical size:
//
//	k, err := filter.NewKuwahara(7)
//	if err != nil {
//	    return err
//	}
//	out, spare, err := filter.Apply(k, buf, scratch)
//
// Apply runs the kernel in place when it can and otherwise renders into the
// scratch buffer and swaps the two, so a caller that keeps both returned
// buffers never allocates while the frame size is unchanged.
//
// # Kernels
//
//   - Grayscale: Rec. 601 luma, 0.299 R + 0.587 G + 0.114 B
//   - Luminosity: 0.21 R + 0.72 G + 0.07 B, used by the BMP converter
//   - BoxBlur: mean over a (2r+1)² window clipped to the image
//   - OrderedDither: Bayer threshold offsets (Dither2, Dither4)
//   - Kuwahara: edge-preserving smoothing by minimum-variance quadrant
//   - Websafe: nearest of the six web-safe levels per channel
//
// Kernels hold only their static configuration and are safe to share
// between goroutines; the buffers they are given are not.
package filter
