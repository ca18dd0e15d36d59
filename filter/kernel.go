package filter

import (
	"errors"
	"fmt"

	"github.com/opd-ai/rasterkit/frame"
)

var (
	// ErrNilFrame indicates a nil source or destination buffer.
	ErrNilFrame = errors.New("input frame cannot be nil")

	// ErrSizeMismatch indicates source and destination dimensions differ.
	ErrSizeMismatch = errors.New("frame size mismatch")

	// ErrAliasedBuffers indicates a kernel that needs a separate destination
	// was given the source buffer as its destination.
	ErrAliasedBuffers = errors.New("kernel cannot run in place")

	// ErrInvalidParameter indicates an out-of-range kernel parameter.
	ErrInvalidParameter = errors.New("invalid kernel parameter")

	// ErrUnknownKernel indicates a kernel name Parse does not recognize.
	ErrUnknownKernel = errors.New("unknown kernel")
)

// Kernel is a stateless transform from one frame to another of the same size.
type Kernel interface {
	// Apply writes the transformed src into dst. Kernels reporting InPlace
	// accept dst == src; all others require distinct buffers.
	Apply(dst, src *frame.Buffer) error
	// Name returns the kernel name for identification.
	Name() string
	// InPlace reports whether every output sample depends only on the
	// input samples at the same position.
	InPlace() bool
}

// Apply runs k over buf once.
//
// In-place kernels mutate buf and return it with scratch untouched. Other
// kernels render into scratch, resized with frame.Ensure, and the two buffers
// swap roles: out holds the result and spare holds the old input. Callers
// keep both for the next frame.
func Apply(k Kernel, buf, scratch *frame.Buffer) (out, spare *frame.Buffer, err error) {
	if buf == nil {
		return nil, scratch, ErrNilFrame
	}
	if k.InPlace() {
		if err := k.Apply(buf, buf); err != nil {
			return buf, scratch, fmt.Errorf("%s: %w", k.Name(), err)
		}
		return buf, scratch, nil
	}

	scratch = frame.Ensure(scratch, buf.Width, buf.Height)
	if scratch == buf {
		scratch = frame.New(buf.Width, buf.Height)
	}
	if err := k.Apply(scratch, buf); err != nil {
		return buf, scratch, fmt.Errorf("%s: %w", k.Name(), err)
	}
	return scratch, buf, nil
}

// checkBuffers validates a destination/source pair for a kernel.
func checkBuffers(dst, src *frame.Buffer, inPlace bool) error {
	if dst == nil || src == nil {
		return ErrNilFrame
	}
	if !dst.SameSize(src) {
		return fmt.Errorf("%w: dst %s, src %s", ErrSizeMismatch, dst, src)
	}
	if !inPlace && aliased(dst, src) {
		return ErrAliasedBuffers
	}
	return nil
}

func aliased(a, b *frame.Buffer) bool {
	if a == b {
		return true
	}
	return len(a.Pix) > 0 && len(b.Pix) > 0 && &a.Pix[0] == &b.Pix[0]
}
