// Package limits provides centralized frame size limits for the raster tools.
// This ensures consistent validation across the stream reader and converters.
package limits

import (
	"errors"
	"fmt"
)

const (
	// BytesPerPixel is the number of interleaved samples per pixel (R, G, B).
	BytesPerPixel = 3

	// MaxSampleValue is the only maxval accepted in a frame header.
	MaxSampleValue = 255

	// MaxDimension is the largest accepted frame width or height.
	MaxDimension = 1 << 15

	// MaxSamples is the largest accepted payload in bytes (1 GiB).
	MaxSamples = 1 << 30
)

var (
	// ErrInvalidDimensions indicates a negative width or height.
	ErrInvalidDimensions = errors.New("invalid frame dimensions")

	// ErrFrameTooLarge indicates a frame that cannot be buffered.
	ErrFrameTooLarge = errors.New("frame too large")
)

// SampleCount returns width*height*3 without validating the inputs. The
// result only fits an int for dimensions ValidateDimensions accepts.
func SampleCount(width, height int) int {
	return width * height * BytesPerPixel
}

// ValidateDimensions checks width and height against MaxDimension and the
// resulting payload against MaxSamples.
func ValidateDimensions(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds side limit %d", ErrFrameTooLarge, width, height, MaxDimension)
	}
	if n := int64(width) * int64(height) * BytesPerPixel; n > MaxSamples {
		return fmt.Errorf("%w: payload %d bytes exceeds limit %d", ErrFrameTooLarge, n, MaxSamples)
	}
	return nil
}
