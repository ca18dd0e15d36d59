package imagefile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/opd-ai/rasterkit/filter"
)

var (
	// ErrUnsupportedFormat indicates a file extension other than .ppm or .bmp.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrEmptyImage indicates a PPM file without a frame.
	ErrEmptyImage = errors.New("image file contains no frame")
)

// Format identifies a still-image container.
type Format int

const (
	// FormatPPM is a binary PPM (P6) file.
	FormatPPM Format = iota + 1
	// FormatBMP is an uncompressed Windows bitmap.
	FormatBMP
)

// String returns the conventional extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatPPM:
		return "ppm"
	case FormatBMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// FormatFor returns the format implied by a path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return FormatPPM, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return 0, fmt.Errorf("%w: %q (want .ppm or .bmp)", ErrUnsupportedFormat, path)
	}
}

// DefaultKernel returns the kernel name the converter applies to a file
// when none is given: Rec. 601 grayscale for PPM, luminosity for BMP.
func DefaultKernel(path string) string {
	if f, err := FormatFor(path); err == nil && f == FormatBMP {
		return filter.NameLuminosity
	}
	return filter.NameGrayscale
}
