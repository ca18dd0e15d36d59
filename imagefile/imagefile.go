package imagefile

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/opd-ai/rasterkit/frame"
	"github.com/opd-ai/rasterkit/limits"
	"github.com/opd-ai/rasterkit/stream"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/bmp"
)

// ReadPPM decodes the first frame of a P6 file.
func ReadPPM(r io.Reader) (*frame.Buffer, error) {
	buf, err := stream.NewReader(r).Next(nil)
	if stream.IsEndOfStream(err) {
		return nil, ErrEmptyImage
	}
	if err != nil {
		return nil, fmt.Errorf("decoding ppm: %w", err)
	}
	return buf, nil
}

// WritePPM encodes buf as a single P6 image.
func WritePPM(w io.Writer, buf *frame.Buffer) error {
	return stream.NewWriter(w).Write(buf)
}

// ReadBMP decodes a BMP image into the canonical layout.
func ReadBMP(r io.Reader) (*frame.Buffer, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding bmp: %w", err)
	}
	return FromImage(img)
}

// WriteBMP encodes buf as a 24-bit BMP.
func WriteBMP(w io.Writer, buf *frame.Buffer) error {
	if buf == nil {
		return stream.ErrNilFrame
	}
	if err := bmp.Encode(w, ToImage(buf)); err != nil {
		return fmt.Errorf("encoding bmp: %w", err)
	}
	return nil
}

// FromImage copies any image into a new buffer, dropping alpha.
func FromImage(img image.Image) (*frame.Buffer, error) {
	bounds := img.Bounds()
	if err := limits.ValidateDimensions(bounds.Dx(), bounds.Dy()); err != nil {
		return nil, err
	}
	buf := frame.New(bounds.Dx(), bounds.Dy())

	if m, ok := img.(*image.RGBA); ok && m.Opaque() {
		for y := 0; y < buf.Height; y++ {
			row := m.Pix[m.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := 0; x < buf.Width; x++ {
				i := buf.Offset(x, y)
				copy(buf.Pix[i:i+3], row[x*4:x*4+3])
			}
		}
		return buf, nil
	}

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			buf.SetPixel(x, y, c.R, c.G, c.B)
		}
	}
	return buf, nil
}

// ToImage copies buf into an opaque RGBA image.
func ToImage(buf *frame.Buffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			i := buf.Offset(x, y)
			j := img.PixOffset(x, y)
			copy(img.Pix[j:j+3], buf.Pix[i:i+3])
			img.Pix[j+3] = 0xff
		}
	}
	return img
}

// Load reads an image file, choosing the codec from the extension.
func Load(path string) (*frame.Buffer, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf *frame.Buffer
	switch format {
	case FormatBMP:
		buf, err = ReadBMP(f)
	default:
		buf, err = ReadPPM(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Load",
		"path":     path,
		"format":   format.String(),
		"width":    buf.Width,
		"height":   buf.Height,
	}).Info("Image loaded")

	return buf, nil
}

// Save writes buf to path, choosing the codec from the extension.
func Save(path string, buf *frame.Buffer) (err error) {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	switch format {
	case FormatBMP:
		err = WriteBMP(f, buf)
	default:
		err = WritePPM(f, buf)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Save",
		"path":     path,
		"format":   format.String(),
		"size":     buf.String(),
	}).Info("Image saved")

	return nil
}
