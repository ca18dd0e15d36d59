package stream

import (
	"bufio"
	"fmt"
	"io"

	"github.com/opd-ai/rasterkit/frame"
	"github.com/opd-ai/rasterkit/limits"
	"github.com/sirupsen/logrus"
)

// Magic is the header token that opens every frame.
const Magic = "P6"

// Reader decodes successive frames from an input stream.
type Reader struct {
	r      *bufio.Reader
	frames int
}

// NewReader creates a frame reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Frames returns the number of frames decoded so far.
func (r *Reader) Frames() int {
	return r.frames
}

// Next decodes the next frame into prev when its dimensions match, or into a
// newly allocated buffer otherwise.
//
// It returns io.EOF when the input ends before the next header starts. Any
// other error leaves the stream position undefined; no partial frame is
// returned.
func (r *Reader) Next(prev *frame.Buffer) (*frame.Buffer, error) {
	width, height, err := r.readHeader()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("frame %d: %w", r.frames, err)
	}

	if err := limits.ValidateDimensions(width, height); err != nil {
		return nil, fmt.Errorf("frame %d: %w", r.frames, err)
	}

	buf := frame.Ensure(prev, width, height)
	if buf != prev {
		logrus.WithFields(logrus.Fields{
			"function": "Reader.Next",
			"frame":    r.frames,
			"width":    width,
			"height":   height,
		}).Debug("Allocated frame buffer")
	}

	if n, err := io.ReadFull(r.r, buf.Pix); err != nil {
		return nil, fmt.Errorf("frame %d: %w: got %d of %d bytes: %w",
			r.frames, ErrTruncatedPayload, n, len(buf.Pix), unexpected(err))
	}

	r.frames++
	return buf, nil
}

// readHeader parses one header and leaves the reader at the first payload
// byte. It returns io.EOF only when no header byte was seen at all.
func (r *Reader) readHeader() (width, height int, err error) {
	if err := r.skipSeparators(); err != nil {
		return 0, 0, err
	}

	if err := r.readMagic(); err != nil {
		return 0, 0, err
	}

	if width, err = r.readField("width", false); err != nil {
		return 0, 0, err
	}
	if height, err = r.readField("height", false); err != nil {
		return 0, 0, err
	}

	maxval, err := r.readField("maxval", true)
	if err != nil {
		return 0, 0, err
	}
	if maxval != limits.MaxSampleValue {
		return 0, 0, fmt.Errorf("%w: maxval %d, want %d", ErrMalformedHeader, maxval, limits.MaxSampleValue)
	}

	return width, height, nil
}

func (r *Reader) readMagic() error {
	var magic [2]byte
	if _, err := io.ReadFull(r.r, magic[:]); err != nil {
		return fmt.Errorf("%w: reading magic: %w", ErrMalformedHeader, unexpected(err))
	}
	if string(magic[:]) != Magic {
		return fmt.Errorf("%w: magic %q, want %q", ErrMalformedHeader, magic[:], Magic)
	}

	c, err := r.r.ReadByte()
	if err != nil {
		return fmt.Errorf("%w: after magic: %w", ErrMalformedHeader, unexpected(err))
	}
	if !isSpace(c) && c != '#' {
		return fmt.Errorf("%w: unexpected byte %q after magic", ErrMalformedHeader, c)
	}
	return r.r.UnreadByte()
}

// readField parses one decimal header field. The last field must be
// followed by exactly one whitespace byte, which is consumed; earlier fields
// may be followed by whitespace or a comment.
func (r *Reader) readField(name string, last bool) (int, error) {
	if err := r.skipSeparators(); err != nil {
		return 0, fmt.Errorf("%w: before %s: %w", ErrMalformedHeader, name, unexpected(err))
	}

	value, digits := 0, 0
	for {
		c, err := r.r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: in %s: %w", ErrMalformedHeader, name, unexpected(err))
		}
		if c >= '0' && c <= '9' {
			// Past MaxDimension the value only has to stay too large.
			if value <= limits.MaxDimension {
				value = value*10 + int(c-'0')
			}
			digits++
			continue
		}

		if digits == 0 {
			return 0, fmt.Errorf("%w: %s: unexpected byte %q", ErrMalformedHeader, name, c)
		}
		switch {
		case isSpace(c):
			// consumed; for the last field this is the single separator
		case c == '#' && !last:
			if err := r.r.UnreadByte(); err != nil {
				return 0, err
			}
		default:
			return 0, fmt.Errorf("%w: %s: unexpected byte %q", ErrMalformedHeader, name, c)
		}
		return value, nil
	}
}

// skipSeparators consumes whitespace and comment lines. It returns io.EOF if
// the input ends while skipping.
func (r *Reader) skipSeparators() error {
	for {
		c, err := r.r.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case isSpace(c):
		case c == '#':
			if err := r.skipComment(); err != nil {
				return err
			}
		default:
			return r.r.UnreadByte()
		}
	}
}

// skipComment discards the rest of the current line, newline included.
func (r *Reader) skipComment() error {
	for {
		_, err := r.r.ReadSlice('\n')
		if err != bufio.ErrBufferFull {
			return err
		}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
