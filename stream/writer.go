package stream

import (
	"bufio"
	"fmt"
	"io"

	"github.com/opd-ai/rasterkit/frame"
	"github.com/opd-ai/rasterkit/limits"
)

// Writer encodes frames onto an output stream.
type Writer struct {
	w      *bufio.Writer
	frames int
	bytes  int64
}

// NewWriter creates a frame writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write appends one frame to the stream and flushes it.
//
// The payload is emitted byte-for-byte from buf.Pix, channel order R, G, B.
func (w *Writer) Write(buf *frame.Buffer) error {
	if buf == nil {
		return ErrNilFrame
	}
	if len(buf.Pix) != limits.SampleCount(buf.Width, buf.Height) {
		return fmt.Errorf("frame %d: %w: %d samples for %s", w.frames, limits.ErrInvalidDimensions, len(buf.Pix), buf)
	}

	n, err := fmt.Fprintf(w.w, "%s\n%d %d\n%d\n", Magic, buf.Width, buf.Height, limits.MaxSampleValue)
	if err != nil {
		return fmt.Errorf("frame %d: writing header: %w", w.frames, err)
	}
	if _, err := w.w.Write(buf.Pix); err != nil {
		return fmt.Errorf("frame %d: writing payload: %w", w.frames, err)
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("frame %d: flushing: %w", w.frames, err)
	}

	w.frames++
	w.bytes += int64(n + len(buf.Pix))
	return nil
}

// Frames returns the number of frames written.
func (w *Writer) Frames() int {
	return w.frames
}

// Bytes returns the number of bytes written, headers included.
func (w *Writer) Bytes() int64 {
	return w.bytes
}
