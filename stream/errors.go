package stream

import (
	"errors"
	"io"
)

var (
	// ErrMalformedHeader indicates a frame header that does not parse.
	ErrMalformedHeader = errors.New("malformed frame header")

	// ErrTruncatedPayload indicates fewer payload bytes than the header declared.
	ErrTruncatedPayload = errors.New("truncated frame payload")

	// ErrNilFrame indicates a nil buffer was passed to Writer.Write.
	ErrNilFrame = errors.New("frame cannot be nil")
)

// IsEndOfStream reports whether err marks a clean end of input.
func IsEndOfStream(err error) bool {
	return errors.Is(err, io.EOF)
}

// IsCorrupt reports whether err describes damaged input: a malformed
// header or a truncated payload.
func IsCorrupt(err error) bool {
	return errors.Is(err, ErrMalformedHeader) || errors.Is(err, ErrTruncatedPayload)
}
