// Package stream implements the raw RGB frame stream used between raster
// tools: a sequence of binary PPM ("P6") images concatenated with no
// separator.
//
// # Wire Format
//
//	"P6" <ws> <width> <ws> <height> <ws> <maxval=255> <one ws byte>
//	<width*height*3 bytes, R,G,B, row-major, no row padding>
//
// Runs of whitespace between header tokens may contain comments: a '#'
// starts a comment that runs to the end of the line. The next frame's
// header begins immediately after the last payload byte.
//
// # Reading
//
//	r := stream.NewReader(os.Stdin)
//	var buf *frame.Buffer
//	for {
//	    next, err := r.Next(buf)
//	    if stream.IsEndOfStream(err) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    buf = next
//	}
//
// Next reuses the buffer it is given whenever the frame dimensions are
// unchanged.
//
// # Errors
//
//   - io.EOF: the input ended cleanly between frames
//   - ErrMalformedHeader: the header does not follow the grammar above
//   - ErrTruncatedPayload: the header parsed but the payload is short
//   - limits.ErrFrameTooLarge: the header declares a frame that cannot be buffered
//
// # Writing
//
// Writer emits one frame per Write call and flushes before returning so a
// downstream process sees every frame as soon as it is complete.
package stream
