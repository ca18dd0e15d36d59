// Package frame provides the pixel buffer shared by every raster tool.
//
// A Buffer holds one width×height RGB image as a single contiguous slice:
// row-major, channels interleaved R, G, B, no padding between rows.
//
//	buf := frame.New(640, 480)
//	buf.SetPixel(10, 20, 255, 0, 0)
//	r, g, b := buf.Pixel(10, 20)
//
// # Reuse
//
// Video streams almost always carry frames of constant size, so callers keep
// the previous buffer and pass it to Ensure with the next frame's dimensions:
//
//	buf = frame.Ensure(buf, width, height)
//
// Ensure returns prev itself when the dimensions match and a fresh
// allocation otherwise. Reused storage is NOT cleared: the caller must
// overwrite every sample before reading it.
//
// # Thread Safety
//
// Buffers are not synchronized. The pipeline owns at most two buffers at a
// time and hands them to one kernel or sink for the duration of one frame.
package frame
