// Command rasterfilter reads a stream of P6 frames on standard input,
// applies one filter kernel to every frame and writes the filtered frames
// to standard output.
//
//	rasterfilter -kernel kuwahara -size 9 < in.ppm > out.ppm
//	camera | rasterfilter -kernel dither4 | display
//
// Diagnostics go to standard error or to the file named by -log-file so
// they never mix with frame data. Damaged input ends the stream quietly
// unless -strict is given, in which case the process exits with status 1.
package main
