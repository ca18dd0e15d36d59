// Package limits provides centralized frame size constants and validation
// functions for the raster stream tools. Every component that allocates
// pixel storage from untrusted header values checks them here first.
//
// # Size Hierarchy
//
//   - MaxDimension (32768): the largest accepted width or height. Streams
//     declaring a larger side are rejected before any allocation happens.
//
//   - MaxSamples (1 GiB): the largest accepted payload, width*height*3 bytes.
//     A 32768x32768 frame would exceed it, so both limits apply.
//
// # Validation
//
//	err := limits.ValidateDimensions(width, height)
//	if errors.Is(err, limits.ErrFrameTooLarge) {
//	    // fatal: the frame cannot be buffered
//	}
//
// # Error Types
//
//   - ErrInvalidDimensions: negative width or height
//   - ErrFrameTooLarge: a side or the total payload exceeds the limits
//
// Zero-sized frames are valid. They carry an empty payload and every
// kernel treats them as a no-op.
package limits
