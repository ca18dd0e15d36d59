// Package pipeline drives a raster stream filter: it reads a frame, applies
// one kernel, writes the frame, and repeats until the input ends.
//
//	src := stream.NewReader(os.Stdin)
//	sink := stream.NewWriter(os.Stdout)
//	k, _ := filter.Parse("kuwahara", 7)
//
//	p, err := pipeline.New(src, sink, pipeline.Config{Kernel: k})
//	if err != nil {
//	    return err
//	}
//	stats, err := p.Run(ctx)
//
// # Ordering
//
// Frames are processed strictly one at a time. A frame is fully read before
// filtering starts and fully filtered before it is written, so output order
// always matches input order.
//
// # Buffers
//
// The pipeline owns two buffers: the current frame and a scratch frame for
// kernels that cannot run in place. They swap roles after each such kernel
// and are reused for as long as the frame size stays the same.
//
// # Damaged Input
//
// A malformed header or a short payload ends the run. By default this is
// logged and treated like a clean end of stream, so frames already written
// stay usable. With Config.Strict the damage is returned as an error instead.
//
// # Cancellation
//
// Run checks its context between frames. A read blocked on the input is not
// interrupted; closing the input ends it as a normal end of stream.
package pipeline
