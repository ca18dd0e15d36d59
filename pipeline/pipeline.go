package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opd-ai/rasterkit/filter"
	"github.com/opd-ai/rasterkit/frame"
	"github.com/opd-ai/rasterkit/stream"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNoKernel indicates a Config without a kernel.
	ErrNoKernel = errors.New("pipeline requires a kernel")

	// ErrNilStream indicates a nil source or sink.
	ErrNilStream = errors.New("pipeline requires a source and a sink")
)

// State is the pipeline lifecycle state.
type State int

const (
	// StateRunning means more frames may be processed.
	StateRunning State = iota
	// StateDone means the input ended or the run failed.
	StateDone
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StateDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// Config holds the static configuration of a pipeline.
type Config struct {
	// Kernel is applied to every frame.
	Kernel filter.Kernel
	// Strict returns malformed headers and truncated payloads as errors
	// instead of ending the run quietly.
	Strict bool
	// Digest logs a BLAKE2b-256 of every emitted frame at debug level.
	Digest bool
	// TimeProvider times the run; nil uses the package default.
	TimeProvider TimeProvider
}

// Stats summarizes a run.
type Stats struct {
	// Frames is the number of frames written.
	Frames int
	// Allocations counts frame buffer allocations caused by size changes,
	// the first frame included.
	Allocations int
	// Bytes is the number of payload bytes written.
	Bytes int64
	// Elapsed is the wall time of Run.
	Elapsed time.Duration
}

// Pipeline moves frames from a source through a kernel to a sink.
type Pipeline struct {
	src     *stream.Reader
	sink    *stream.Writer
	cfg     Config
	tp      TimeProvider
	state   State
	stats   Stats
	buf     *frame.Buffer
	scratch *frame.Buffer
}

// New creates a pipeline. It does not read or write anything.
func New(src *stream.Reader, sink *stream.Writer, cfg Config) (*Pipeline, error) {
	if src == nil || sink == nil {
		return nil, ErrNilStream
	}
	if cfg.Kernel == nil {
		return nil, ErrNoKernel
	}

	return &Pipeline{
		src:  src,
		sink: sink,
		cfg:  cfg,
		tp:   getTimeProvider(cfg.TimeProvider),
	}, nil
}

// State returns the current lifecycle state.
func (p *Pipeline) State() State {
	return p.state
}

// Stats returns the counters accumulated so far.
func (p *Pipeline) Stats() Stats {
	return p.stats
}

// Run processes frames until the source is exhausted, the context is
// cancelled, or an error occurs. A clean end of input returns a nil error.
func (p *Pipeline) Run(ctx context.Context) (Stats, error) {
	if p.state == StateDone {
		return p.stats, nil
	}

	start := p.tp.Now()
	logrus.WithFields(logrus.Fields{
		"function": "Pipeline.Run",
		"kernel":   p.cfg.Kernel.Name(),
		"strict":   p.cfg.Strict,
	}).Info("Starting frame pipeline")

	err := p.loop(ctx)

	p.state = StateDone
	p.stats.Elapsed = p.tp.Now().Sub(start)

	fields := logrus.Fields{
		"function":    "Pipeline.Run",
		"frames":      p.stats.Frames,
		"allocations": p.stats.Allocations,
		"bytes":       p.stats.Bytes,
		"elapsed":     p.stats.Elapsed,
	}
	if err != nil {
		fields["error"] = err.Error()
		logrus.WithFields(fields).Error("Frame pipeline failed")
		return p.stats, err
	}
	logrus.WithFields(fields).Info("Frame pipeline finished")
	return p.stats, nil
}

func (p *Pipeline) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		more, err := p.Step()
		if err != nil || !more {
			return err
		}
	}
}

// Step processes a single frame. It returns false once the input has ended;
// the pipeline is then Done.
func (p *Pipeline) Step() (bool, error) {
	if p.state == StateDone {
		return false, nil
	}

	next, err := p.src.Next(p.buf)
	if err != nil {
		p.state = StateDone
		return false, p.endOfInput(err)
	}
	if next != p.buf {
		p.stats.Allocations++
	}
	p.buf = next

	out, spare, err := filter.Apply(p.cfg.Kernel, p.buf, p.scratch)
	if err != nil {
		p.state = StateDone
		return false, fmt.Errorf("frame %d: %w", p.stats.Frames, err)
	}
	p.buf, p.scratch = out, spare

	if err := p.sink.Write(p.buf); err != nil {
		p.state = StateDone
		return false, err
	}

	if p.cfg.Digest && logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithFields(logrus.Fields{
			"function": "Pipeline.Step",
			"frame":    p.stats.Frames,
			"size":     p.buf.String(),
			"blake2b":  frameDigest(p.buf),
		}).Debug("Frame written")
	}

	p.stats.Frames++
	p.stats.Bytes += int64(len(p.buf.Pix))
	return true, nil
}

// endOfInput classifies a source error: nil for a normal end of input,
// the error itself when the run must fail.
func (p *Pipeline) endOfInput(err error) error {
	switch {
	case stream.IsEndOfStream(err):
		logrus.WithFields(logrus.Fields{
			"function": "Pipeline.Step",
			"frames":   p.stats.Frames,
		}).Debug("End of stream")
		return nil
	case stream.IsCorrupt(err) && !p.cfg.Strict:
		logrus.WithFields(logrus.Fields{
			"function": "Pipeline.Step",
			"frames":   p.stats.Frames,
			"error":    err.Error(),
		}).Warn("Damaged input treated as end of stream")
		return nil
	default:
		return err
	}
}
