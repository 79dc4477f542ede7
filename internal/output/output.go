// Package output samples the brightness buffers and sends them to whatever
// displays the ornament: a USB replica, an Open Pixel Control server or a
// terminal preview.
package output

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"libdb.so/karifa/internal/led"
)

// Frame is a snapshot of both brightness buffers.
type Frame struct {
	Mono []uint8
	RGB  []uint8 // nil without an RGB LED
}

// Equal returns true if both frames hold the same levels.
func (f Frame) Equal(other Frame) bool {
	return bytes.Equal(f.Mono, other.Mono) && bytes.Equal(f.RGB, other.RGB)
}

// Clone returns a deep copy of the frame.
func (f Frame) Clone() Frame {
	return Frame{
		Mono: append([]uint8(nil), f.Mono...),
		RGB:  append([]uint8(nil), f.RGB...),
	}
}

// Sink is the interface for types that display frames.
type Sink interface {
	// WriteFrame displays the frame. It must not retain the frame after
	// returning. It may drop the frame if the display is busy.
	WriteFrame(ctx context.Context, f Frame) error
}

// Runner is implemented by sinks that need a background loop. The sampler
// runs it next to the sampling loop.
type Runner interface {
	Run(ctx context.Context) error
}

// Sampler periodically snapshots the buffers and sends changed frames to
// every sink.
type Sampler struct {
	mono   *led.Buffer
	rgb    *led.Buffer
	rate   int
	sinks  []Sink
	logger *slog.Logger
}

// NewSampler creates a new sampler running at rate frames per second. rgb may
// be nil.
func NewSampler(mono, rgb *led.Buffer, rate int, logger *slog.Logger, sinks ...Sink) *Sampler {
	return &Sampler{
		mono:   mono,
		rgb:    rgb,
		rate:   rate,
		sinks:  sinks,
		logger: logger,
	}
}

// Snapshot returns the current frame.
func (s *Sampler) Snapshot() Frame {
	f := Frame{Mono: s.mono.Snapshot(nil)}
	if s.rgb != nil {
		f.RGB = s.rgb.Snapshot(nil)
	}
	return f
}

func (s *Sampler) version() uint64 {
	v := s.mono.Version()
	if s.rgb != nil {
		v += s.rgb.Version()
	}
	return v
}

// Run samples until the context is canceled or a sink fails.
func (s *Sampler) Run(ctx context.Context) error {
	if s.rate <= 0 {
		return errors.Errorf("invalid frame rate %d", s.rate)
	}

	s.logger.Debug(
		"sampling frames",
		"rate", s.rate,
		"sinks", len(s.sinks))

	errg, ctx := errgroup.WithContext(ctx)
	for _, sink := range s.sinks {
		if r, ok := sink.(Runner); ok {
			errg.Go(func() error { return r.Run(ctx) })
		}
	}
	errg.Go(func() error { return s.loop(ctx) })

	return errg.Wait()
}

func (s *Sampler) loop(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(s.rate))
	defer ticker.Stop()

	// Force the first frame out.
	last := s.version() - 1

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		v := s.version()
		if v == last {
			continue
		}
		last = v

		f := s.Snapshot()
		for _, sink := range s.sinks {
			if err := sink.WriteFrame(ctx, f); err != nil {
				return errors.Wrapf(err, "failed to write frame to %T", sink)
			}
		}
	}
}

// SinkFunc is a function that implements Sink.
type SinkFunc func(ctx context.Context, f Frame) error

// WriteFrame implements Sink.
func (fn SinkFunc) WriteFrame(ctx context.Context, f Frame) error {
	return fn(ctx, f)
}
