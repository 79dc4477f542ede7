// Package timebase provides the free-running millisecond counters that drive
// the animation engine.
package timebase

import (
	"context"
	"sync/atomic"
	"time"
)

// Clock is a 16-bit millisecond counter that wraps at 65536, incremented by a
// ticker. The zero value is not usable; use NewClock.
type Clock struct {
	start  time.Time
	millis atomic.Uint32
	tick   time.Duration
}

// NewClock creates a new clock that updates every tick. A tick of zero means
// one millisecond.
func NewClock(tick time.Duration) *Clock {
	if tick <= 0 {
		tick = time.Millisecond
	}
	return &Clock{
		start: time.Now(),
		tick:  tick,
	}
}

// Run updates the clock until the context is canceled. It always returns the
// context's error.
func (c *Clock) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			c.millis.Store(uint32(uint16(now.Sub(c.start).Milliseconds())))
		}
	}
}

// Millis returns the current counter value.
func (c *Clock) Millis() uint16 {
	return uint16(c.millis.Load())
}

// Manual is a timebase that only moves when told to. It is safe for
// concurrent use.
type Manual struct {
	millis atomic.Uint32
}

// NewManual creates a manual timebase starting at the given value.
func NewManual(start uint16) *Manual {
	m := &Manual{}
	m.Set(start)
	return m
}

// Set sets the counter.
func (m *Manual) Set(millis uint16) {
	m.millis.Store(uint32(millis))
}

// Advance adds d to the counter, wrapping at 65536, and returns the new value.
func (m *Manual) Advance(d time.Duration) uint16 {
	step := uint32(uint16(d.Milliseconds()))
	for {
		old := m.millis.Load()
		next := uint32(uint16(old + step))
		if m.millis.CompareAndSwap(old, next) {
			return uint16(next)
		}
	}
}

// Millis returns the current counter value.
func (m *Manual) Millis() uint16 {
	return uint16(m.millis.Load())
}
