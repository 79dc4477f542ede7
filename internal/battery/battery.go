// Package battery shows the coin cell's charge on the LEDs at startup.
package battery

import (
	"context"
	"math"
	"time"
)

const (
	// EmptyMillivolts is the voltage at which the LEDs can barely be seen.
	EmptyMillivolts = 2000
	// FullMillivolts is the loaded voltage of a fresh CR2032 cell.
	FullMillivolts = 2800
)

// Level maps a voltage onto a charge level in [0, steps]. The mapping is
// linear between EmptyMillivolts and FullMillivolts and rounds to nearest.
func Level(millivolts, steps int) int {
	level := math.Floor(float64(steps)*float64(millivolts-EmptyMillivolts)/
		float64(FullMillivolts-EmptyMillivolts) + 0.5)
	switch {
	case level < 0:
		return 0
	case level > float64(steps):
		return steps
	default:
		return int(level)
	}
}

// Gauge returns the symmetric gauge shown on a ring of n LEDs: both halves
// fill from the outer ends inwards. The RGB LED lights red when the level
// overflows the ring.
func Gauge(millivolts, n int) (mono []uint8, red bool) {
	half := n / 2
	level := Level(millivolts, half+1)

	mono = make([]uint8, n)
	for i := 0; i < half; i++ {
		if level >= i {
			mono[i] = 15
			mono[n-i-1] = 15
		}
	}
	return mono, level > half
}

// Output receives levels. It matches animation.Output.
type Output interface {
	Store(levels []uint8)
}

// Show draws the gauge on the outputs and blocks for the given duration or
// until the context is canceled. rgb may be nil.
func Show(ctx context.Context, millivolts int, mono, rgb Output, n int, d time.Duration) error {
	levels, red := Gauge(millivolts, n)
	mono.Store(levels)
	if rgb != nil {
		var r uint8
		if red {
			r = 15
		}
		rgb.Store([]uint8{r, 0, 0})
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
