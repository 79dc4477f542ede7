package karifa

import (
	"time"

	"github.com/pkg/errors"
	"libdb.so/karifa/animation"
	"libdb.so/karifa/internal/led"
	"libdb.so/karifa/internal/timebase"
	"libdb.so/karifa/persist"
)

// Rehearsal is the outcome of playing one animation on a simulated clock.
type Rehearsal struct {
	Index int
	Name  string
	// Steps is the number of instructions evaluated over both streams.
	Steps int
	// Lit is true if any LED was ever on.
	Lit bool
}

// Rehearse plays every animation of the catalog for the given window on a
// manual timebase advanced by tick. Nothing is shown; the catalog should have
// been validated.
func Rehearse(c *animation.Catalog, tick, window time.Duration) ([]Rehearsal, error) {
	if tick < time.Millisecond {
		return nil, errors.Errorf("tick %v is finer than the 1ms timebase", tick)
	}

	sel, err := persist.LoadSelection(&persist.MemoryStore{})
	if err != nil {
		return nil, err
	}

	mono := led.NewBuffer(c.Mono.Channels)
	var rgb *led.Buffer
	var rgbOut animation.Output
	if c.HasRGB() {
		rgb = led.NewBuffer(c.RGB.Channels)
		rgbOut = rgb
	}

	results := make([]Rehearsal, c.Len())
	var levels []uint8

	for i, a := range c.Animations {
		r := &results[i]
		r.Index = i
		r.Name = a.Name

		mono.Clear()
		if rgb != nil {
			rgb.Clear()
		}

		clock := timebase.NewManual(0)
		engine := animation.NewEngine(c, clock, sel, mono, rgbOut)
		engine.SetAnimation(uint8(i))
		engine.SetTracer(func(animation.Event) { r.Steps++ })

		for elapsed := time.Duration(0); elapsed <= window; elapsed += tick {
			engine.Cycle()
			clock.Advance(tick)

			if r.Lit {
				continue
			}
			levels = mono.Snapshot(levels)
			if rgb != nil {
				levels = append(levels, rgb.Snapshot(nil)...)
			}
			for _, l := range levels {
				if l != 0 {
					r.Lit = true
					break
				}
			}
		}
	}

	return results, nil
}
