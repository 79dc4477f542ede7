// Package esp32 holds the board layout of the standalone ornament firmware.
package esp32

import (
	"image/color"
	"machine"
	"runtime/interrupt"
	"time"

	"libdb.so/karifa/internal/led"
	"tinygo.org/x/drivers/ws2812"
)

var (
	// DataPin drives the WS2812 chain: the ring LEDs in order, then the RGB
	// LED.
	DataPin = machine.GPIO27
	// ButtonPin is the active-low push button.
	ButtonPin = machine.GPIO0
)

// AutoOff is how long the ornament stays on.
const AutoOff = 5 * time.Hour

// Chain renders the brightness buffers onto the WS2812 chain.
type Chain struct {
	dev    ws2812.Device
	mono   *led.Buffer
	rgb    *led.Buffer // may be nil
	levels []uint8
	pixels []color.RGBA
}

// NewChain configures the pin and creates a chain for the buffers.
func NewChain(pin machine.Pin, mono, rgb *led.Buffer) *Chain {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	n := mono.Len()
	if rgb != nil {
		n++
	}

	return &Chain{
		dev:    ws2812.New(pin),
		mono:   mono,
		rgb:    rgb,
		pixels: make([]color.RGBA, n),
	}
}

// Version returns a number that changes whenever a buffer changes.
func (c *Chain) Version() uint64 {
	v := c.mono.Version()
	if c.rgb != nil {
		v += c.rgb.Version()
	}
	return v
}

// Refresh sends the buffers to the chain.
func (c *Chain) Refresh() {
	c.levels = c.mono.Snapshot(c.levels[:0])
	for i, l := range c.levels {
		r, g, b := led.WarmWhite(l)
		c.pixels[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}

	if c.rgb != nil {
		c.levels = c.rgb.Snapshot(c.levels[:0])
		c.pixels[len(c.pixels)-1] = color.RGBA{
			R: led.Duty(c.levels[0]),
			G: led.Duty(c.levels[1]),
			B: led.Duty(c.levels[2]),
			A: 255,
		}
	}

	critical(func() { c.dev.WriteColors(c.pixels) })
}

func critical(f func()) {
	state := interrupt.Disable()
	f()
	interrupt.Restore(state)
}
