// Command ornament is standalone ornament firmware for an ESP32 board: it
// plays the built-in catalog on a WS2812 chain and takes input from a push
// button. The selection is kept in RAM.
package main

import (
	"machine"
	"time"

	"libdb.so/karifa/animation"
	"libdb.so/karifa/esp32"
	"libdb.so/karifa/internal/button"
	"libdb.so/karifa/internal/led"
)

// uptime is a millisecond timebase counting from power-up.
type uptime struct{ start time.Time }

func (u uptime) Millis() uint16 {
	return uint16(time.Since(u.start).Milliseconds())
}

// selection holds the selected animation in RAM.
type selection struct{ index uint8 }

func (s *selection) Index() uint8     { return s.index }
func (s *selection) SetIndex(i uint8) { s.index = i }

func pressed() bool {
	return !esp32.ButtonPin.Get()
}

func main() {
	catalog := animation.Ornament().MustValidate()

	mono := led.NewBuffer(catalog.Mono.Channels)
	rgb := led.NewBuffer(catalog.RGB.Channels)
	chain := esp32.NewChain(esp32.DataPin, mono, rgb)
	chain.Refresh()

	esp32.ButtonPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	// A press that was already held at power-up is not a press.
	for pressed() {
		time.Sleep(10 * time.Millisecond)
	}

	clock := uptime{start: time.Now()}
	sel := &selection{}
	engine := animation.NewEngine(catalog, clock, sel, mono, rgb)
	btn := button.New(0, 0)

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	var version uint64
	for range ticker.C {
		engine.Cycle()

		switch btn.Poll(clock.Millis(), pressed()) {
		case button.Short:
			engine.SetAnimation(catalog.Next(engine.Current()))
		case button.Long:
			engine.SetAnimation(catalog.Off())
		case button.LongReleased:
			powerDown(chain, mono, rgb)
		}

		if time.Since(clock.start) >= esp32.AutoOff {
			powerDown(chain, mono, rgb)
		}

		if v := chain.Version(); v != version {
			version = v
			chain.Refresh()
		}
	}
}

// powerDown turns the chain off and never returns. The button wakes the
// board through a reset.
func powerDown(chain *esp32.Chain, mono, rgb *led.Buffer) {
	mono.Clear()
	rgb.Clear()
	chain.Refresh()
	for {
		time.Sleep(time.Hour)
	}
}
