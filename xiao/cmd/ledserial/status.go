package main

import (
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// The XIAO RP2040 has an onboard WS2812 behind a power switch. It shows the
// state of the link to the daemon.
// https://wiki.seeedstudio.com/XIAO-RP2040-with-Arduino/
const (
	statusPower = machine.GPIO11
	statusData  = machine.GPIO12
)

// Status is the state of the link to the daemon.
type Status uint8

const (
	// StatusWaiting is shown until the daemon has initialized the chain.
	StatusWaiting Status = iota
	// StatusPlaying means frames are arriving. The pixel is off so that it
	// does not compete with the ornament.
	StatusPlaying
	// StatusFault is shown after a bad packet until the next good one.
	StatusFault
)

var statusColors = [...][3]uint8{
	StatusWaiting: {0, 0, 16},
	StatusPlaying: {0, 0, 0},
	StatusFault:   {24, 0, 0},
}

type statusPixel struct {
	power machine.Pin
	dev   ws2812.Device
	shown Status
	valid bool
}

func newStatusPixel(power, data machine.Pin) *statusPixel {
	power.Configure(machine.PinConfig{Mode: machine.PinOutput})
	power.Low()
	data.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &statusPixel{
		power: power,
		dev:   ws2812.New(data),
	}
}

// Show shows the given status. Showing the same status again does nothing.
func (p *statusPixel) Show(s Status) {
	if p.valid && p.shown == s {
		return
	}
	p.shown, p.valid = s, true

	c := statusColors[s]
	if c == [3]uint8{} {
		p.power.Low()
		return
	}
	p.power.High()
	writeLEDRGB(p.dev, c[0], c[1], c[2])
}
