package main

import (
	"fmt"
	"machine"

	"libdb.so/karifa/internal/led"
	"libdb.so/karifa/ledserial"
	"tinygo.org/x/drivers/ws2812"
)

// Device stores the current state of the device.
type Device struct {
	serial SerialReadWriter
	led    ws2812.Device
	status *statusPixel
	rctx   ledserial.ReadContext
}

// NewDevice creates a new device.
func NewDevice(serial machine.Serialer, ledPin machine.Pin) *Device {
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &Device{
		serial: WrapSerial(serial),
		led:    ws2812.New(ledPin),
		status: newStatusPixel(statusPower, statusData),
	}
}

// Run runs the device loop forever.
func (d *Device) Run() {
	d.status.Show(StatusWaiting)
	for {
		p, err := ledserial.ReadIncomingPacket(d.serial, d.rctx)
		if err != nil {
			d.status.Show(StatusFault)
			d.logError(err)
			continue
		}

		if err := d.handlePacket(p); err != nil {
			d.status.Show(StatusFault)
			d.logError(err)
			continue
		}

		if d.rctx.NumMono > 0 {
			d.status.Show(StatusPlaying)
		} else {
			d.status.Show(StatusWaiting)
		}
	}
}

func (d *Device) log(msg string) {
	d.sendPacket(ledserial.LogPacket{Message: msg})
}

func (d *Device) logError(err error) {
	d.sendPacket(ledserial.ErrorPacket{Message: err.Error()})
}

func (d *Device) sendPacket(p ledserial.OutgoingPacket) {
	ledserial.WriteOutgoingPacket(d.serial, p)
}

func (d *Device) handlePacket(p ledserial.IncomingPacket) error {
	switch p := p.(type) {
	case ledserial.InitializePacket:
		if p.NumMono < 1 {
			return fmt.Errorf("invalid number of LEDs: %d", p.NumMono)
		}
		if p.NumRGB != 0 && p.NumRGB != 3 {
			return fmt.Errorf("invalid number of RGB channels: %d", p.NumRGB)
		}
		d.rctx.Apply(p)
		d.clearLEDs()
		d.log(fmt.Sprintf("initialized %d LEDs", p.NumMono))

	case ledserial.ClearPacket:
		d.clearLEDs()

	case ledserial.SetPacket:
		for _, level := range p.Mono {
			r, g, b := led.WarmWhite(level)
			writeLEDRGB(d.led, r, g, b)
		}
		if len(p.RGB) == 3 {
			writeLEDRGB(d.led, led.Duty(p.RGB[0]), led.Duty(p.RGB[1]), led.Duty(p.RGB[2]))
		}

	default:
		return fmt.Errorf("unknown packet type: %T", p)
	}

	d.sendPacket(ledserial.AckPacket{
		IncomingPacketType: p.Type(),
	})
	return nil
}

// numPixels returns the length of the chain: one pixel per monochrome LED
// plus one for the RGB LED.
func (d *Device) numPixels() int {
	n := int(d.rctx.NumMono)
	if d.rctx.NumRGB > 0 {
		n++
	}
	return n
}

func (d *Device) clearLEDs() {
	for i := 0; i < d.numPixels(); i++ {
		writeLEDRGB(d.led, 0, 0, 0)
	}
}

// writeLEDRGB writes one pixel. WS2812 pixels take green first.
func writeLEDRGB(dev ws2812.Device, r, g, b uint8) {
	dev.WriteByte(g)
	dev.WriteByte(r)
	dev.WriteByte(b)
}
