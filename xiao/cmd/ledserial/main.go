// Command ledserial is the firmware of a USB ornament replica on a Seeed
// XIAO RP2040. It receives frames from the karifa daemon and shows them on a
// WS2812 chain connected to D10.
package main

import "machine"

func main() {
	d := NewDevice(machine.Serial, machine.D10)
	d.Run()
}
