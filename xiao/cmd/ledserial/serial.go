package main

import (
	"io"
	"machine"
	"runtime"
	"time"
)

// SerialReadWriter is a byte stream over the USB CDC serial port.
type SerialReadWriter interface {
	io.ReadWriter
	// Buffered returns the number of bytes currently buffered in the serial
	// device.
	Buffered() int
}

type serialPort struct {
	machine.Serialer
}

// WrapSerial wraps a machine.Serialer in an io.ReadWriter whose reads block
// until at least one byte has arrived.
func WrapSerial(serial machine.Serialer) SerialReadWriter {
	return serialPort{Serialer: serial}
}

func (s serialPort) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}

	for s.Buffered() == 0 {
		// Sleep to reduce CPU usage.
		time.Sleep(time.Millisecond)
	}

	var n int
	for n < len(b) && s.Buffered() > 0 {
		c, err := s.ReadByte()
		if err != nil {
			return n, err
		}
		b[n] = c
		n++
	}
	return n, nil
}

func (s serialPort) Write(b []byte) (int, error) {
	for i, c := range b {
		if err := s.WriteByte(c); err != nil {
			return i, err
		}
	}
	runtime.Gosched()
	return len(b), nil
}
