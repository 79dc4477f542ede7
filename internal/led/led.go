// Package led holds the brightness buffers shared between the animation
// engine and the output drivers.
package led

import "sync/atomic"

// MaxLevel is the highest brightness level. Levels are 4-bit PWM duties.
const MaxLevel = 15

// Buffer describes a strip of LEDs as a fixed number of brightness levels.
// One goroutine may Store while any number of others read; every channel is
// read and written atomically.
type Buffer struct {
	cells   []atomic.Uint32
	version atomic.Uint64
}

// NewBuffer creates a new buffer. Levels are initialized to 0 (off).
func NewBuffer(numLEDs int) *Buffer {
	return &Buffer{cells: make([]atomic.Uint32, numLEDs)}
}

// Len returns the number of channels.
func (b *Buffer) Len() int {
	return len(b.cells)
}

// Store copies the levels into the buffer. Extra levels are ignored and
// missing ones are left alone. Levels above MaxLevel are clamped.
// It implements animation.Output.
func (b *Buffer) Store(levels []uint8) {
	for i := range b.cells {
		if i >= len(levels) {
			break
		}
		b.cells[i].Store(uint32(clamp(levels[i])))
	}
	b.version.Add(1)
}

// Clear turns every LED off.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i].Store(0)
	}
	b.version.Add(1)
}

// Snapshot copies the levels into dst, growing it if needed, and returns it.
func (b *Buffer) Snapshot(dst []uint8) []uint8 {
	if cap(dst) < len(b.cells) {
		dst = make([]uint8, len(b.cells))
	}
	dst = dst[:len(b.cells)]
	for i := range b.cells {
		dst[i] = uint8(b.cells[i].Load())
	}
	return dst
}

// Version returns a counter that changes every time the buffer is written.
// Readers use it to skip unchanged frames.
func (b *Buffer) Version() uint64 {
	return b.version.Load()
}

func clamp(level uint8) uint8 {
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// Warm white at full duty, as 8-bit linear channel values.
const (
	warmR = 255
	warmG = 180
	warmB = 107
)

// Duty converts a level to an 8-bit linear PWM duty, as used by WS2812
// pixels.
func Duty(level uint8) uint8 {
	return clamp(level) * 17
}

// WarmWhite returns the 8-bit linear pixel that imitates a monochrome LED at
// the given level.
func WarmWhite(level uint8) (r, g, b uint8) {
	l := uint16(clamp(level))
	return uint8(warmR * l / MaxLevel), uint8(warmG * l / MaxLevel), uint8(warmB * l / MaxLevel)
}
