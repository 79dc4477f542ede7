package output

import (
	"github.com/lucasb-eyer/go-colorful"
	"libdb.so/karifa/internal/led"
)

// WarmWhite is the color of the ornament's monochrome LEDs at full duty.
var WarmWhite colorful.Color

func init() {
	c, err := colorful.Hex("#FFB46B")
	if err != nil {
		panic(err)
	}
	WarmWhite = c
}

// duty returns the PWM duty of a level in [0, 1]. PWM dims in linear light.
func duty(level uint8) float64 {
	if level > led.MaxLevel {
		level = led.MaxLevel
	}
	return float64(level) / led.MaxLevel
}

// Color returns the perceived color of a monochrome LED at the given level.
func Color(level uint8) colorful.Color {
	d := duty(level)
	r, g, b := WarmWhite.LinearRgb()
	return colorful.LinearRgb(r*d, g*d, b*d).Clamped()
}

// RGBColor returns the perceived color of the RGB LED at the given channel
// levels.
func RGBColor(r, g, b uint8) colorful.Color {
	return colorful.LinearRgb(duty(r), duty(g), duty(b)).Clamped()
}

// Pixels converts a frame into 8-bit RGB pixels: one per monochrome LED,
// then one for the RGB LED if there is one.
func Pixels(f Frame) [][3]uint8 {
	pixels := make([][3]uint8, 0, len(f.Mono)+1)
	for _, l := range f.Mono {
		r, g, b := Color(l).RGB255()
		pixels = append(pixels, [3]uint8{r, g, b})
	}
	if len(f.RGB) == 3 {
		r, g, b := RGBColor(f.RGB[0], f.RGB[1], f.RGB[2]).RGB255()
		pixels = append(pixels, [3]uint8{r, g, b})
	}
	return pixels
}
