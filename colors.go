package main

import "math"

// LED is the color of a single light, as the hardware wants it: one byte per
// channel, no alpha.
type LED [3]uint8

var BgColor = LED{5, 5, 20}
var PaddleColor = LED{255, 255, 255}
var BallColor = LED{255, 255, 0}

// BrickColors alternate by brick index. Red and green, it's a Christmas tree.
var BrickColors = [2]LED{
	{255, 0, 0},
	{0, 255, 0},
}

// HSVToLED converts a hue/saturation/value triplet to an LED color.
// h wraps (any h is interpreted mod 1), s and v are expected in [0, 1].
func HSVToLED(h, s, v float64) LED {
	h = h - math.Floor(h)
	c := v * s
	hh := h * 6
	x := c * (1 - math.Abs(math.Mod(hh, 2)-1))
	var r, g, b float64
	switch int(hh) % 6 {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	case 5:
		r, g, b = c, 0, x
	}
	m := v - c
	return LED{
		uint8((r + m) * 255),
		uint8((g + m) * 255),
		uint8((b + m) * 255),
	}
}

// Scaled returns the color dimmed by a factor in [0, 1].
func (l LED) Scaled(brightness float64) LED {
	return LED{
		uint8(float64(l[0]) * brightness),
		uint8(float64(l[1]) * brightness),
		uint8(float64(l[2]) * brightness),
	}
}
