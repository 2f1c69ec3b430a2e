package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertLEDNear allows one count of rounding slack per channel: the pure
// hues sit exactly on sextant boundaries where float truncation can shave
// a channel from 255 to 254.
func assertLEDNear(t *testing.T, want, got LED) {
	t.Helper()
	for ch := 0; ch < 3; ch++ {
		assert.InDelta(t, want[ch], got[ch], 1)
	}
}

func TestHSVToLED_Primaries(t *testing.T) {
	assertLEDNear(t, LED{255, 0, 0}, HSVToLED(0, 1, 1))
	assertLEDNear(t, LED{0, 255, 0}, HSVToLED(1.0/3, 1, 1))
	assertLEDNear(t, LED{0, 0, 255}, HSVToLED(2.0/3, 1, 1))
	assertLEDNear(t, LED{255, 255, 0}, HSVToLED(1.0/6, 1, 1))
}

func TestHSVToLED_HueWraps(t *testing.T) {
	assert.Equal(t, HSVToLED(0.25, 0.9, 0.8), HSVToLED(1.25, 0.9, 0.8))
	assert.Equal(t, HSVToLED(0.25, 0.9, 0.8), HSVToLED(-0.75, 0.9, 0.8))
}

func TestHSVToLED_ValueScalesBrightness(t *testing.T) {
	dim := HSVToLED(0, 1, 0.5)
	assert.Equal(t, LED{127, 0, 0}, dim)

	black := HSVToLED(0.4, 1, 0)
	assert.Equal(t, LED{0, 0, 0}, black)
}

func TestHSVToLED_ZeroSaturationIsGray(t *testing.T) {
	gray := HSVToLED(0.7, 0, 0.5)
	assert.Equal(t, gray[0], gray[1])
	assert.Equal(t, gray[1], gray[2])
}

func TestScaled(t *testing.T) {
	c := LED{200, 100, 50}
	assert.Equal(t, LED{100, 50, 25}, c.Scaled(0.5))
	assert.Equal(t, c, c.Scaled(1))
	assert.Equal(t, LED{0, 0, 0}, c.Scaled(0))
}
