package main

import "math"

// The two round-end effects below are full-buffer: they color every light on
// the tree and ignore rotation and visibility entirely. A celebration that
// only lit the face being played on would look broken from the other side of
// the room.

const (
	winHueSpeed   = 0.005
	winWaveSpeed  = 0.003
	winWaveWidth  = 0.25
	winPulseSpeed = 0.03
	winMinBright  = 0.3
	winSaturation = 0.9
	lossWashBand  = 0.15
)

// RenderWinCelebration paints a rainbow over the whole tree: hue runs around
// the center of the play area and slowly rotates, while three brightness
// waves ripple outward from the center. Driven purely by the animation frame
// counter, so a replay renders the exact same celebration.
func (g *Game) RenderWinCelebration() {
	centerZ := (g.Cloud.ZMin + g.Cloud.ZMax) / 2
	frames := float64(g.AnimationFrames)

	// Radial distance and angle of every light from the center, using the
	// real Y coordinate: the celebration wraps around the tree.
	maxDist := 0.0
	for i := range g.Cloud.Pts {
		d := Vec2{g.Cloud.Pts[i].Y, g.Cloud.Pts[i].Z}.DistTo(Vec2{0, centerZ})
		maxDist = math.Max(maxDist, d)
	}

	wavePeriod := maxDist * 2
	waveOffset := frames * winWaveSpeed
	wave1 := math.Mod(waveOffset, wavePeriod)
	wave2 := math.Mod(waveOffset+maxDist*0.4, wavePeriod)
	wave3 := math.Mod(waveOffset+maxDist*0.8, wavePeriod)

	pulse := 0.7 + 0.3*math.Sin(frames*winPulseSpeed)

	for i := range g.frameBuf {
		y := g.Cloud.Pts[i].Y
		z := g.Cloud.Pts[i].Z - centerZ
		dist := math.Sqrt(y*y + z*z)
		angle := math.Atan2(z, y)

		hue := angle/(2*math.Pi) + frames*winHueSpeed

		// Triangular falloff around each expanding wave front, combined by
		// taking the brightest.
		brightness := math.Max(0, 1-math.Abs(dist-wave1)/winWaveWidth)
		brightness = math.Max(brightness,
			math.Max(0, 1-math.Abs(dist-wave2)/winWaveWidth))
		brightness = math.Max(brightness,
			math.Max(0, 1-math.Abs(dist-wave3)/winWaveWidth))

		brightness = math.Max(brightness*pulse, winMinBright)

		g.frameBuf[i] = HSVToLED(hue, winSaturation, brightness)
	}
}

// RenderLossWash sweeps a white band down the tree from top to bottom over
// the length of the loss animation. Lights brighten as the band reaches them
// and fade as it passes.
func (g *Game) RenderLossWash() {
	progress := float64(g.AnimationFrames) / LossAnimationTicks

	zRange := g.Cloud.ZMax - g.Cloud.ZMin
	if zRange == 0 {
		zRange = 1
	}

	// The front starts above the tree and runs past the bottom so the band
	// fully enters and fully exits.
	washPos := progress * (1 + lossWashBand)

	for i := range g.frameBuf {
		zFromTop := 1 - (g.Cloud.Pts[i].Z-g.Cloud.ZMin)/zRange
		brightness := Clamp(1-(washPos-zFromTop)/lossWashBand, 0, 1)
		g.frameBuf[i] = LED{255, 255, 255}.Scaled(brightness)
	}
}
