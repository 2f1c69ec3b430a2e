package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image that every quad on screen is a scaled,
// tinted copy of. There are no sprite assets in this project: LEDs, bars and
// backgrounds are all just colored rectangles. Created lazily so that tests
// which never draw don't touch the graphics stack.
var whitePixel *ebiten.Image

func getWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// FillRect draws an axis-aligned colored rectangle on screen.
// x and y are in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func FillRect(screen *ebiten.Image, x, y, width, height float64,
	r, g, b uint8) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(float64(screen.Bounds().Min.X)+x,
		float64(screen.Bounds().Min.Y)+y)
	op.ColorScale.Scale(float32(r)/255, float32(g)/255, float32(b)/255, 1)
	screen.DrawImage(getWhitePixel(), op)
}

// DrawLed draws one light as a small quad centered on (x, y).
func DrawLed(screen *ebiten.Image, x, y, size float64, c LED) {
	FillRect(screen, x-size/2, y-size/2, size, size, c[0], c[1], c[2])
}

// SubImage returns a sub-region of screen. r is relative to the screen's
// top-left corner, which is how I think about sub-areas; ebitengine itself
// keeps sub-images in the parent's absolute coordinates.
func SubImage(screen *ebiten.Image, r image.Rectangle) *ebiten.Image {
	minPt := screen.Bounds().Min
	r.Min = r.Min.Add(minPt)
	r.Max = r.Max.Add(minPt)
	return screen.SubImage(r).(*ebiten.Image)
}
