package main

// Visual areas
// ------------
//
// - The tree area: where the LED view of the tree is drawn.
// - The HUD: a band above the tree area with state and counters.
// - The game area: HUD + tree area. Has a fixed size, known at compile time.
// - The debug area: a band below the game area holding the playback
// controls. Only present in playback mode.
// - The screen: contains the game area, the debug area if present, and any
// margins necessary to fill the application window. Its size is known only
// at run time.

const HudHeight = int64(90)
const TreeAreaWidth = int64(700)
const TreeAreaHeight = int64(860)
const GameWidth = TreeAreaWidth
const GameHeight = TreeAreaHeight + HudHeight
const DebugHeight = int64(60)

func (g *Gui) Layout(outsideWidth, outsideHeight int) (int, int) {
	// I receive the application window's actual size via outsideWidth and
	// outsideHeight and return the size I want, in pixels, for the bitmap
	// that will be drawn in the window. Ebitengine scales that bitmap to the
	// window, preserving aspect ratio.
	//
	// What I want: a fixed-size game area I can reason about at compile
	// time, centered, with the window margins filled by background. So the
	// returned bitmap has the window's aspect ratio and is exactly big
	// enough to contain the game area (plus the debug area in playback).
	gameWidth := GameWidth
	gameHeight := GameHeight
	if g.state == Playback {
		gameHeight += DebugHeight
	}
	g.adjustedGameWidth = gameWidth
	g.adjustedGameHeight = gameHeight

	// The aspect ratio of a rectangle is width / height. If the window is
	// thinner/taller than the game area, matching widths leaves space at the
	// top and bottom; otherwise matching heights leaves space at the sides.
	outsideAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameAspectRatio := float64(gameWidth) / float64(gameHeight)
	if outsideAspectRatio < gameAspectRatio {
		screenWidth := gameWidth
		screenHeight := int64(float64(gameWidth) / outsideAspectRatio)
		return int(screenWidth), int(screenHeight)
	}
	screenHeight := gameHeight
	screenWidth := int64(float64(gameHeight) * outsideAspectRatio)
	return int(screenWidth), int(screenHeight)
}
