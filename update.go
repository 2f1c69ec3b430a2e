package main

import (
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (g *Gui) Update() error {
	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	switch g.state {
	case ShowOngoing:
		g.UpdateShow()
	case Playback:
		g.UpdatePlayback()
	default:
		panic("unhandled default case")
	}

	return nil
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func ImageRectContainsPt(r image.Rectangle, pt image.Point) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X &&
		pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

func (g *Gui) LeftClickPressedOn(button image.Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButton0) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return ImageRectContainsPt(button, image.Pt(x, y))
}

func (g *Gui) UpdateShow() {
	// Rebuild the show when the data folder changes. This makes knob tuning
	// pleasant: edit config.yaml, watch the tree restart with the new values.
	if g.folderWatcher.FolderContentsChanged() {
		g.LoadGuiData()
		g.StartShow()
	}

	// IMPORTANT: save the capture before stepping the game. If a bug in the
	// simulation crashes a tick, the file on disk describes the exact run
	// that reached the crash, one tick short of it.
	if g.RecordToFile {
		WriteFile(g.RecordingFile, g.capture.Serialize())
	}

	g.game.RenderNextFrame()
	g.capture.Ticks++
	g.frameIdx++

	// Hand the capture to the uploader once in a while. The channel send
	// must not block the tick; if the uploader is behind, skip this round.
	if g.capture.Ticks%uploadEveryTicks == 0 {
		select {
		case g.uploadCaptureChannel <- g.capture:
		default:
		}
	}
}

// uploadEveryTicks is one minute at the nominal tick rate.
const uploadEveryTicks = 1800

func (g *Gui) UpdatePlayback() {
	nFrames := g.capture.Ticks
	if nFrames == 0 {
		// A capture with no ticks has no frame to show or seek to.
		return
	}

	if g.JustPressed(ebiten.KeySpace) {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if g.LeftClickPressedOn(g.buttonPlaybackBar) {
		x, _ := ebiten.CursorPosition()
		dx := int64(x - g.buttonPlaybackBar.Min.X)
		targetFrameIdx = dx * nFrames / int64(g.buttonPlaybackBar.Dx())
	}

	if g.JustPressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyAlt) {
		targetFrameIdx -= g.FrameSkipAltArrow
	}

	if g.JustPressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyAlt) {
		targetFrameIdx += g.FrameSkipAltArrow
	}

	if g.Pressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShiftArrow
	}

	if targetFrameIdx < 0 {
		targetFrameIdx = 0
	}

	if targetFrameIdx >= nFrames {
		targetFrameIdx = nFrames - 1
	}

	if targetFrameIdx != g.frameIdx {
		// Rewind. There is no way to step a deterministic simulation
		// backwards, so recreate it and replay from the start. A few
		// thousand ticks re-simulate faster than one screen refresh.
		g.game, g.frameBuf = g.capture.NewGame()
		for range targetFrameIdx {
			g.game.RenderNextFrame()
		}
		g.frameIdx = targetFrameIdx
	}

	if !g.playbackPaused {
		g.game.RenderNextFrame()
		if g.frameIdx < nFrames-1 {
			g.frameIdx++
		}
	}
}
