package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

func (g *Gui) Draw(screen *ebiten.Image) {
	// The screen bitmap has the aspect ratio of the application window. Fill
	// it with background, then select the fixed-size game area in the center
	// and draw everything interesting inside it.
	screen.Fill(color.NRGBA{R: 12, G: 16, B: 24, A: 255})

	marginX := (int64(screen.Bounds().Size().X) - g.adjustedGameWidth) / 2
	marginY := (int64(screen.Bounds().Size().Y) - g.adjustedGameHeight) / 2

	game := SubImage(screen, image.Rect(
		int(marginX),
		int(marginY),
		int(marginX+GameWidth),
		int(marginY+GameHeight)))

	g.DrawHud(SubImage(game, image.Rect(0, 0, int(GameWidth), int(HudHeight))))
	g.DrawTree(SubImage(game, image.Rect(
		0, int(HudHeight), int(TreeAreaWidth), int(GameHeight))))

	if g.state == Playback {
		debug := SubImage(screen, image.Rect(
			int(marginX),
			int(marginY+GameHeight),
			int(marginX+GameWidth),
			int(marginY+GameHeight+DebugHeight)))
		g.DrawPlaybackControls(debug)

		// Remember where the play bar is in absolute screen coordinates, so
		// Update can translate clicks on it into a target frame.
		g.buttonPlaybackBar = image.Rect(
			int(marginX)+playBarMarginX,
			int(marginY+GameHeight)+playBarMarginY,
			int(marginX+GameWidth)-playBarMarginX,
			int(marginY+GameHeight+DebugHeight)-playBarMarginY)
	}
}

// DrawTree paints every LED of the tree, back to front, with whatever the
// game last wrote into the frame buffer. Lights on the far side of the tree
// are dimmed so the near face reads clearly.
func (g *Gui) DrawTree(screen *ebiten.Image) {
	for _, i := range g.visTree.DrawOrder {
		c := g.frameBuf[i]
		if g.game.Cloud.Pts[i].X < 0 {
			c = c.Scaled(0.35)
		}
		DrawLed(screen,
			g.visTree.ScreenX[i],
			g.visTree.ScreenY[i],
			g.visTree.LedSize, c)
	}
}

func (g *Gui) DrawHud(screen *ebiten.Image) {
	var stateName string
	switch g.game.State {
	case Playing:
		stateName = "playing"
	case WinAnimation:
		stateName = "win!"
	case LossAnimation:
		stateName = "loss"
	}

	line1 := fmt.Sprintf("game %d  face %d/%d  %s",
		g.game.GameCount+1,
		g.game.GameCount%FacesPerCycle+1,
		FacesPerCycle,
		stateName)
	line2 := fmt.Sprintf("bricks %d/%d  falls %d  tick %d",
		CountActive(g.game.Bricks),
		len(g.game.Bricks),
		g.game.FallCount,
		g.game.TickCount)

	white := color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	text.Draw(screen, line1, g.defaultFont,
		screen.Bounds().Min.X+14, screen.Bounds().Min.Y+34, white)
	text.Draw(screen, line2, g.defaultFont,
		screen.Bounds().Min.X+14, screen.Bounds().Min.Y+70, white)
}

const playBarMarginX = 20
const playBarMarginY = 18

func (g *Gui) DrawPlaybackControls(screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	// Bar background, then the filled part up to the current frame.
	barW := w - 2*playBarMarginX
	barH := h - 2*playBarMarginY
	FillRect(screen, playBarMarginX, playBarMarginY, barW, barH, 60, 60, 60)
	if g.capture.Ticks > 0 {
		filled := barW * float64(g.frameIdx) / float64(g.capture.Ticks)
		FillRect(screen, playBarMarginX, playBarMarginY, filled, barH,
			251, 150, 32)
	}

	if g.playbackPaused {
		text.Draw(screen, "paused (space)", g.defaultFont,
			screen.Bounds().Min.X+int(playBarMarginX), screen.Bounds().Min.Y+14,
			color.NRGBA{R: 230, G: 230, B: 230, A: 255})
	}
}
