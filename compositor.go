package main

import "math"

// ComposeFrame writes the Playing-state picture: background everywhere, then
// bricks, then the paddle, then the ball. Later writes overwrite earlier
// ones, so the ball is always visible even when it overlaps a brick.
func (g *Game) ComposeFrame() {
	for i := range g.frameBuf {
		g.frameBuf[i] = BgColor
	}

	for i := range g.Bricks {
		if !g.Bricks[i].Active {
			continue
		}
		color := BrickColors[i%len(BrickColors)]
		for _, lightIdx := range g.Bricks[i].Lights {
			g.frameBuf[lightIdx] = color
		}
	}

	// The paddle is drawn on every visible light close enough to the paddle
	// row. The tolerance is generous: on sparse trees the nearest lights can
	// be a bit off the exact row and the paddle must never be invisible.
	zTolerance := math.Max(g.Cloud.RowSpacing*1.5, 0.03)
	halfWidth := g.Params.PaddleWidth / 2
	for i := range g.frameBuf {
		if !g.proj.Visible[i] {
			continue
		}
		if math.Abs(g.proj.Y[i]-g.PaddleY) < halfWidth &&
			math.Abs(g.Cloud.Pts[i].Z-g.PaddleZ) < zTolerance {
			g.frameBuf[i] = PaddleColor
		}
	}

	ballPos := Vec2{g.BallY, g.BallZ}
	for i := range g.frameBuf {
		if !g.proj.Visible[i] {
			continue
		}
		lightPos := Vec2{g.proj.Y[i], g.Cloud.Pts[i].Z}
		if lightPos.DistTo(ballPos) < BallRadius {
			g.frameBuf[i] = BallColor
		}
	}
}
