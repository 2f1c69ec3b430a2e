package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) (*Game, []LED) {
	catalog := GenerateConePoints(500)
	frameBuf := make([]LED, len(catalog))
	g, err := NewGame(catalog, frameBuf, DefaultGameParams())
	require.NoError(t, err)
	return g, frameBuf
}

// lowestBrick returns the active brick whose center sits lowest on the tree.
// Tests teleport the ball there: low bricks are far from the top wall, so a
// reflection off the brick can't immediately reflect again off the wall.
func lowestBrick(g *Game) int {
	best := -1
	bestZ := math.Inf(1)
	for i := range g.Bricks {
		if !g.Bricks[i].Active {
			continue
		}
		if c := g.Bricks[i].Bounds.Center(); c.Z < bestZ {
			bestZ = c.Z
			best = i
		}
	}
	return best
}

func TestNewGame_RejectsBadInput(t *testing.T) {
	catalog := GenerateConePoints(100)
	frameBuf := make([]LED, len(catalog))

	params := DefaultGameParams()
	params.BallSpeed = 0
	_, err := NewGame(catalog, frameBuf, params)
	assert.Error(t, err)

	_, err = NewGame(nil, frameBuf, DefaultGameParams())
	assert.Error(t, err)

	_, err = NewGame(catalog, make([]LED, 7), DefaultGameParams())
	assert.Error(t, err)
}

func TestNewGame_Layout(t *testing.T) {
	g, _ := newTestGame(t)

	// The cone catalog spans 1.4 in height, so centered it runs -0.7..0.7.
	assert.InDelta(t, 0.7, g.Cloud.ZMax, 0.01)
	assert.InDelta(t, -0.7, g.Cloud.ZMin, 0.01)
	assert.InDelta(t, g.Cloud.ZMax-0.05, g.TopWall, 1e-9)
	assert.InDelta(t, g.Cloud.ZMin+0.05, g.Bottom, 1e-9)

	// The paddle snaps to a light row near its nominal height.
	assert.InDelta(t, g.Cloud.ZMin+0.12, g.PaddleZ, g.Cloud.RowSpacing)

	// Ball serve: centered above the paddle, heading up and slightly right.
	assert.Equal(t, 0.0, g.BallY)
	assert.InDelta(t, g.PaddleZ+0.15, g.BallZ, 1e-9)
	assert.InDelta(t, g.Params.BallSpeed*0.7, g.BallVY, 1e-9)
	assert.InDelta(t, g.Params.BallSpeed, g.BallVZ, 1e-9)

	assert.Equal(t, Playing, g.State)
	assert.Equal(t, len(g.Bricks), CountActive(g.Bricks))
}

func TestSideWallBounce(t *testing.T) {
	g, _ := newTestGame(t)

	// Park the ball between the paddle row and the brick band so only the
	// wall can react.
	g.BallY = RightWall - 0.005
	g.BallZ = -0.3
	g.BallVY = 0.01
	g.BallVZ = 0

	g.moveBall()
	assert.InDelta(t, -0.01, g.BallVY, 1e-9)
	assert.LessOrEqual(t, g.BallY, RightWall)

	g.BallY = LeftWall + 0.005
	g.BallVY = -0.01
	g.moveBall()
	assert.InDelta(t, 0.01, g.BallVY, 1e-9)
	assert.GreaterOrEqual(t, g.BallY, LeftWall)
}

func TestTopWallBounce(t *testing.T) {
	g, _ := newTestGame(t)

	// Near the tip the cone is narrow, so y=0.3 is clear of every brick.
	g.BallY = 0.3
	g.BallZ = g.TopWall - 0.01
	g.BallVY = 0
	g.BallVZ = 0.02

	g.moveBall()
	assert.InDelta(t, -0.02, g.BallVZ, 1e-9)
	assert.InDelta(t, g.TopWall, g.BallZ, 1e-9)
}

func TestPaddleBounce_CenterGoesStraightUp(t *testing.T) {
	g, _ := newTestGame(t)

	g.PaddleY = 0
	g.BallY = 0
	g.BallVY = 0
	g.BallVZ = -g.Params.BallSpeed
	g.BallZ = g.PaddleZ + 0.03 + g.Params.BallSpeed

	g.moveBall()
	assert.InDelta(t, g.Params.BallSpeed, g.BallVZ, 1e-9)
	assert.InDelta(t, 0, g.BallVY, 1e-9)
}

func TestPaddleBounce_EdgeAddsSpin(t *testing.T) {
	g, _ := newTestGame(t)

	g.PaddleY = 0
	g.BallY = 0.1
	g.BallVY = 0
	g.BallVZ = -g.Params.BallSpeed
	g.BallZ = g.PaddleZ + 0.03 + g.Params.BallSpeed

	g.moveBall()
	assert.InDelta(t, g.Params.BallSpeed, g.BallVZ, 1e-9)
	// 0.1 off-center on a half-width of 0.125 is 80% of full spin.
	assert.InDelta(t, 0.8*g.Params.BallSpeed, g.BallVY, 1e-9)
}

func TestBrickHitStartsCooldown(t *testing.T) {
	g, _ := newTestGame(t)

	idx := lowestBrick(g)
	require.GreaterOrEqual(t, idx, 0)
	center := g.Bricks[idx].Bounds.Center()

	// Aim the ball so it lands dead center in the brick. The climb per tick
	// is tiny so the ball stays inside the brick box for the whole cooldown.
	g.BallY = center.Y
	g.BallZ = center.Z - 0.002
	g.BallVY = 0
	g.BallVZ = 0.002

	before := CountActive(g.Bricks)
	g.moveBall()
	assert.False(t, g.Bricks[idx].Active)
	// The hit reflects the ball downward.
	assert.InDelta(t, -0.002, g.BallVZ, 1e-9)
	assert.Equal(t, int64(idx), g.LastBrickHit)
	assert.Equal(t, int64(brickHitCooldown), g.HitCooldown)
	assert.Equal(t, before-1, CountActive(g.Bricks))

	// The next five ticks only drain the cooldown. The ball is still inside
	// brick territory but nothing else gets destroyed.
	for i := 0; i < brickHitCooldown; i++ {
		g.moveBall()
	}
	assert.Equal(t, int64(0), g.HitCooldown)
	assert.Equal(t, before-1, CountActive(g.Bricks))
}

func TestFallAndLives(t *testing.T) {
	g, _ := newTestGame(t)
	g.PaddleY = 0.1

	sink := func() {
		g.BallY = 0
		g.BallZ = g.Bottom - fallMargin
		g.BallVY = 0
		g.BallVZ = -0.01
		g.moveBall()
	}

	// Falls one and two respawn the ball on the paddle.
	sink()
	assert.Equal(t, int64(1), g.FallCount)
	assert.Equal(t, Playing, g.State)
	assert.Equal(t, g.PaddleY, g.BallY)
	assert.InDelta(t, g.PaddleZ+0.1, g.BallZ, 1e-9)
	assert.InDelta(t, 0.01, g.BallVZ, 1e-9)

	sink()
	assert.Equal(t, int64(2), g.FallCount)
	assert.Equal(t, Playing, g.State)

	// The third fall loses the round.
	sink()
	assert.Equal(t, int64(3), g.FallCount)
	assert.Equal(t, LossAnimation, g.State)
	assert.Equal(t, int64(0), g.AnimationFrames)
}

func TestWinOnLastBrick(t *testing.T) {
	g, _ := newTestGame(t)

	idx := lowestBrick(g)
	for i := range g.Bricks {
		g.Bricks[i].Active = i == idx
	}

	center := g.Bricks[idx].Bounds.Center()
	g.BallY = center.Y
	g.BallZ = center.Z
	g.BallVY = 0
	g.BallVZ = 0

	g.moveBall()
	assert.Equal(t, 0, CountActive(g.Bricks))
	assert.Equal(t, WinAnimation, g.State)
	assert.Equal(t, int64(0), g.AnimationFrames)
}

func TestWinAnimationEndsInFreshRound(t *testing.T) {
	g, _ := newTestGame(t)
	g.State = WinAnimation
	g.AnimationFrames = 0
	for i := range g.Bricks {
		g.Bricks[i].Active = false
	}

	for i := 0; i < WinAnimationTicks-1; i++ {
		g.RenderNextFrame()
	}
	assert.Equal(t, WinAnimation, g.State)

	// The last animation tick resets and renders the first gameplay frame.
	g.RenderNextFrame()
	assert.Equal(t, Playing, g.State)
	assert.Equal(t, int64(1), g.GameCount)
	assert.Equal(t, len(g.Bricks), CountActive(g.Bricks))
	assert.Equal(t, int64(0), g.FallCount)
	assert.InDelta(t, 2*math.Pi/FacesPerCycle, g.RotationAngle, 1e-9)
}

func TestLossAnimationEndsInFreshRound(t *testing.T) {
	g, _ := newTestGame(t)
	g.State = LossAnimation
	g.AnimationFrames = 0
	g.FallCount = 3
	g.Bricks[0].Active = false

	for i := 0; i < LossAnimationTicks-1; i++ {
		g.RenderNextFrame()
	}
	assert.Equal(t, LossAnimation, g.State)

	g.RenderNextFrame()
	assert.Equal(t, Playing, g.State)
	assert.Equal(t, int64(1), g.GameCount)
	assert.True(t, g.Bricks[0].Active)
	assert.Equal(t, int64(0), g.FallCount)
	assert.InDelta(t, 2*math.Pi/FacesPerCycle, g.RotationAngle, 1e-9)
}

func TestRoundRotationCyclesThroughFaces(t *testing.T) {
	g, _ := newTestGame(t)

	for round := 1; round <= 2*FacesPerCycle; round++ {
		g.ResetRound()
		want := (2 * math.Pi / FacesPerCycle) * float64(round%FacesPerCycle)
		assert.InDelta(t, want, g.RotationAngle, 1e-9)
	}
}

func TestPaddleTracksBall(t *testing.T) {
	g, _ := newTestGame(t)

	g.PaddleY = 0
	g.BallY = 0.1
	g.movePaddle()
	assert.InDelta(t, g.Params.PaddleSpeed, g.PaddleY, 1e-9)

	g.BallY = g.PaddleY - 0.1
	g.movePaddle()
	assert.InDelta(t, 0, g.PaddleY, 1e-9)

	// Inside the dead zone the paddle holds still.
	g.BallY = g.PaddleY + paddleDeadZone/2
	g.movePaddle()
	assert.InDelta(t, 0, g.PaddleY, 1e-9)
}

func TestPaddleStaysInsideWalls(t *testing.T) {
	g, _ := newTestGame(t)

	g.PaddleY = 0.3
	g.BallY = 1
	g.movePaddle()
	assert.InDelta(t, RightWall-g.Params.PaddleWidth/2, g.PaddleY, 1e-9)

	g.PaddleY = -0.3
	g.BallY = -1
	g.movePaddle()
	assert.InDelta(t, LeftWall+g.Params.PaddleWidth/2, g.PaddleY, 1e-9)
}

func TestComposeFrame_Layers(t *testing.T) {
	g, frameBuf := newTestGame(t)
	g.RenderNextFrame()

	// The bottom-most light is below the brick band, off the paddle row and
	// far from the ball: it must show plain background.
	assert.Equal(t, BgColor, frameBuf[0])

	// Bricks alternate red and green and are drawn regardless of rotation.
	for i := range g.Bricks {
		want := BrickColors[i%len(BrickColors)]
		for _, lightIdx := range g.Bricks[i].Lights {
			assert.Equal(t, want, frameBuf[lightIdx])
		}
	}

	// Whatever lights land on the paddle row in front must be white.
	zTolerance := math.Max(g.Cloud.RowSpacing*1.5, 0.03)
	for i := range frameBuf {
		if !g.proj.Visible[i] {
			continue
		}
		if math.Abs(g.proj.Y[i]-g.PaddleY) < g.Params.PaddleWidth/2 &&
			math.Abs(g.Cloud.Pts[i].Z-g.PaddleZ) < zTolerance {
			assert.Equal(t, PaddleColor, frameBuf[i])
		}
	}
}

func TestComposeFrame_InactiveBrickGoesDark(t *testing.T) {
	g, frameBuf := newTestGame(t)
	g.Bricks[0].Active = false
	g.RenderNextFrame()

	// A destroyed brick's lights fall back to plain background. The ball
	// and paddle sit well below the brick band on the first tick, so
	// nothing else can claim these lights.
	for _, lightIdx := range g.Bricks[0].Lights {
		assert.Equal(t, BgColor, frameBuf[lightIdx])
	}
}

// Every tick of every state must write every light. A stale color from the
// previous frame would flicker on the physical tree.
func TestEveryStateWritesTheWholeBuffer(t *testing.T) {
	sentinel := LED{1, 2, 3}

	states := []GameState{Playing, WinAnimation, LossAnimation}
	for _, state := range states {
		g, frameBuf := newTestGame(t)
		g.State = state
		for i := range frameBuf {
			frameBuf[i] = sentinel
		}
		g.RenderNextFrame()
		for i := range frameBuf {
			require.NotEqual(t, sentinel, frameBuf[i],
				"light %d not written in state %d", i, state)
		}
	}
}

func TestSimulationIsDeterministic(t *testing.T) {
	a, _ := newTestGame(t)
	b, _ := newTestGame(t)

	for tick := 0; tick < 600; tick++ {
		a.RenderNextFrame()
		b.RenderNextFrame()
		require.Equal(t, a.StateBytes(), b.StateBytes(), "tick %d", tick)
	}
}
