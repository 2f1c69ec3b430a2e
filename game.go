package main

import (
	"fmt"
	"math"
)

// Game rules
// ----------
// - The paddle is AI-controlled. It tracks the ball's horizontal position
// with a small dead zone so it doesn't jitter when the ball is overhead.
// - The ball moves one fixed step per tick. There is no delta-time scaling:
// two runs with the same catalog and parameters produce bit-identical games.
// - Left/right/top walls reflect the ball; falling past the bottom costs a
// life. Every third fall loses the round.
// - Hitting a brick deactivates it and reflects the ball. After a hit, brick
// scanning is suspended for a few ticks so a single pass through a clump of
// bricks cannot wipe out several of them at once.
// - When all bricks are gone the round is won. Win and loss each play a
// fixed-length animation, then everything resets and the view rotates to the
// next face of the tree.

// SimulationVersion tracks the abstract behavior of the simulation. Any
// change that makes a game unfold differently from the same catalog and
// parameters (physics, AI, state machine, rendering into the frame buffer)
// must bump it, because captures replay correctly only on an executable with
// the same SimulationVersion.
const SimulationVersion = 2

type GameState int64

const (
	Playing GameState = iota
	WinAnimation
	LossAnimation
)

const (
	// Horizontal walls of the play area, in centered catalog coordinates.
	LeftWall  = -0.35
	RightWall = 0.35

	// How far below the bottom wall the ball must sink to count as fallen.
	fallMargin = 0.1

	// Vertical size of the paddle's collision zone above paddle level. A bit
	// taller than the paddle looks, which makes saves feel fairer given how
	// coarse the lights are.
	collisionHeight = 0.04

	// Hit box expansion for brick collision.
	brickTolY = 0.05
	brickTolZ = 0.03

	// Ticks to wait after destroying a brick before scanning again.
	brickHitCooldown = 5

	// The paddle only moves when the ball is more than this far off-center.
	paddleDeadZone = 0.02

	BallRadius = 0.05

	FallsPerLoss = 3

	// One new game per face, six faces around the tree.
	FacesPerCycle = 6

	// Animation lengths in ticks (3 and 4 seconds at the nominal 30 fps).
	WinAnimationTicks  = 90
	LossAnimationTicks = 120
)

// Game is the whole brick breaker: catalog, bricks, paddle, ball, state
// machine. One instance per process, stepped by the driver once per tick.
// The frame buffer is owned by the driver; the game only ever writes it.
type Game struct {
	Params GameParams
	Cloud  *PointCloud
	Bricks []Brick

	frameBuf []LED

	// Play area bounds derived from the catalog.
	TopWall float64
	Bottom  float64

	// PaddleZ is fixed: the light row nearest to a hand-tuned height above
	// the bottom of the tree.
	PaddleZ float64
	PaddleY float64

	BallY  float64
	BallZ  float64
	BallVY float64
	BallVZ float64

	State           GameState
	AnimationFrames int64
	FallCount       int64
	GameCount       int64
	RotationAngle   float64
	HitCooldown     int64
	LastBrickHit    int64
	TickCount       int64

	proj Projection
}

// NewGame builds a game over a light catalog. frameBuf must have exactly one
// entry per catalog point; the game writes all of them every tick and never
// resizes the slice.
func NewGame(catalog []Vec3, frameBuf []LED, params GameParams) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game parameters: %w", err)
	}

	cloud, err := NewPointCloud(catalog)
	if err != nil {
		return nil, err
	}

	if len(frameBuf) != cloud.NumPts() {
		return nil, fmt.Errorf("frame buffer has %d entries for %d lights",
			len(frameBuf), cloud.NumPts())
	}

	g := &Game{
		Params:   params,
		Cloud:    cloud,
		Bricks:   MakeBricks(cloud, int(params.LightsPerBrick)),
		frameBuf: frameBuf,
		TopWall:  cloud.ZMax - 0.05,
		Bottom:   cloud.ZMin + 0.05,
		PaddleZ:  cloud.SnapToRow(cloud.ZMin + 0.12),

		BallVY: params.BallSpeed * 0.7,
		BallVZ: params.BallSpeed,

		LastBrickHit: -1,
	}
	g.BallZ = g.PaddleZ + 0.15
	return g, nil
}

// RenderNextFrame advances the game one tick and writes every light's color
// into the frame buffer. This is the only entry point the driver calls. It
// is synchronous and must not be called concurrently.
func (g *Game) RenderNextFrame() {
	g.TickCount++

	// The view drifts slowly even mid-game.
	g.RotationAngle += g.Params.RotationSpeed
	if g.RotationAngle > 2*math.Pi {
		g.RotationAngle -= 2 * math.Pi
	} else if g.RotationAngle < 0 {
		g.RotationAngle += 2 * math.Pi
	}

	switch g.State {
	case LossAnimation:
		g.AnimationFrames++
		if g.AnimationFrames < LossAnimationTicks {
			g.RenderLossWash()
			return
		}
		// Animation done, fall through into a fresh round this same tick.
		g.ResetRound()
	case WinAnimation:
		g.AnimationFrames++
		if g.AnimationFrames < WinAnimationTicks {
			g.RenderWinCelebration()
			return
		}
		g.ResetRound()
	case Playing:
	}

	g.Cloud.Project(g.RotationAngle, &g.proj)
	g.movePaddle()
	g.moveBall()
	g.ComposeFrame()
}

func (g *Game) movePaddle() {
	if g.BallY > g.PaddleY+paddleDeadZone {
		g.PaddleY += g.Params.PaddleSpeed
	} else if g.BallY < g.PaddleY-paddleDeadZone {
		g.PaddleY -= g.Params.PaddleSpeed
	}

	halfWidth := g.Params.PaddleWidth / 2
	g.PaddleY = Clamp(g.PaddleY, LeftWall+halfWidth, RightWall-halfWidth)
}

func (g *Game) moveBall() {
	g.BallY += g.BallVY
	g.BallZ += g.BallVZ

	// Side walls. Boundary-inclusive: a ball landing exactly on the wall
	// counts as a hit.
	if g.BallY <= LeftWall || g.BallY >= RightWall {
		g.BallVY = -g.BallVY
		g.BallY = Clamp(g.BallY, LeftWall, RightWall)
	}

	// Top wall.
	if g.BallZ >= g.TopWall {
		g.BallVZ = -g.BallVZ
		g.BallZ = g.TopWall
	}

	// Paddle. The bounce direction depends on where the ball lands on the
	// paddle: center hits go up nearly straight, edge hits shoot off at full
	// horizontal speed. That spin is what keeps rallies interesting.
	if g.BallZ <= g.PaddleZ+collisionHeight &&
		g.BallZ >= g.PaddleZ-BallRadius &&
		math.Abs(g.BallY-g.PaddleY) < g.Params.PaddleWidth/2 {
		g.BallVZ = math.Abs(g.BallVZ)
		hitOffset := (g.BallY - g.PaddleY) / (g.Params.PaddleWidth / 2)
		g.BallVY = hitOffset * g.Params.BallSpeed
	}

	// Bricks. The cooldown suspends scanning entirely; without it the ball
	// plows through a clump of bricks destroying one per tick with no chance
	// for the reflection to carry it away first.
	if g.HitCooldown > 0 {
		g.HitCooldown--
	} else {
		ballPos := Vec2{g.BallY, g.BallZ}
		for i := range g.Bricks {
			if !g.Bricks[i].Active {
				continue
			}
			if g.Bricks[i].Bounds.ContainsPt(ballPos, brickTolY, brickTolZ) {
				g.Bricks[i].Active = false
				g.BallVZ = -g.BallVZ
				g.LastBrickHit = int64(i)
				g.HitCooldown = brickHitCooldown
				break // At most one brick per tick.
			}
		}
	}

	Assert(g.HitCooldown >= 0 && g.HitCooldown <= brickHitCooldown)

	// Fall below the paddle.
	if g.BallZ < g.Bottom-fallMargin {
		g.FallCount++
		if g.FallCount%FallsPerLoss == 0 {
			g.State = LossAnimation
			g.AnimationFrames = 0
		} else {
			g.ResetBall()
		}
	}

	// Win: every brick gone. The loss branch above can't also have fired
	// this tick since falling doesn't change any brick.
	if g.State == Playing && CountActive(g.Bricks) == 0 {
		g.State = WinAnimation
		g.AnimationFrames = 0
	}
}

// ResetBall puts the ball just above the paddle, heading up. The horizontal
// velocity is kept, so the respawn angle varies from fall to fall.
func (g *Game) ResetBall() {
	g.BallY = g.PaddleY
	g.BallZ = g.PaddleZ + 0.1
	g.BallVZ = math.Abs(g.BallVZ)
}

// ResetRound starts a new round: all bricks back, ball on the paddle,
// counters cleared, and the view snapped to the next face of the tree.
// GameCount and RotationAngle are the only things that survive a round.
func (g *Game) ResetRound() {
	for i := range g.Bricks {
		g.Bricks[i].Active = true
	}
	g.ResetBall()
	g.State = Playing
	g.AnimationFrames = 0
	g.FallCount = 0
	g.LastBrickHit = -1
	g.HitCooldown = 0

	g.GameCount++
	g.RotationAngle = (2 * math.Pi / FacesPerCycle) *
		float64(g.GameCount%FacesPerCycle)
}
