package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represent the current state of the
// Game, as perceived by the outside. If two Games have the same state bytes
// at every tick they are considered "the same", even if the implementation
// changed between them.
//
// The definition used here is everything that feeds the frame buffer: ball,
// paddle, brick flags, the state machine and the rotation. It deliberately
// excludes the frame buffer itself, so that a pure rendering change (say, a
// different paddle color) does not count as a simulation change.
func (g *Game) StateBytes() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, g.BallY)
	Serialize(buf, g.BallZ)
	Serialize(buf, g.BallVY)
	Serialize(buf, g.BallVZ)
	Serialize(buf, g.PaddleY)
	Serialize(buf, int64(g.State))
	Serialize(buf, g.AnimationFrames)
	Serialize(buf, g.FallCount)
	Serialize(buf, g.GameCount)
	Serialize(buf, g.RotationAngle)
	Serialize(buf, g.HitCooldown)
	Serialize(buf, g.LastBrickHit)
	Serialize(buf, int64(len(g.Bricks)))
	for i := range g.Bricks {
		Serialize(buf, g.Bricks[i].Active)
	}
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies a captured run:
// a hash of the state of the Game at every tick. Compute it before and after
// refactoring the simulation; if the id is unchanged, the refactoring did
// not alter what runs on the tree. A simulation this sensitive to its own
// arithmetic diverges quickly if anything acts differently, so matching
// hashes over a few thousand ticks is strong evidence nothing changed.
func RegressionId(c *Capture) string {
	hash := sha256.New()

	g, _ := c.NewGame()
	hash.Write(g.StateBytes())

	for range c.Ticks {
		g.RenderNextFrame()
		hash.Write(g.StateBytes())
	}

	return hex.EncodeToString(hash.Sum(nil))
}
