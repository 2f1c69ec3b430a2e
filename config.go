package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// GameParams are the numeric knobs of the simulation. They are fixed-size on
// purpose: the capture format serializes them as-is, so a capture fully
// describes the run that produced it.
type GameParams struct {
	// Fps is advisory. The simulation itself is tick-counted: animations
	// last a fixed number of ticks regardless of how fast the driver
	// actually ticks. Fps only tells the driver what rate was intended.
	Fps            int64
	BallSpeed      float64
	PaddleSpeed    float64
	PaddleWidth    float64
	LightsPerBrick int64
	RotationSpeed  float64
}

func DefaultGameParams() GameParams {
	return GameParams{
		Fps:            30,
		BallSpeed:      0.015,
		PaddleSpeed:    0.02,
		PaddleWidth:    0.25,
		LightsPerBrick: 5,
		RotationSpeed:  0.003,
	}
}

// Validate rejects parameter values the simulation has no defined behavior
// for. This runs at construction time: a bad config should fail before the
// first tick, not produce a quietly broken game.
func (p *GameParams) Validate() error {
	if p.Fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", p.Fps)
	}
	if p.BallSpeed <= 0 {
		return fmt.Errorf("ball speed must be positive, got %g", p.BallSpeed)
	}
	if p.PaddleSpeed <= 0 {
		return fmt.Errorf("paddle speed must be positive, got %g",
			p.PaddleSpeed)
	}
	if p.PaddleWidth <= 0 {
		return fmt.Errorf("paddle width must be positive, got %g",
			p.PaddleWidth)
	}
	if p.LightsPerBrick <= 0 {
		return fmt.Errorf("lights per brick must be positive, got %d",
			p.LightsPerBrick)
	}
	if p.RotationSpeed < 0 {
		return fmt.Errorf("rotation speed must not be negative, got %g",
			p.RotationSpeed)
	}
	return nil
}

// Config is what data/config.yaml holds: the game knobs plus everything the
// driver shell needs (which mode to start in, where the catalog is, whether
// to record).
type Config struct {
	StartState     string  `yaml:"StartState"`
	CoordsFile     string  `yaml:"CoordsFile"`
	RecordToFile   bool    `yaml:"RecordToFile"`
	RecordingFile  string  `yaml:"RecordingFile"`
	PlaybackFile   string  `yaml:"PlaybackFile"`
	Fps            int64   `yaml:"Fps"`
	BallSpeed      float64 `yaml:"BallSpeed"`
	PaddleSpeed    float64 `yaml:"PaddleSpeed"`
	PaddleWidth    float64 `yaml:"PaddleWidth"`
	LightsPerBrick int64   `yaml:"LightsPerBrick"`
	RotationSpeed  float64 `yaml:"RotationSpeed"`
}

func (c *Config) GameParams() GameParams {
	return GameParams{
		Fps:            c.Fps,
		BallSpeed:      c.BallSpeed,
		PaddleSpeed:    c.PaddleSpeed,
		PaddleWidth:    c.PaddleWidth,
		LightsPerBrick: c.LightsPerBrick,
		RotationSpeed:  c.RotationSpeed,
	}
}

func LoadYAML(fsys FS, path string, out any) {
	data, err := fsys.ReadFile(path)
	Check(err)
	Check(yaml.Unmarshal(data, out))
}
