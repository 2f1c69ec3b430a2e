package main

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAMLConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"data/config.yaml": &fstest.MapFile{Data: []byte(`
StartState: Show
CoordsFile: data/coords.csv
RecordToFile: true
RecordingFile: recorded-show.treebreaker
Fps: 30
BallSpeed: 0.015
PaddleSpeed: 0.02
PaddleWidth: 0.25
LightsPerBrick: 5
RotationSpeed: 0.003
`)},
	}

	var c Config
	LoadYAML(fsys, "data/config.yaml", &c)
	assert.Equal(t, "Show", c.StartState)
	assert.True(t, c.RecordToFile)
	assert.Equal(t, int64(5), c.LightsPerBrick)
	assert.InDelta(t, 0.015, c.BallSpeed, 1e-9)

	params := c.GameParams()
	require.NoError(t, params.Validate())
	assert.Equal(t, int64(30), params.Fps)
}

func TestGameParamsValidate(t *testing.T) {
	good := DefaultGameParams()
	require.NoError(t, good.Validate())

	// A rotation speed of zero is a legal static view.
	still := good
	still.RotationSpeed = 0
	assert.NoError(t, still.Validate())

	tweak := func(f func(*GameParams)) error {
		p := DefaultGameParams()
		f(&p)
		return p.Validate()
	}
	assert.Error(t, tweak(func(p *GameParams) { p.Fps = 0 }))
	assert.Error(t, tweak(func(p *GameParams) { p.BallSpeed = -1 }))
	assert.Error(t, tweak(func(p *GameParams) { p.PaddleSpeed = 0 }))
	assert.Error(t, tweak(func(p *GameParams) { p.PaddleWidth = 0 }))
	assert.Error(t, tweak(func(p *GameParams) { p.LightsPerBrick = 0 }))
	assert.Error(t, tweak(func(p *GameParams) { p.RotationSpeed = -0.1 }))
}
