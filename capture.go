package main

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// InputVersion is the version of the byte representation of the Capture
// structure. If Capture changes such that serializing it produces a
// different array of bytes, InputVersion must change as well.
// There is no player input in this game, so a capture doesn't store an input
// history the way a recorded playthrough would. It stores the catalog, the
// parameters and how many ticks ran: because the simulation is deterministic
// that is enough to reproduce every frame exactly.
const InputVersion = 1

// Capture describes one recorded run of the show. An executable can replay
// any capture with the same InputVersion and SimulationVersion as its own.
type Capture struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	Id                uuid.UUID
	Params            GameParams
	Catalog           []Vec3
	Ticks             int64
}

func NewCapture(params GameParams, catalog []Vec3) Capture {
	return Capture{
		InputVersion:      InputVersion,
		SimulationVersion: SimulationVersion,
		ReleaseVersion:    ReleaseVersion,
		Id:                uuid.New(),
		Params:            params,
		Catalog:           catalog,
	}
}

func (c *Capture) Serialize() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, c.InputVersion)
	Serialize(buf, c.SimulationVersion)
	Serialize(buf, c.ReleaseVersion)
	Serialize(buf, c.Id)
	Serialize(buf, c.Params)
	SerializeSlice(buf, c.Catalog)
	Serialize(buf, c.Ticks)
	return Zip(buf.Bytes())
}

// NewGame builds the game a capture describes, ready to be stepped Ticks
// times. The frame buffer is created here because a replay has no external
// driver buffer to borrow.
func (c *Capture) NewGame() (*Game, []LED) {
	frameBuf := make([]LED, len(c.Catalog))
	g, err := NewGame(c.Catalog, frameBuf, c.Params)
	Check(err)
	return g, frameBuf
}

func DeserializeCapture(data []byte) (c Capture) {
	buf := bytes.NewBuffer(Unzip(data))
	Deserialize(buf, &c.InputVersion)
	if c.InputVersion != InputVersion {
		Check(fmt.Errorf("can't deserialize this capture - we are at "+
			"InputVersion %d and the capture was written with InputVersion "+
			"%d", InputVersion, c.InputVersion))
	}
	Deserialize(buf, &c.SimulationVersion)
	Deserialize(buf, &c.ReleaseVersion)
	Deserialize(buf, &c.Id)
	Deserialize(buf, &c.Params)
	DeserializeSlice(buf, &c.Catalog)
	Deserialize(buf, &c.Ticks)
	return
}
