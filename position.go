package gcodegen

import (
	"fmt"
	"math"
)

// Number is a coordinate or feed rate as written in a program: fixed point with two decimals.
type Number float64

func (n Number) String() string {
	v := math.Round(float64(n)*100) / 100
	if v == 0 {
		v = 0 // no -0.00
	}
	return fmt.Sprintf("%.2f", v)
}

type Position struct {
	X, Y, Z float64
}

func (pos Position) String() string {
	return fmt.Sprintf("{x: %s, y: %s, z: %s}", Number(pos.X), Number(pos.Y), Number(pos.Z))
}

// State is the tool position plus whether the tool is down at cutting depth.
type State struct {
	Pos     Position
	Engaged bool
}

func (st State) String() string {
	if st.Engaged {
		return st.Pos.String() + " engaged"
	}
	return st.Pos.String()
}

// NewState returns the state at the start of a session: X0 Y0 at safe height.
func NewState(t Tooling) State {
	return State{Pos: Position{Z: t.SafeHeight}}
}

type Policy struct {
	LiftAtEndOfMove bool
}

// Tooling is fixed for a session.
type Tooling struct {
	CutDepth       float64 `yaml:"cut-depth"`
	SafeHeight     float64 `yaml:"safe-height"`
	RapidFeedRate  float64 `yaml:"rapid-feed-rate"`
	CutFeedRate    float64 `yaml:"cut-feed-rate"`
	PlungeFeedRate float64 `yaml:"plunge-feed-rate"`
}
