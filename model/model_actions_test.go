package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walk(t *testing.T, g *Grid, p *Player, dirs ...Direction) []StepResult {
	t.Helper()
	out := make([]StepResult, 0, len(dirs))
	for _, d := range dirs {
		p.Dir = d
		out = append(out, p.Step(g))
	}
	return out
}

func TestStepAlongBorder(t *testing.T) {
	g := NewGrid(8, 6)
	p := NewPlayer(3, 0, Right)
	assert.Equal(t, StepMoved, p.Step(g))
	assert.Equal(t, 4, p.Col)
	assert.Equal(t, OnBorder, p.State)
	assert.Equal(t, 0, g.Count(Trail))
}

func TestStepIdle(t *testing.T) {
	g := NewGrid(8, 6)
	p := NewPlayer(3, 0, None)
	assert.Equal(t, StepIdle, p.Step(g))

	// pushing against the outer edge clamps onto the same cell
	p = NewPlayer(0, 0, Up)
	assert.Equal(t, StepIdle, p.Step(g))
	assert.Equal(t, 0, p.Row)
}

func TestStepLeavesBorderWithoutPaintingIt(t *testing.T) {
	g := NewGrid(8, 6)
	p := NewPlayer(3, 0, Down)
	assert.Equal(t, StepStarted, p.Step(g))
	assert.Equal(t, Drawing, p.State)
	assert.True(t, p.Drawing())
	assert.Equal(t, Solid, g.Matrix[3][0])
	assert.Equal(t, 0, g.Count(Trail))

	assert.Equal(t, StepMoved, p.Step(g))
	assert.Equal(t, Trail, g.Matrix[3][1])
	assert.Equal(t, 2, p.Row)
}

func TestStepCrossingOwnTrail(t *testing.T) {
	g := NewGrid(8, 8)
	p := NewPlayer(3, 0, Down)
	res := walk(t, g, p, Down, Down, Right, Left)
	assert.Equal(t, []StepResult{StepStarted, StepMoved, StepMoved, StepCrossed}, res)
	// crossing does not move the player
	assert.Equal(t, 4, p.Col)
	assert.Equal(t, 2, p.Row)
}

func TestStepSingleCellClosure(t *testing.T) {
	g := NewGrid(5, 5)
	p := NewPlayer(2, 0, Down)
	res := walk(t, g, p, Down, Up)
	assert.Equal(t, []StepResult{StepStarted, StepClosed}, res)
	assert.Equal(t, OnBorder, p.State)
	assert.Equal(t, 0, p.Row)
	assert.Equal(t, Trail, g.Matrix[2][1], "head cell is part of the closed trail")
}

func TestStepOnlyOntoClampedCells(t *testing.T) {
	g := NewGrid(4, 4)
	p := NewPlayer(3, 3, Right)
	for i := 0; i < 5; i++ {
		p.Step(g)
		require.True(t, g.InBounds(p.Col, p.Row))
	}
}

func TestAccumulator(t *testing.T) {
	p := NewPlayer(1, 0, Right)
	p.Accumulate(0.25)
	assert.True(t, p.TakeStep(0.1))
	assert.True(t, p.TakeStep(0.1))
	assert.False(t, p.TakeStep(0.1))
	assert.False(t, p.TakeStep(0))

	p.Respawn(2, 0, Right)
	assert.False(t, p.TakeStep(0.01))
}

func TestDirectionIndexRoundTrip(t *testing.T) {
	for i, d := range Directions {
		assert.Equal(t, i, d.Index())
		assert.Equal(t, d, DirectionFromIndex(i))
	}
	assert.Equal(t, None, DirectionFromIndex(42))
	assert.Equal(t, IntentDirection, DirectionMessage(Up).Intent)
	assert.Equal(t, Up.Index(), DirectionMessage(Up).Direction)
}
