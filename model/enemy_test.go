package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEnemySpeed(t *testing.T) {
	e := NewEnemy(5, 5, 8, -1, 1)
	assert.InDelta(t, 8, e.Speed(), 1e-9)
	assert.True(t, e.VX < 0)
	assert.True(t, e.VY > 0)
	assert.InDelta(t, math.Abs(e.VX), math.Abs(e.VY), 1e-9)
}

func TestEnemyFreeFlight(t *testing.T) {
	g := NewGrid(10, 10)
	e := Enemy{X: 4.5, Y: 4.5, VX: 2, VY: -1}
	e.Advance(g, 0.5)
	assert.InDelta(t, 5.5, e.X, 1e-9)
	assert.InDelta(t, 4.0, e.Y, 1e-9)
	assert.Equal(t, 2.0, e.VX)
	assert.Equal(t, -1.0, e.VY)
}

func TestEnemyBouncesOffBorder(t *testing.T) {
	g := NewGrid(10, 10)
	e := Enemy{X: 8.5, Y: 5.5, VX: 10}
	e.Advance(g, 0.1)
	assert.InDelta(t, 7.5, e.X, 1e-9)
	assert.Equal(t, -10.0, e.VX)
	assert.InDelta(t, 5.5, e.Y, 1e-9)
}

func TestEnemyCornerReflectsBothAxes(t *testing.T) {
	g := NewGrid(10, 10)
	e := Enemy{X: 1.5, Y: 1.5, VX: -5, VY: -5}
	e.Advance(g, 0.2)
	assert.InDelta(t, 2.5, e.X, 1e-9)
	assert.InDelta(t, 2.5, e.Y, 1e-9)
	assert.Equal(t, 5.0, e.VX)
	assert.Equal(t, 5.0, e.VY)
}

func TestEnemySlidesAlongWall(t *testing.T) {
	g := NewGrid(10, 10)
	e := Enemy{X: 1.5, Y: 5.5, VX: -5, VY: 5}
	e.Advance(g, 0.2)
	assert.Equal(t, 5.0, e.VX, "x reflects off the left border")
	assert.Equal(t, 5.0, e.VY, "y keeps going")
	assert.InDelta(t, 6.5, e.Y, 1e-9)
}

func TestEnemyBouncesOffClaimedCell(t *testing.T) {
	g := NewGrid(10, 10)
	g.Set(5, 4, Solid)
	e := Enemy{X: 5.5, Y: 5.5, VY: -10}
	e.Advance(g, 0.1)
	assert.Equal(t, 10.0, e.VY)
	assert.InDelta(t, 6.5, e.Y, 1e-9)
}

func TestEnemyCellClamped(t *testing.T) {
	g := NewGrid(10, 10)
	c, r := Enemy{X: -3.2, Y: 20}.Cell(g)
	assert.Equal(t, 0, c)
	assert.Equal(t, 9, r)

	c, r = Enemy{X: 2.99, Y: 3.01}.Cell(g)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3, r)
}

func TestEnemyOnTrail(t *testing.T) {
	g := NewGrid(10, 10)
	e := Enemy{X: 2.9, Y: 3.1}
	assert.False(t, e.OnTrail(g))
	g.Set(2, 3, Trail)
	assert.True(t, e.OnTrail(g))
}
