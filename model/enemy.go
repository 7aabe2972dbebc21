package model

import "math"

// Enemy moves in continuous cell units and reflects off solid cells.
type Enemy struct {
	X, Y   float64
	VX, VY float64
}

// NewEnemy places an enemy at (x,y) moving diagonally with the given speed.
// sx and sy pick the sign of each velocity component.
func NewEnemy(x, y, speed float64, sx, sy int) Enemy {
	dx, dy := sign(sx), sign(sy)
	l := math.Sqrt(dx*dx + dy*dy)
	return Enemy{X: x, Y: y, VX: dx / l * speed, VY: dy / l * speed}
}

func (e Enemy) Speed() float64 {
	return math.Hypot(e.VX, e.VY)
}

// Advance integrates one frame. Each axis is tested on its own so the
// enemy slides along walls: x against the unchanged y, y against the
// unchanged x.
func (e *Enemy) Advance(g *Grid, dt float64) {
	nx := e.X + e.VX*dt
	ny := e.Y + e.VY*dt

	if g.IsSolidOrOutOfBounds(floor(nx), floor(e.Y)) {
		e.VX = -e.VX
		nx = e.X + e.VX*dt
	}
	if g.IsSolidOrOutOfBounds(floor(e.X), floor(ny)) {
		e.VY = -e.VY
		ny = e.Y + e.VY*dt
	}
	e.X, e.Y = nx, ny
}

// Cell is the floor-rounded, bounds-clamped cell under the enemy.
func (e Enemy) Cell(g *Grid) (int, int) {
	return g.Clamp(floor(e.X), floor(e.Y))
}

func (e Enemy) OnTrail(g *Grid) bool {
	c, r := e.Cell(g)
	return g.Matrix[c][r] == Trail
}

func floor(v float64) int {
	return int(math.Floor(v))
}

func sign(v int) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
