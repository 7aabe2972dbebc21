package model

import "fmt"

type Cell uint8

const (
	Empty Cell = iota
	Solid
	Trail
)

func (c Cell) Name() string {
	switch c {
	case Empty:
		return "EMPTY"
	case Solid:
		return "SOLID"
	case Trail:
		return "TRAIL"
	default:
		return fmt.Sprintf("n/a:%d", c)
	}
}

// Grid is the bordered playfield. Matrix is indexed [col][row].
// Border cells are always Solid.
type Grid struct {
	Cols, Rows int
	Matrix     [][]Cell
}

func NewGrid(cols, rows int) *Grid {
	if cols < 3 || rows < 3 {
		panic(fmt.Sprintf("grid %dx%d too small, need at least 3x3", cols, rows))
	}
	matrix := make([][]Cell, 0, cols)
	for c := 0; c < cols; c++ {
		matrix = append(matrix, make([]Cell, rows))
	}
	g := &Grid{Cols: cols, Rows: rows, Matrix: matrix}
	g.Reset()
	return g
}

// Reset empties the field and rebuilds the solid border.
func (g *Grid) Reset() {
	for c := 0; c < g.Cols; c++ {
		for r := 0; r < g.Rows; r++ {
			g.Matrix[c][r] = Empty
		}
	}
	for c := 0; c < g.Cols; c++ {
		g.Matrix[c][0] = Solid
		g.Matrix[c][g.Rows-1] = Solid
	}
	for r := 0; r < g.Rows; r++ {
		g.Matrix[0][r] = Solid
		g.Matrix[g.Cols-1][r] = Solid
	}
}

func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Cols && row < g.Rows
}

func (g *Grid) IsBorder(col, row int) bool {
	return col == 0 || row == 0 || col == g.Cols-1 || row == g.Rows-1
}

func (g *Grid) Clamp(col, row int) (int, int) {
	return clampInt(col, 0, g.Cols-1), clampInt(row, 0, g.Rows-1)
}

// At reads the cell at the clamped coordinate.
func (g *Grid) At(col, row int) Cell {
	col, row = g.Clamp(col, row)
	return g.Matrix[col][row]
}

// Set writes a cell. Out of bounds writes and writes that would open the
// border are ignored.
func (g *Grid) Set(col, row int, cell Cell) {
	if !g.InBounds(col, row) {
		return
	}
	if g.IsBorder(col, row) && cell != Solid {
		return
	}
	g.Matrix[col][row] = cell
}

// IsSolidOrOutOfBounds is the wall test shared by enemy bouncing and
// the claim flood fill.
func (g *Grid) IsSolidOrOutOfBounds(col, row int) bool {
	if !g.InBounds(col, row) {
		return true
	}
	return g.Matrix[col][row] == Solid
}

// ClaimedPercent is the share of non-border cells that are Solid, 0..100.
func (g *Grid) ClaimedPercent() float64 {
	total := (g.Cols - 2) * (g.Rows - 2)
	if total <= 0 {
		return 0
	}
	solid := 0
	for c := 1; c < g.Cols-1; c++ {
		for r := 1; r < g.Rows-1; r++ {
			if g.Matrix[c][r] == Solid {
				solid++
			}
		}
	}
	return float64(solid) * 100 / float64(total)
}

func (g *Grid) Count(cell Cell) int {
	n := 0
	for c := 0; c < g.Cols; c++ {
		for r := 0; r < g.Rows; r++ {
			if g.Matrix[c][r] == cell {
				n++
			}
		}
	}
	return n
}

// ClearTrail turns every Trail cell back into Empty and returns how many
// were cleared.
func (g *Grid) ClearTrail() int {
	return g.replace(Trail, Empty)
}

// SolidifyTrail turns every Trail cell into Solid.
func (g *Grid) SolidifyTrail() int {
	return g.replace(Trail, Solid)
}

func (g *Grid) replace(from, to Cell) int {
	n := 0
	for c := 0; c < g.Cols; c++ {
		for r := 0; r < g.Rows; r++ {
			if g.Matrix[c][r] == from {
				g.Matrix[c][r] = to
				n++
			}
		}
	}
	return n
}

func (g *Grid) Copy() [][]Cell {
	out := make([][]Cell, g.Cols)
	for c := 0; c < g.Cols; c++ {
		out[c] = make([]Cell, g.Rows)
		copy(out[c], g.Matrix[c])
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
