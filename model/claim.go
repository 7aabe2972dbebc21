package model

// Reachable floods from every enemy cell over cells that are neither
// Solid nor Trail. An enemy's own cell always seeds, even when the closing
// step has just turned it into Trail. The result is indexed [col][row].
func Reachable(g *Grid, enemies []Enemy) [][]bool {
	reached := make([][]bool, g.Cols)
	for c := range reached {
		reached[c] = make([]bool, g.Rows)
	}
	queue := make([]int, 0, g.Cols*g.Rows)

	seed := func(c, r int) {
		if reached[c][r] {
			return
		}
		reached[c][r] = true
		queue = append(queue, c*g.Rows+r)
	}
	enqueue := func(c, r int) {
		if !g.InBounds(c, r) {
			return
		}
		if cell := g.Matrix[c][r]; cell == Solid || cell == Trail {
			return
		}
		seed(c, r)
	}

	for _, e := range enemies {
		seed(e.Cell(g))
	}
	for head := 0; head < len(queue); head++ {
		c, r := queue[head]/g.Rows, queue[head]%g.Rows
		enqueue(c+1, r)
		enqueue(c-1, r)
		enqueue(c, r+1)
		enqueue(c, r-1)
	}
	return reached
}

// Claim closes the current trail: Empty cells no enemy can reach become
// Solid, the trail itself becomes Solid. It returns the number of cells
// that went from Empty to Solid.
func Claim(g *Grid, enemies []Enemy) int {
	before := g.Count(Empty)
	reached := Reachable(g, enemies)
	for c := 0; c < g.Cols; c++ {
		for r := 0; r < g.Rows; r++ {
			if g.Matrix[c][r] == Empty && !reached[c][r] {
				g.Matrix[c][r] = Solid
			}
		}
	}
	g.SolidifyTrail()
	claimed := before - g.Count(Empty)
	if claimed < 0 {
		return 0
	}
	return claimed
}
