package model

import "fmt"

type Direction struct {
	DX, DY int
}

var (
	None  = Direction{0, 0}
	Left  = Direction{-1, 0}
	Right = Direction{1, 0}
	Up    = Direction{0, -1}
	Down  = Direction{0, 1}
)

// Directions indexes the cardinal moves the way the wire format does.
var Directions = [5]Direction{None, Left, Right, Up, Down}

func (d Direction) Index() int {
	for i, o := range Directions {
		if o == d {
			return i
		}
	}
	return 0
}

func DirectionFromIndex(i int) Direction {
	if i < 0 || i >= len(Directions) {
		return None
	}
	return Directions[i]
}

type PlayerState int

const (
	OnBorder PlayerState = iota + 1
	Drawing
)

func (s PlayerState) Name() string {
	switch s {
	case OnBorder:
		return "ON_BORDER"
	case Drawing:
		return "DRAWING"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}

type StepResult int

const (
	StepIdle StepResult = iota
	StepMoved
	StepStarted
	StepClosed
	StepCrossed
)

func (r StepResult) Name() string {
	switch r {
	case StepIdle:
		return "IDLE"
	case StepMoved:
		return "MOVED"
	case StepStarted:
		return "STARTED"
	case StepClosed:
		return "CLOSED"
	case StepCrossed:
		return "CROSSED"
	default:
		return fmt.Sprintf("n/a:%d", r)
	}
}

type Player struct {
	Col, Row int
	Dir      Direction
	State    PlayerState
	acc      float64
}

func NewPlayer(col, row int, dir Direction) *Player {
	return &Player{Col: col, Row: row, Dir: dir, State: OnBorder}
}

func (p *Player) Drawing() bool {
	return p.State == Drawing
}

// Respawn puts the player back on solid ground and drops any pending
// fractional step.
func (p *Player) Respawn(col, row int, dir Direction) {
	p.Col, p.Row = col, row
	p.Dir = dir
	p.State = OnBorder
	p.acc = 0
}

func (p *Player) Accumulate(dt float64) {
	p.acc += dt
}

// TakeStep consumes one whole interval from the accumulator if available.
func (p *Player) TakeStep(interval float64) bool {
	if interval <= 0 || p.acc < interval {
		return false
	}
	p.acc -= interval
	return true
}

// Step moves the player one cell along Dir. On StepClosed the trail is
// complete, head included, and the caller must run Claim. On StepCrossed
// the player has not moved and the caller must take a life.
func (p *Player) Step(g *Grid) StepResult {
	if p.Dir == None {
		return StepIdle
	}
	nc, nr := g.Clamp(p.Col+p.Dir.DX, p.Row+p.Dir.DY)
	if nc == p.Col && nr == p.Row {
		return StepIdle
	}
	next := g.Matrix[nc][nr]

	if p.State == Drawing {
		switch next {
		case Trail:
			return StepCrossed
		case Solid:
			g.Set(p.Col, p.Row, Trail)
			p.Col, p.Row = nc, nr
			p.State = OnBorder
			return StepClosed
		default:
			g.Set(p.Col, p.Row, Trail)
			p.Col, p.Row = nc, nr
			return StepMoved
		}
	}

	p.Col, p.Row = nc, nr
	if next == Solid {
		return StepMoved
	}
	// the cell we left is solid ground and stays that way
	p.State = Drawing
	return StepStarted
}
