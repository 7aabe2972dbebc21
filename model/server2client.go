package model

import "fmt"

type Phase int

const (
	Playing Phase = iota + 1
	Paused
	LevelCleared
	GameOver
)

func (p Phase) Name() string {
	switch p {
	case Playing:
		return "PLAYING"
	case Paused:
		return "PAUSED"
	case LevelCleared:
		return "LEVEL_CLEARED"
	case GameOver:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("n/a:%d", p)
	}
}

// Snapshot is the read-only view handed to renderers. It never shares
// memory with the live grid.
type Snapshot struct {
	Frame   uint64
	Cols    int
	Rows    int
	Cells   [][]Cell
	Player  PlayerView
	Enemies []EnemyView
	Lives   int
	Score   int
	Level   int
	Claimed float64
	Target  float64
	Phase   Phase
}

type PlayerView struct {
	Col, Row int
	Drawing  bool
}

type EnemyView struct {
	X, Y float64
}

// At reads a snapshot cell, treating out of bounds as Solid.
func (s *Snapshot) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= len(s.Cells) || row >= len(s.Cells[col]) {
		return Solid
	}
	return s.Cells[col][row]
}
