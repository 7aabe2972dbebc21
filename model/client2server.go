package model

import "fmt"

type Intent int

const (
	IntentDirection Intent = iota + 1
	IntentTogglePause
	IntentRestart
	IntentAdvance
	// IntentContinue restarts after game over or advances after a cleared
	// level, whichever applies.
	IntentContinue
)

func (i Intent) Name() string {
	switch i {
	case IntentDirection:
		return "DIRECTION"
	case IntentTogglePause:
		return "TOGGLE_PAUSE"
	case IntentRestart:
		return "RESTART"
	case IntentAdvance:
		return "ADVANCE"
	case IntentContinue:
		return "CONTINUE"
	default:
		return fmt.Sprintf("n/a:%d", i)
	}
}

// ClientMessage carries one input intent. Direction is an index into
// Directions and only matters for IntentDirection.
type ClientMessage struct {
	Intent    Intent
	Direction int
}

func DirectionMessage(d Direction) ClientMessage {
	return ClientMessage{Intent: IntentDirection, Direction: d.Index()}
}
