package engine

import "github.com/lixenwraith/shooter-snake/core"

// Phase is the round state machine position
type Phase uint8

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhaseOver
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase waits for a start command
func (p Phase) Terminal() bool {
	return p != PhaseRunning
}

// Intent is the input resolved for one tick
// Direction is already filtered for reversal by the input layer
type Intent struct {
	Direction core.Direction
	Fire      bool
	Restart   bool
}
