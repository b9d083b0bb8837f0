package components

import "github.com/yohamta/donburi"

// Decision is the action a combatant picks when all of its timers have run out.
type Decision int

const (
	DecideIdle Decision = iota
	DecideBlock
	DecideDodgeLeft
	DecideDodgeRight
	DecidePunchLeft
	DecidePunchRight
)

func (d Decision) String() string {
	switch d {
	case DecideBlock:
		return "block"
	case DecideDodgeLeft:
		return "dodge-left"
	case DecideDodgeRight:
		return "dodge-right"
	case DecidePunchLeft:
		return "punch-left"
	case DecidePunchRight:
		return "punch-right"
	}
	return "idle"
}

// Decider chooses the next action at a decision point. The player's decider
// reads input; the enemy's rolls dice and ignores it.
type Decider interface {
	Decide(input *InputData) Decision
}

type BrainData struct {
	Decider Decider
}

var Brain = donburi.NewComponentType[BrainData]()
