package systems

import (
	"math/rand"

	"github.com/automoto/knockout/components"
	cfg "github.com/automoto/knockout/config"
)

// InputDecider turns the player's buttons into a decision. A held block wins
// over everything; the other actions fire only on the frame they are pressed.
type InputDecider struct{}

func (InputDecider) Decide(input *components.InputData) components.Decision {
	if input == nil {
		return components.DecideIdle
	}
	switch {
	case input.Action(cfg.ActionBlock).Pressed:
		return components.DecideBlock
	case input.Action(cfg.ActionDodgeLeft).JustPressed:
		return components.DecideDodgeLeft
	case input.Action(cfg.ActionDodgeRight).JustPressed:
		return components.DecideDodgeRight
	case input.Action(cfg.ActionPunchLeft).JustPressed:
		return components.DecidePunchLeft
	case input.Action(cfg.ActionPunchRight).JustPressed:
		return components.DecidePunchRight
	}
	return components.DecideIdle
}

// DecisionSource yields integers in [0, n). *rand.Rand satisfies it.
type DecisionSource interface {
	Intn(n int) int
}

// RandomDecider rolls a six-sided die at every decision point: 1 blocks,
// 2 punches left, 3 punches right and anything else waits.
type RandomDecider struct {
	Source DecisionSource
}

// NewRandomDecider returns a decider backed by a seeded generator.
func NewRandomDecider(seed int64) *RandomDecider {
	return &RandomDecider{Source: rand.New(rand.NewSource(seed))}
}

func (d *RandomDecider) Decide(*components.InputData) components.Decision {
	switch d.Source.Intn(6) {
	case 1:
		return components.DecideBlock
	case 2:
		return components.DecidePunchLeft
	case 3:
		return components.DecidePunchRight
	}
	return components.DecideIdle
}
