package systems

import (
	"github.com/automoto/knockout/components"
	cfg "github.com/automoto/knockout/config"
	"github.com/yohamta/donburi/ecs"
)

// PlaySFX queues a sound effect for the audio system to play this frame.
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	a := GetOrCreateAudio(e)
	a.PendingSFX = append(a.PendingSFX, id)
}

// DrainSFX returns the queued sound effects and clears the queue.
func DrainSFX(e *ecs.ECS) []cfg.SoundID {
	a := GetOrCreateAudio(e)
	out := append([]cfg.SoundID(nil), a.PendingSFX...)
	a.PendingSFX = a.PendingSFX[:0]
	return out
}

func soundFor(out Outcome) cfg.SoundID {
	switch {
	case out.Died:
		return cfg.SoundKnockout
	case out.Hit:
		return cfg.SoundHit
	case !out.Decided:
		return cfg.SoundNone
	}
	switch out.Decision {
	case components.DecidePunchLeft, components.DecidePunchRight:
		return cfg.SoundPunch
	case components.DecideDodgeLeft, components.DecideDodgeRight:
		return cfg.SoundDodge
	}
	return cfg.SoundNone
}
