package systems

import (
	cfg "github.com/automoto/knockout/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause and the debug overlay.
// This system should run AFTER input is polled but BEFORE the fight systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	settings := GetOrCreateSettings(ecs)
	input := GetOrCreateInput(ecs)

	if input.Action(cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
	if input.Action(cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}
