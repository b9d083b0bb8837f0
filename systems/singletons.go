package systems

import (
	"github.com/automoto/knockout/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getOrCreate[T any](e *ecs.ECS, c *donburi.ComponentType[T]) *T {
	entry, ok := c.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(c))
	}
	return c.Get(entry)
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	return getOrCreate(e, components.Clock)
}

// GetOrCreateInput returns the singleton Input component, creating if needed.
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	return getOrCreate(e, components.Input)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	return getOrCreate(e, components.Pause)
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	return getOrCreate(e, components.Settings)
}

// GetOrCreateScreenFlash returns the singleton ScreenFlash component, creating if needed.
func GetOrCreateScreenFlash(e *ecs.ECS) *components.ScreenFlashData {
	return getOrCreate(e, components.ScreenFlash)
}

// GetOrCreateAudio returns the singleton Audio component, creating if needed.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	return getOrCreate(e, components.Audio)
}
