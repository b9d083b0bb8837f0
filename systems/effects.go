package systems

import (
	"github.com/automoto/knockout/components"
	cfg "github.com/automoto/knockout/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the screen flash tween.
func UpdateEffects(e *ecs.ECS) {
	flash := GetOrCreateScreenFlash(e)
	if flash.Tween == nil {
		return
	}
	alpha, done := flash.Tween.Update(float32(GetOrCreateClock(e).Delta))
	flash.Alpha = alpha
	if done {
		flash.Tween = nil
		flash.Alpha = 0
	}
}

// TriggerScreenFlash restarts the flash at full strength.
func TriggerScreenFlash(flash *components.ScreenFlashData) {
	flash.Tween = gween.New(1, 0, cfg.Flash.Duration, ease.OutQuad)
	flash.Alpha = 1
}
