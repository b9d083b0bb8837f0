package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenFlashData tracks the full-screen tint shown when the player takes a hit.
type ScreenFlashData struct {
	Tween *gween.Tween // alpha from 1 to 0; nil when idle
	Alpha float32
}

var ScreenFlash = donburi.NewComponentType[ScreenFlashData]()
