package frontend

import (
	"log"

	cfg "github.com/automoto/knockout/config"
	"github.com/automoto/knockout/persistence"
	"github.com/automoto/knockout/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// current mirrors what is on disk so toggles can be saved back.
var current = persistence.SavedSettings{
	SFXVolume:       cfg.Audio.DefaultSFXVol,
	ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
}

// ApplySavedSettingsGlobal applies settings before any scene exists.
func ApplySavedSettingsGlobal(saved *persistence.SavedSettings) {
	if saved == nil {
		applyWindow()
		return
	}
	current = *saved

	SetSFXVolume(saved.SFXVolume)
	if saved.Muted {
		SetSFXVolume(0)
	}
	if saved.ShowDebug {
		cfg.Debug.Overlay = true
	}
	applyWindow()
}

func applyWindow() {
	ebiten.SetFullscreen(current.Fullscreen)
	if current.Fullscreen {
		return
	}
	if i := current.ResolutionIndex; i >= 0 && i < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[i]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// UpdateSettings handles the fullscreen toggle and remembers the debug
// overlay choice. It runs even while paused.
func UpdateSettings(e *ecs.ECS) {
	input := systems.GetOrCreateInput(e)
	debug := systems.GetOrCreateSettings(e).Debug

	changed := false
	if input.Action(cfg.ActionFullscreen).JustPressed {
		current.Fullscreen = !ebiten.IsFullscreen()
		applyWindow()
		changed = true
	}
	if debug != current.ShowDebug {
		current.ShowDebug = debug
		changed = true
	}

	if changed {
		if err := persistence.SaveSettings(&current); err != nil {
			log.Printf("Warning: Could not save settings: %v", err)
		}
	}
}
