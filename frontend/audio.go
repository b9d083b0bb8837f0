package frontend

import (
	"sync"

	"github.com/automoto/knockout/assets"
	cfg "github.com/automoto/knockout/config"
	"github.com/automoto/knockout/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes every sound effect up front.
func PreloadAllSFX() {
	initGlobalAudio()
	for id := range cfg.Sound.Tones {
		globalAudioLoader.PreloadSFX(id)
	}
}

// SetSFXVolume sets the effect volume, 0 mutes.
func SetSFXVolume(v float64) {
	globalSFXVolume = v
}

// UpdateAudio plays the sound effects queued this frame.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()
	for _, id := range systems.DrainSFX(e) {
		playSFX(id)
	}
}

func playSFX(id cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	player, ok := globalAudioLoader.LoadSFX(id)
	if !ok {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}
