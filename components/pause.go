package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()

// SettingsData stores runtime toggles
type SettingsData struct {
	Debug bool // Show the debug overlay
}

var Settings = donburi.NewComponentType[SettingsData]()
