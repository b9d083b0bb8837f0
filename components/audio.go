package components

import (
	cfg "github.com/automoto/knockout/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during an update (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
