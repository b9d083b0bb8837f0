package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPunch
	SoundDodge
	SoundHit
	SoundKnockout
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneConfig describes a synthesized sound effect: a sine sweep mixed with
// noise under an exponential decay.
type ToneConfig struct {
	StartHz  float64
	EndHz    float64
	Noise    float64 // 0 pure tone, 1 pure noise
	Decay    float64 // amplitude falls by e every 1/Decay seconds
	Duration float64 // seconds
}

// SoundConfig maps sound IDs to how they are synthesized
type SoundConfig struct {
	Tones             map[SoundID]ToneConfig
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundPunch:    {StartHz: 420, EndHz: 180, Noise: 0.6, Decay: 30, Duration: 0.12},
			SoundDodge:    {StartHz: 900, EndHz: 500, Noise: 0.9, Decay: 18, Duration: 0.18},
			SoundHit:      {StartHz: 140, EndHz: 60, Noise: 0.4, Decay: 14, Duration: 0.25},
			SoundKnockout: {StartHz: 220, EndHz: 40, Noise: 0.2, Decay: 3, Duration: 1.2},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit: 1.5,
		},
	}
}
