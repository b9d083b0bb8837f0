package assets

import (
	"math"
	"math/rand"

	"github.com/automoto/knockout/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes sound effects once and caches the PCM bytes
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id config.SoundID) bool {
	if _, ok := l.sfxCache[id]; ok {
		return true
	}
	tone, ok := config.Sound.Tones[id]
	if !ok {
		return false
	}
	l.sfxCache[id] = Synthesize(l.context.SampleRate(), tone, int64(id))
	return true
}

// LoadSFX returns a fresh player for the sound effect.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, bool) {
	if !l.PreloadSFX(id) {
		return nil, false
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), true
}

// Synthesize renders tone as 16-bit little-endian stereo PCM. The same seed
// always produces the same samples.
func Synthesize(sampleRate int, tone config.ToneConfig, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	n := int(tone.Duration * float64(sampleRate))
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		progress := float64(i) / float64(n)
		hz := tone.StartHz + (tone.EndHz-tone.StartHz)*progress
		phase += 2 * math.Pi * hz / float64(sampleRate)

		s := (1-tone.Noise)*math.Sin(phase) + tone.Noise*(rng.Float64()*2-1)
		s *= math.Exp(-tone.Decay * t)
		// short fade out so the tail does not click
		if rem := n - i; rem < 64 {
			s *= float64(rem) / 64
		}

		v := int16(math.Max(-1, math.Min(1, s)) * math.MaxInt16)
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(v >> 8)
	}
	return buf
}
