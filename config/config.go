package config

import "image/color"

// PeriodConfig holds seconds-per-frame values for each clip a fighter plays.
type PeriodConfig struct {
	Idle    float64 `yaml:"idle"`
	Block   float64 `yaml:"block"`
	Dodge   float64 `yaml:"dodge"`
	Punch   float64 `yaml:"punch"`   // played on entering a punch (the warning clip for telegraphed punches)
	Strike  float64 `yaml:"strike"`  // played once the punch connects phase starts
	Hit     float64 `yaml:"hit"`     // on the frame the hit lands
	HitHold float64 `yaml:"hitHold"` // while hit-stun counts down
	Death   float64 `yaml:"death"`
}

// ProfileConfig parameterizes the combatant state machine for one role.
// Zero values switch a capability off: a zero BlockDuration means blocking
// lasts as long as the input is held, a zero PunchWarning means punches strike
// immediately, a zero HitCap lets every live strike frame land and a zero
// DeathThreshold means the fighter cannot be knocked out.
type ProfileConfig struct {
	Key string `yaml:"-"` // character key, selects the clip set and required clips

	// Dodge
	DodgeDuration float64 `yaml:"dodgeDuration"`
	DodgeDistance float64 `yaml:"dodgeDistance"`

	// Punch
	PunchDuration float64 `yaml:"punchDuration"`
	PunchWarning  float64 `yaml:"punchWarning"`
	PunchLateral  float64 `yaml:"punchLateral"`  // lateral lunge amplitude in pixels
	PunchVertical float64 `yaml:"punchVertical"` // vertical lunge amplitude in pixels
	// ActiveWindow is the fraction of the strike phase, counted from its start,
	// during which this fighter's punch can land.
	ActiveWindow float64 `yaml:"activeWindow"`

	// Defense
	BlockDuration    float64 `yaml:"blockDuration"`
	GuardWhileActing bool    `yaml:"guardWhileActing"` // an action in progress makes the fighter unhittable

	// Idle
	IdleWait float64 `yaml:"idleWait"`

	// Taking hits
	HitStunDuration float64 `yaml:"hitStunDuration"`
	HitRecoil       float64 `yaml:"hitRecoil"` // action timer forced on hit (counter punch), 0 cancels the action
	HitCap          int     `yaml:"hitCap"`    // hits one opposing punch can land, 0 for no limit
	DeathThreshold  int     `yaml:"deathThreshold"`

	Periods PeriodConfig     `yaml:"periods"`
	Clips   map[StateID]Clip `yaml:"clips"`
}

// Telegraphs reports whether punches are preceded by a warning phase.
func (p *ProfileConfig) Telegraphs() bool {
	return p.PunchWarning > 0
}

// HoldsBlock reports whether blocking is driven by a held input instead of a timer.
func (p *ProfileConfig) HoldsBlock() bool {
	return p.BlockDuration <= 0
}

// ActorConfig holds placement and rendering values for a fighter
type ActorConfig struct {
	OriginX, OriginY float64
	FrameWidth       int
	FrameHeight      int
	Scale            float64
	Tint             color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool  // Start with the debug overlay visible
	Trace   bool  // Log animator and state transitions
	Seed    int64 // Seed for the enemy decision source
}

// FlashConfig controls the screen flash shown when the player is hit
type FlashConfig struct {
	Color    color.RGBA
	Duration float32 // seconds
}

// Global configuration instances
var C *Config
var Player ProfileConfig
var Enemy ProfileConfig
var PlayerActor ActorConfig
var EnemyActor ActorConfig
var Debug DebugConfig
var Flash FlashConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Ring         = color.RGBA{R: 40, G: 44, B: 70, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	t := DefaultTuning()
	Player = t.Player
	Enemy = t.Enemy

	PlayerActor = ActorConfig{
		OriginX:     float64(C.Width) / 2,
		OriginY:     300,
		FrameWidth:  24,
		FrameHeight: 44,
		Scale:       3,
		Tint:        LightBlue,
	}

	EnemyActor = ActorConfig{
		OriginX:     float64(C.Width) / 2,
		OriginY:     170,
		FrameWidth:  32,
		FrameHeight: 44,
		Scale:       3,
		Tint:        LightRed,
	}

	Debug = DebugConfig{
		Overlay: false,
		Trace:   false,
		Seed:    1,
	}

	Flash = FlashConfig{
		Color:    color.RGBA{R: 255, G: 0, B: 0, A: 90},
		Duration: 0.2,
	}
}

func defaultPlayer() ProfileConfig {
	return ProfileConfig{
		Key:              "player",
		DodgeDuration:    0.75,
		DodgeDistance:    75.0,
		PunchDuration:    0.5,
		PunchWarning:     0,
		PunchLateral:     -5.0,
		PunchVertical:    -15.0,
		ActiveWindow:     0.25,
		BlockDuration:    0,
		GuardWhileActing: true,
		IdleWait:         0,

		HitStunDuration: 0.1,
		HitRecoil:       0,
		HitCap:          0,
		DeathThreshold:  15,

		Periods: PeriodConfig{
			Idle:    0.3,
			Block:   0.1,
			Dodge:   0.1,
			Punch:   0.03,
			Strike:  0.03,
			Hit:     0.1,
			HitHold: 0.3,
			Death:   0.1,
		},
		Clips: copyClips(CharacterClips["player"]),
	}
}

func defaultEnemy() ProfileConfig {
	return ProfileConfig{
		Key:              "enemy",
		PunchDuration:    0.5,
		PunchWarning:     1.0,
		PunchLateral:     5.0,
		PunchVertical:    -60.0,
		ActiveWindow:     1.0,
		BlockDuration:    0.75,
		GuardWhileActing: false,
		IdleWait:         1.5,

		HitStunDuration: 0.05,
		HitRecoil:       1.0 + 0.5,
		HitCap:          2,
		DeathThreshold:  0,

		Periods: PeriodConfig{
			Idle:    0.3,
			Block:   0.1,
			Punch:   0.2,
			Strike:  0.3,
			Hit:     0.1,
			HitHold: 0.3,
		},
		Clips: copyClips(CharacterClips["enemy"]),
	}
}

func copyClips(src map[StateID]Clip) map[StateID]Clip {
	dst := make(map[StateID]Clip, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
