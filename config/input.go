package config

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionBlock
	ActionDodgeLeft
	ActionDodgeRight
	ActionPunchLeft
	ActionPunchRight
	ActionPause
	ActionDebug
	ActionFullscreen
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds input tuning shared by every input device
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}
}
