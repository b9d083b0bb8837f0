package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrMissingClip is returned when a profile lacks a clip its role needs.
var ErrMissingClip = errors.New("missing animation clip")

// Tuning is the full set of fighter parameters. It can be overridden from a
// YAML file; fields left out of the file keep their defaults.
//
// Example:
//
//	player:
//	  dodgeDuration: 0.6
//	  clips:
//	    idle: {first: 0, last: 3}
//	enemy:
//	  punchWarning: 0.8
type Tuning struct {
	Player ProfileConfig `yaml:"player"`
	Enemy  ProfileConfig `yaml:"enemy"`
}

// DefaultTuning returns a fresh copy of the built-in tuning.
func DefaultTuning() Tuning {
	return Tuning{
		Player: defaultPlayer(),
		Enemy:  defaultEnemy(),
	}
}

// ParseTuning decodes YAML over the built-in defaults and validates the result.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads and parses a tuning file.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning: %w", err)
	}
	return ParseTuning(data)
}

// Apply installs the tuning as the global fighter profiles.
func (t Tuning) Apply() {
	Player = t.Player
	Enemy = t.Enemy
}

// Validate checks both profiles.
func (t Tuning) Validate() error {
	if err := t.Player.Validate(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if err := t.Enemy.Validate(); err != nil {
		return fmt.Errorf("enemy: %w", err)
	}
	return nil
}

// Validate checks that every clip the role needs exists and that the timing
// values can drive the state machine.
func (p *ProfileConfig) Validate() error {
	for _, id := range RequiredClips[p.Key] {
		c, ok := p.Clips[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingClip, id)
		}
		if c.First < 0 || c.Last < c.First {
			return fmt.Errorf("clip %s has invalid range %d..%d", id, c.First, c.Last)
		}
	}

	if p.PunchDuration <= 0 {
		return fmt.Errorf("punchDuration must be positive, got %v", p.PunchDuration)
	}
	if p.ActiveWindow <= 0 || p.ActiveWindow > 1 {
		return fmt.Errorf("activeWindow must be in (0, 1], got %v", p.ActiveWindow)
	}
	if p.HitCap < 0 {
		return fmt.Errorf("hitCap must not be negative, got %d", p.HitCap)
	}
	if _, ok := p.Clips[Dodge]; ok && p.DodgeDuration <= 0 {
		return fmt.Errorf("dodgeDuration must be positive, got %v", p.DodgeDuration)
	}
	if p.PunchWarning < 0 || p.BlockDuration < 0 || p.IdleWait < 0 || p.HitStunDuration < 0 || p.HitRecoil < 0 {
		return errors.New("durations must not be negative")
	}
	return nil
}

// UnmarshalYAML lets clip maps be keyed by state name.
func (s *StateID) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	id, ok := NameToState[name]
	if !ok {
		return fmt.Errorf("unknown state %q", name)
	}
	*s = id
	return nil
}

// MarshalYAML writes a state by name.
func (s StateID) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}
