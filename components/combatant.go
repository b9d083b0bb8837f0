package components

import (
	cfg "github.com/automoto/knockout/config"
	"github.com/yohamta/donburi"
)

// Role says which side of the fight a combatant is on.
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
)

func (r Role) String() string {
	if r == RolePlayer {
		return "player"
	}
	return "enemy"
}

// Opponent returns the other role.
func (r Role) Opponent() Role {
	if r == RolePlayer {
		return RoleEnemy
	}
	return RolePlayer
}

// Direction is the side an action resolves toward.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// ActionKind is what the action timer is counting down.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPunch
	ActionDodge
)

// CombatantData holds a fighter's timers and hit bookkeeping. Only one of
// ActionTimer, BlockTimer and WaitTimer is positive at a time; HitStunTimer
// overrides all of them while it runs.
type CombatantData struct {
	Role    Role
	Profile *cfg.ProfileConfig
	Origin  Vector

	ActionTimer  float64
	Action       ActionKind
	BlockTimer   float64
	WaitTimer    float64
	HitStunTimer float64

	Direction Direction
	Blocking  bool

	HitsInWindow int
	HitsTotal    int
	Dead         bool

	State cfg.StateID // what the fighter is doing, for display
}

// Idle reports whether every timer has run out, which is when a new action is chosen.
func (c *CombatantData) Idle() bool {
	return c.ActionTimer <= 0 && c.BlockTimer <= 0 && c.WaitTimer <= 0 && c.HitStunTimer <= 0
}

var Combatant = donburi.NewComponentType[CombatantData]()
