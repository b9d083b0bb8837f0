package systems

import (
	"math"

	"github.com/automoto/knockout/components"
	cfg "github.com/automoto/knockout/config"
	"github.com/tanema/gween/ease"
)

// Snapshot is the part of a combatant its opponent is allowed to read. All
// snapshots for a frame are taken before any combatant is stepped, so the
// order in which fighters update never changes the outcome.
type Snapshot struct {
	Role     components.Role
	Striking bool // a punch is past its warning
	Active   bool // the punch can land this frame
}

// TakeSnapshot captures c's attack state.
func TakeSnapshot(c *components.CombatantData) Snapshot {
	s := Snapshot{Role: c.Role}
	if c.Dead || c.Action != components.ActionPunch || c.ActionTimer <= 0 {
		return s
	}
	p := c.Profile
	if p.Telegraphs() && c.ActionTimer >= p.PunchDuration {
		return s
	}
	s.Striking = true
	s.Active = p.PunchDuration-c.ActionTimer < p.PunchDuration*p.ActiveWindow
	return s
}

// Fighter bundles the components one step mutates.
type Fighter struct {
	Combatant *components.CombatantData
	Animation *components.AnimationData
	Sprite    *components.SpriteData
	Decider   components.Decider
}

// Outcome reports what a step did.
type Outcome struct {
	From, To cfg.StateID
	Hit      bool // a hit landed on this fighter
	Died     bool // this fighter was knocked out on this step
	Decided  bool
	Decision components.Decision
}

// Step runs one frame of the combatant state machine. The checks run in a
// fixed order and the first one that applies owns the frame: knock-out, an
// incoming hit, then the decision point or whichever timer is running.
func Step(f Fighter, input *components.InputData, opp Snapshot, dt float64) Outcome {
	c, anim, sprite := f.Combatant, f.Animation, f.Sprite
	p := c.Profile
	out := Outcome{From: c.State}

	if c.Dead || (p.DeathThreshold > 0 && c.HitsTotal > p.DeathThreshold) {
		if !c.Dead {
			knockOut(c, anim)
			out.Died = true
		}
		commitFrame(anim, sprite, dt)
		out.To = c.State
		return out
	}

	if opp.Active && !capped(c) && !guarded(c) {
		takeHit(c, anim)
		commitFrame(anim, sprite, dt)
		out.Hit = true
		out.To = c.State
		return out
	}

	switch {
	case c.Idle():
		d := components.DecideIdle
		if f.Decider != nil {
			d = f.Decider.Decide(input)
		}
		decide(c, anim, sprite, d)
		out.Decided = true
		out.Decision = d
	case c.HitStunTimer > 0:
		anim.SetAnimation(cfg.Hit, p.Periods.HitHold, false)
		c.HitStunTimer = countdown(c.HitStunTimer, dt)
		c.State = cfg.Hit
	case c.BlockTimer > 0:
		c.HitsInWindow = 0
		c.BlockTimer = countdown(c.BlockTimer, dt)
		c.State = cfg.Block
	case c.ActionTimer > 0:
		stepAction(c, anim, sprite, dt)
	case c.WaitTimer > 0:
		c.HitsInWindow = 0
		c.HitStunTimer = 0
		c.WaitTimer = countdown(c.WaitTimer, dt)
		c.State = cfg.Idle
	}

	commitFrame(anim, sprite, dt)
	out.To = c.State
	return out
}

func capped(c *components.CombatantData) bool {
	return c.Profile.HitCap > 0 && c.HitsInWindow >= c.Profile.HitCap
}

func guarded(c *components.CombatantData) bool {
	if c.Blocking || c.BlockTimer > 0 {
		return true
	}
	return c.Profile.GuardWhileActing && c.ActionTimer > 0
}

func knockOut(c *components.CombatantData, anim *components.AnimationData) {
	c.Dead = true
	c.ActionTimer, c.BlockTimer, c.WaitTimer, c.HitStunTimer = 0, 0, 0, 0
	c.Action = components.ActionNone
	c.Blocking = false
	anim.SetAnimation(cfg.Death, c.Profile.Periods.Death, false)
	c.State = cfg.Death
}

// takeHit puts c into hit-stun. A fighter with HitRecoil answers the hit
// with a telegraphed counter punch once the stun wears off.
func takeHit(c *components.CombatantData, anim *components.AnimationData) {
	p := c.Profile
	anim.SetAnimation(cfg.Hit, p.Periods.Hit, false)
	c.HitStunTimer = p.HitStunDuration
	c.ActionTimer = p.HitRecoil
	c.Action = components.ActionNone
	if p.HitRecoil > 0 {
		c.Action = components.ActionPunch
	}
	c.WaitTimer = 0
	c.HitsInWindow++
	c.HitsTotal++
	c.State = cfg.Hit
}

func decide(c *components.CombatantData, anim *components.AnimationData, sprite *components.SpriteData, d components.Decision) {
	p := c.Profile
	sprite.Position = c.Origin
	c.Blocking = false

	switch d {
	case components.DecideBlock:
		anim.SetAnimation(cfg.Block, p.Periods.Block, false)
		if p.HoldsBlock() {
			c.Blocking = true
		} else {
			c.BlockTimer = p.BlockDuration
		}
		c.State = cfg.Block

	case components.DecideDodgeLeft, components.DecideDodgeRight:
		sprite.FlipX = d == components.DecideDodgeRight
		c.Direction = directionOf(d)
		c.Action = components.ActionDodge
		c.ActionTimer = p.DodgeDuration
		anim.SetAnimation(cfg.Dodge, p.Periods.Dodge, false)
		c.State = cfg.Dodge

	case components.DecidePunchLeft, components.DecidePunchRight:
		sprite.FlipX = d == components.DecidePunchRight
		c.Direction = directionOf(d)
		c.Action = components.ActionPunch
		c.ActionTimer = p.PunchWarning + p.PunchDuration
		if p.Telegraphs() {
			anim.SetAnimation(cfg.PunchWarning, p.Periods.Punch, true)
			c.State = cfg.PunchWarning
		} else {
			anim.SetAnimation(cfg.Punch, p.Periods.Punch, false)
			c.State = cfg.Punch
		}

	default:
		anim.SetAnimation(cfg.Idle, p.Periods.Idle, true)
		c.Action = components.ActionNone
		c.ActionTimer = 0
		c.BlockTimer = 0
		c.WaitTimer = p.IdleWait
		c.State = cfg.Idle
	}
}

// stepAction moves a fighter through a dodge or punch. A telegraphed punch
// holds still while its warning plays and lunges once the strike starts.
func stepAction(c *components.CombatantData, anim *components.AnimationData, sprite *components.SpriteData, dt float64) {
	p := c.Profile
	switch c.Action {
	case components.ActionDodge:
		x := quarticEase(c.ActionTimer, p.DodgeDuration)
		sprite.Position = c.Origin.Add(components.Vector{X: lateral(c.Direction, x) * p.DodgeDistance})
		c.State = cfg.Dodge

	case components.ActionPunch:
		if p.Telegraphs() && c.ActionTimer >= p.PunchDuration {
			c.State = cfg.PunchWarning
			break
		}
		c.HitsInWindow = 0
		c.HitStunTimer = 0
		// The strike clip keeps the loop flag of the clip that was playing before it.
		anim.SetAnimation(cfg.Punch, p.Periods.Strike, anim.Animator.Loops)
		x := quarticEase(c.ActionTimer, p.PunchDuration)
		sprite.Position = c.Origin.Add(components.Vector{
			X: lateral(c.Direction, x) * p.PunchLateral,
			Y: x * p.PunchVertical,
		})
		c.State = cfg.Punch
	}

	c.ActionTimer = countdown(c.ActionTimer, dt)
	if c.ActionTimer <= 0 {
		c.Action = components.ActionNone
	}
}

// quarticEase maps the time left in an action to a 0..1 displacement that
// is 1 at both ends of the action and 0 at its midpoint.
func quarticEase(remaining, duration float64) float64 {
	t := 1 - remaining/duration
	x := math.Max(-1, math.Min(1, t*2-1))
	return float64(ease.InQuart(float32(math.Abs(x)), 0, 1, 1))
}

func lateral(d components.Direction, x float64) float64 {
	switch d {
	case components.DirectionLeft:
		return x - 1
	case components.DirectionRight:
		return -x + 1
	}
	return 0
}

func directionOf(d components.Decision) components.Direction {
	switch d {
	case components.DecideDodgeLeft, components.DecidePunchLeft:
		return components.DirectionLeft
	case components.DecideDodgeRight, components.DecidePunchRight:
		return components.DirectionRight
	}
	return components.DirectionNone
}

// countdown never lets a timer go below zero, so "== 0" and "<= 0" agree.
func countdown(timer, dt float64) float64 {
	return math.Max(0, timer-dt)
}

// commitFrame ticks the animator and hands the frame to the renderer.
func commitFrame(anim *components.AnimationData, sprite *components.SpriteData, dt float64) {
	sprite.Frame = anim.Tick(dt)
}
