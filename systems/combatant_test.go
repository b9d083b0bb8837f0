package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/knockout/assets/animations"
	"github.com/automoto/knockout/components"
	cfg "github.com/automoto/knockout/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOrigin = components.Vector{X: 320, Y: 200}

type stubSource struct {
	rolls []int
	calls int
}

func (s *stubSource) Intn(n int) int {
	r := s.rolls[s.calls%len(s.rolls)]
	s.calls++
	return r % n
}

type failDecider struct{ t *testing.T }

func (d failDecider) Decide(*components.InputData) components.Decision {
	d.t.Fatal("decider consulted")
	return components.DecideIdle
}

func newFighter(role components.Role, d components.Decider) Fighter {
	tn := cfg.DefaultTuning()
	p := tn.Player
	if role == components.RoleEnemy {
		p = tn.Enemy
	}
	idle := p.Clips[cfg.Idle]
	return Fighter{
		Combatant: &components.CombatantData{Role: role, Profile: &p, Origin: testOrigin, State: cfg.Idle},
		Animation: &components.AnimationData{
			Animator: animations.NewAnimator(idle, p.Periods.Idle, true),
			Clips:    p.Clips,
			Current:  cfg.Idle,
		},
		Sprite:  &components.SpriteData{Position: testOrigin, Frame: idle.First},
		Decider: d,
	}
}

func pressed(actions ...cfg.ActionID) *components.InputData {
	in := &components.InputData{}
	for _, a := range actions {
		in.Current[a] = true
	}
	return in
}

func held(actions ...cfg.ActionID) *components.InputData {
	in := pressed(actions...)
	in.Previous = in.Current
	return in
}

var striking = Snapshot{Striking: true, Active: true}

func TestPlayerDodgeLeft(t *testing.T) {
	f := newFighter(components.RolePlayer, InputDecider{})

	out := Step(f, pressed(cfg.ActionDodgeLeft), Snapshot{}, 1.0/60)

	c := f.Combatant
	assert.True(t, out.Decided)
	assert.Equal(t, components.DecideDodgeLeft, out.Decision)
	assert.Equal(t, cfg.Dodge, c.State)
	assert.Equal(t, components.ActionDodge, c.Action)
	assert.Equal(t, components.DirectionLeft, c.Direction)
	assert.Equal(t, 0.75, c.ActionTimer)
	assert.False(t, f.Sprite.FlipX)
	assert.Equal(t, cfg.Dodge, f.Animation.Current)
}

func TestPlayerDodgeFollowsEasedPath(t *testing.T) {
	f := newFighter(components.RolePlayer, InputDecider{})
	Step(f, pressed(cfg.ActionDodgeLeft), Snapshot{}, 0.375)

	Step(f, nil, Snapshot{}, 0.375)
	assert.InDelta(t, testOrigin.X, f.Sprite.Position.X, 1e-9, "no offset at the start of a dodge")

	Step(f, nil, Snapshot{}, 0.375)
	assert.InDelta(t, testOrigin.X-75, f.Sprite.Position.X, 1e-9, "full offset at the midpoint")
	assert.Equal(t, testOrigin.Y, f.Sprite.Position.Y)
	assert.Equal(t, components.ActionNone, f.Combatant.Action)

	Step(f, nil, Snapshot{}, 0.375)
	assert.Equal(t, testOrigin, f.Sprite.Position, "back at origin once the dodge ends")
}

func TestEnemyPunchWarningThenStrike(t *testing.T) {
	f := newFighter(components.RoleEnemy, &RandomDecider{Source: &stubSource{rolls: []int{2}}})
	c := f.Combatant

	Step(f, nil, Snapshot{}, 0.25)
	require.Equal(t, cfg.PunchWarning, c.State)
	require.Equal(t, 1.5, c.ActionTimer)
	assert.False(t, f.Sprite.FlipX)
	assert.Equal(t, components.DirectionLeft, c.Direction)

	for i := 0; i < 4; i++ {
		Step(f, nil, Snapshot{}, 0.25)
		assert.Equal(t, cfg.PunchWarning, c.State)
		assert.Equal(t, testOrigin, f.Sprite.Position, "no movement while warning")
	}
	assert.InDelta(t, 0.5, c.ActionTimer, 1e-9)
	assert.False(t, TakeSnapshot(c).Striking)

	for i := 0; i < 2 && c.State != cfg.Punch; i++ {
		Step(f, nil, Snapshot{}, 0.25)
	}
	require.Equal(t, cfg.Punch, c.State)
	assert.Equal(t, cfg.Punch, f.Animation.Current)
	assert.NotEqual(t, testOrigin, f.Sprite.Position)
}

func TestEnemyBlockSuppressesHit(t *testing.T) {
	enemy := newFighter(components.RoleEnemy, failDecider{t})
	enemy.Combatant.BlockTimer = 0.5

	player := newFighter(components.RolePlayer, nil)
	player.Combatant.Action = components.ActionPunch
	player.Combatant.ActionTimer = 0.45
	snap := TakeSnapshot(player.Combatant)
	require.True(t, snap.Active)

	out := Step(enemy, nil, snap, 0.1)

	assert.False(t, out.Hit)
	assert.Equal(t, 0, enemy.Combatant.HitsInWindow)
	assert.Equal(t, 0, enemy.Combatant.HitsTotal)
	assert.InDelta(t, 0.4, enemy.Combatant.BlockTimer, 1e-9)
	assert.Equal(t, cfg.Block, enemy.Combatant.State)
}

func TestEnemyHitStartsCounterPunch(t *testing.T) {
	enemy := newFighter(components.RoleEnemy, failDecider{t})
	c := enemy.Combatant
	c.WaitTimer = 1

	out := Step(enemy, nil, striking, 1.0/60)

	assert.True(t, out.Hit)
	assert.Equal(t, cfg.Hit, c.State)
	assert.Equal(t, 0.05, c.HitStunTimer)
	assert.Equal(t, 1.5, c.ActionTimer)
	assert.Equal(t, components.ActionPunch, c.Action)
	assert.Zero(t, c.WaitTimer)
	assert.Equal(t, 1, c.HitsInWindow)
	assert.Equal(t, 1, c.HitsTotal)
}

func TestEnemyHitCap(t *testing.T) {
	enemy := newFighter(components.RoleEnemy, failDecider{t})
	enemy.Combatant.WaitTimer = 1

	hits := 0
	for i := 0; i < 3; i++ {
		if Step(enemy, nil, striking, 1.0/60).Hit {
			hits++
		}
	}

	assert.Equal(t, 2, hits)
	assert.Equal(t, 2, enemy.Combatant.HitsTotal)
}

func TestPlayerHitOnEveryLiveStrikeFrame(t *testing.T) {
	player := newFighter(components.RolePlayer, InputDecider{})
	c := player.Combatant

	for i := 1; i <= 5; i++ {
		out := Step(player, nil, striking, 1.0/60)
		require.True(t, out.Hit, "frame %d", i)
		assert.Equal(t, i, c.HitsTotal)
		assert.Equal(t, 0.1, c.HitStunTimer)
		assert.Zero(t, c.ActionTimer)
		assert.Equal(t, components.ActionNone, c.Action)
	}

	assert.False(t, Step(player, nil, Snapshot{Striking: true}, 1.0/60).Hit, "warning or spent strike does not land")
	assert.Equal(t, 5, c.HitsTotal)
}

func TestPlayerHeldBlockSuppressesHit(t *testing.T) {
	player := newFighter(components.RolePlayer, InputDecider{})
	c := player.Combatant

	Step(player, pressed(cfg.ActionBlock), Snapshot{}, 1.0/60)
	require.True(t, c.Blocking)
	assert.Equal(t, cfg.Block, c.State)
	assert.Zero(t, c.BlockTimer)

	out := Step(player, held(cfg.ActionBlock), striking, 1.0/60)
	assert.False(t, out.Hit)
	assert.True(t, c.Blocking)

	Step(player, nil, Snapshot{}, 1.0/60)
	assert.False(t, c.Blocking, "releasing block drops the guard")
}

func TestPlayerGuardedWhileActing(t *testing.T) {
	player := newFighter(components.RolePlayer, InputDecider{})
	Step(player, pressed(cfg.ActionPunchRight), Snapshot{}, 1.0/60)
	require.Equal(t, cfg.Punch, player.Combatant.State)
	assert.True(t, player.Sprite.FlipX)

	assert.False(t, Step(player, nil, striking, 1.0/60).Hit)
}

func TestPlayerPunchDoesNotRestart(t *testing.T) {
	player := newFighter(components.RolePlayer, InputDecider{})
	c := player.Combatant
	Step(player, pressed(cfg.ActionPunchLeft), Snapshot{}, 0.1)
	require.Equal(t, 0.5, c.ActionTimer)

	Step(player, pressed(cfg.ActionPunchRight), Snapshot{}, 0.1)

	assert.InDelta(t, 0.4, c.ActionTimer, 1e-9)
	assert.Equal(t, components.DirectionLeft, c.Direction)
}

func TestPlayerPunchSnapshotWindow(t *testing.T) {
	player := newFighter(components.RolePlayer, InputDecider{})
	c := player.Combatant
	Step(player, pressed(cfg.ActionPunchLeft), Snapshot{}, 0.1)

	assert.True(t, TakeSnapshot(c).Active, "live at the start of the punch")

	Step(player, nil, Snapshot{}, 0.2)
	snap := TakeSnapshot(c)
	assert.True(t, snap.Striking)
	assert.False(t, snap.Active, "past the first quarter")
}

func TestKnockOutIsTerminal(t *testing.T) {
	player := newFighter(components.RolePlayer, failDecider{t})
	c := player.Combatant
	c.HitsTotal = 16

	out := Step(player, nil, Snapshot{}, 0.1)
	assert.True(t, out.Died)
	assert.True(t, c.Dead)
	assert.Equal(t, cfg.Death, c.State)
	assert.Equal(t, cfg.Death, player.Animation.Current)

	for i := 0; i < 10; i++ {
		out = Step(player, nil, striking, 0.1)
		assert.False(t, out.Hit)
		assert.False(t, out.Died)
	}
	assert.Equal(t, 16, c.HitsTotal)
	assert.Equal(t, cfg.Death, c.State)
	assert.Equal(t, player.Animation.Clips[cfg.Death].Last, player.Sprite.Frame)
	assert.False(t, TakeSnapshot(c).Striking)
}

func TestEnemyNeverDies(t *testing.T) {
	enemy := newFighter(components.RoleEnemy, &RandomDecider{Source: &stubSource{rolls: []int{0}}})
	enemy.Combatant.HitsTotal = 1000

	assert.False(t, Step(enemy, nil, Snapshot{}, 0.1).Died)
	assert.False(t, enemy.Combatant.Dead)
}

func TestTimersStayExclusive(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	player := newFighter(components.RolePlayer, InputDecider{})
	enemy := newFighter(components.RoleEnemy, &RandomDecider{Source: rng})
	player.Combatant.Profile.DeathThreshold = 0

	actions := []cfg.ActionID{cfg.ActionBlock, cfg.ActionDodgeLeft, cfg.ActionDodgeRight, cfg.ActionPunchLeft, cfg.ActionPunchRight}
	var prev [cfg.ActionCount]bool
	for frame := 0; frame < 5000; frame++ {
		in := &components.InputData{Previous: prev}
		if rng.Intn(4) == 0 {
			in.Current[actions[rng.Intn(len(actions))]] = true
		}
		prev = in.Current

		ps, es := TakeSnapshot(player.Combatant), TakeSnapshot(enemy.Combatant)
		Step(player, in, es, 1.0/60)
		Step(enemy, nil, ps, 1.0/60)

		for _, c := range []*components.CombatantData{player.Combatant, enemy.Combatant} {
			running := 0
			for _, timer := range []float64{c.ActionTimer, c.BlockTimer, c.WaitTimer} {
				require.GreaterOrEqual(t, timer, 0.0)
				if timer > 0 {
					running++
				}
			}
			require.GreaterOrEqual(t, c.HitStunTimer, 0.0)
			require.LessOrEqual(t, running, 1, "frame %d: %s has overlapping timers", frame, c.Role)
			if c.Profile.HitCap > 0 {
				require.LessOrEqual(t, c.HitsInWindow, c.Profile.HitCap)
			}
		}
		for _, f := range []Fighter{player, enemy} {
			r := f.Animation.Animator.Range()
			require.GreaterOrEqual(t, f.Sprite.Frame, r.First)
			require.LessOrEqual(t, f.Sprite.Frame, r.Last)
		}
	}
}

func TestQuarticEase(t *testing.T) {
	assert.InDelta(t, 1.0, quarticEase(1, 1), 1e-6)
	assert.InDelta(t, 0.0, quarticEase(0.5, 1), 1e-6)
	assert.InDelta(t, 1.0, quarticEase(0, 1), 1e-6)
	assert.InDelta(t, 0.0625, quarticEase(0.25, 1), 1e-6)
}

func TestCountdownSaturates(t *testing.T) {
	assert.Equal(t, 0.0, countdown(0.01, 0.1))
	assert.InDelta(t, 0.4, countdown(0.5, 0.1), 1e-9)
}
