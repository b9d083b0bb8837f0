package systems

import (
	"testing"

	cfg "github.com/automoto/knockout/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestScreenFlashFadesOut(t *testing.T) {
	e := newTestECS()
	GetOrCreateClock(e).Delta = 0.05
	flash := GetOrCreateScreenFlash(e)

	TriggerScreenFlash(flash)
	require.NotNil(t, flash.Tween)
	assert.Equal(t, float32(1), flash.Alpha)

	UpdateEffects(e)
	assert.Less(t, flash.Alpha, float32(1))
	assert.Greater(t, flash.Alpha, float32(0))

	for i := 0; i < 10; i++ {
		UpdateEffects(e)
	}
	assert.Nil(t, flash.Tween)
	assert.Zero(t, flash.Alpha)
}

func TestPauseToggles(t *testing.T) {
	e := newTestECS()
	input := GetOrCreateInput(e)
	ran := 0
	gameplay := WithGameplayChecks(func(*ecs.ECS) { ran++ })

	input.Current[cfg.ActionPause] = true
	UpdatePause(e)
	gameplay(e)
	assert.True(t, GetOrCreatePause(e).IsPaused)
	assert.Zero(t, ran)

	// still held: no second toggle
	input.Advance()
	input.Current[cfg.ActionPause] = true
	UpdatePause(e)
	assert.True(t, GetOrCreatePause(e).IsPaused)

	input.Advance()
	UpdatePause(e)
	input.Advance()
	input.Current[cfg.ActionPause] = true
	UpdatePause(e)
	gameplay(e)
	assert.False(t, GetOrCreatePause(e).IsPaused)
	assert.Equal(t, 1, ran)
}

func TestDebugToggle(t *testing.T) {
	e := newTestECS()
	input := GetOrCreateInput(e)

	input.Current[cfg.ActionDebug] = true
	UpdatePause(e)

	assert.True(t, GetOrCreateSettings(e).Debug)
}

func TestClockAccumulates(t *testing.T) {
	e := newTestECS()
	tick := UpdateClock(FixedDelta(4))

	tick(e)
	tick(e)

	clock := GetOrCreateClock(e)
	assert.Equal(t, 0.25, clock.Delta)
	assert.Equal(t, 0.5, clock.Elapsed)
	assert.Equal(t, 2, clock.Frame)
}

func TestSFXQueueDrains(t *testing.T) {
	e := newTestECS()
	PlaySFX(e, cfg.SoundPunch)
	PlaySFX(e, cfg.SoundHit)

	assert.Equal(t, []cfg.SoundID{cfg.SoundPunch, cfg.SoundHit}, DrainSFX(e))
	assert.Empty(t, DrainSFX(e))
}
