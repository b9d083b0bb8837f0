package systems

import (
	"testing"

	"github.com/automoto/knockout/components"
	cfg "github.com/automoto/knockout/config"
	"github.com/stretchr/testify/assert"
)

func TestInputDeciderPriority(t *testing.T) {
	cases := []struct {
		name  string
		input *components.InputData
		want  components.Decision
	}{
		{"nothing", &components.InputData{}, components.DecideIdle},
		{"nil input", nil, components.DecideIdle},
		{"held block beats fresh punch", pressed(cfg.ActionBlock, cfg.ActionPunchLeft), components.DecideBlock},
		{"held block from earlier frame", held(cfg.ActionBlock), components.DecideBlock},
		{"dodge beats punch", pressed(cfg.ActionDodgeRight, cfg.ActionPunchLeft), components.DecideDodgeRight},
		{"left before right", pressed(cfg.ActionDodgeLeft, cfg.ActionDodgeRight), components.DecideDodgeLeft},
		{"punch right", pressed(cfg.ActionPunchRight), components.DecidePunchRight},
		{"held punch does not repeat", held(cfg.ActionPunchLeft), components.DecideIdle},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, InputDecider{}.Decide(c.input))
		})
	}
}

func TestRandomDeciderTable(t *testing.T) {
	d := &RandomDecider{Source: &stubSource{rolls: []int{0, 1, 2, 3, 4, 5}}}

	var got []components.Decision
	for i := 0; i < 6; i++ {
		got = append(got, d.Decide(nil))
	}

	assert.Equal(t, []components.Decision{
		components.DecideIdle,
		components.DecideBlock,
		components.DecidePunchLeft,
		components.DecidePunchRight,
		components.DecideIdle,
		components.DecideIdle,
	}, got)
}

func TestRandomDeciderIsSeeded(t *testing.T) {
	a, b := NewRandomDecider(7), NewRandomDecider(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Decide(nil), b.Decide(nil))
	}
}

func TestRandomDeciderNeverDodges(t *testing.T) {
	d := NewRandomDecider(11)
	for i := 0; i < 600; i++ {
		got := d.Decide(nil)
		assert.NotEqual(t, components.DecideDodgeLeft, got)
		assert.NotEqual(t, components.DecideDodgeRight, got)
	}
}

func TestSoundForOutcome(t *testing.T) {
	assert.Equal(t, cfg.SoundKnockout, soundFor(Outcome{Died: true}))
	assert.Equal(t, cfg.SoundHit, soundFor(Outcome{Hit: true}))
	assert.Equal(t, cfg.SoundPunch, soundFor(Outcome{Decided: true, Decision: components.DecidePunchRight}))
	assert.Equal(t, cfg.SoundDodge, soundFor(Outcome{Decided: true, Decision: components.DecideDodgeLeft}))
	assert.Equal(t, cfg.SoundNone, soundFor(Outcome{Decided: true, Decision: components.DecideBlock}))
	assert.Equal(t, cfg.SoundNone, soundFor(Outcome{}))
}
