package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningIsValid(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())
}

func TestDefaultTuningDoesNotShareClipMaps(t *testing.T) {
	a := DefaultTuning()
	a.Player.Clips[Idle] = Clip{First: 40, Last: 41}

	b := DefaultTuning()
	assert.Equal(t, Clip{First: 0, Last: 1}, b.Player.Clips[Idle])
	assert.Equal(t, Clip{First: 0, Last: 1}, CharacterClips["player"][Idle])
}

func TestParseTuningOverridesDefaults(t *testing.T) {
	data := []byte(`
player:
  dodgeDuration: 0.6
  clips:
    idle: {first: 20, last: 23}
enemy:
  punchWarning: 0.8
  periods:
    strike: 0.25
`)

	tn, err := ParseTuning(data)
	require.NoError(t, err)

	assert.Equal(t, 0.6, tn.Player.DodgeDuration)
	assert.Equal(t, 75.0, tn.Player.DodgeDistance)
	assert.Equal(t, Clip{First: 20, Last: 23}, tn.Player.Clips[Idle])
	assert.Equal(t, Clip{First: 2, Last: 5}, tn.Player.Clips[Punch])
	assert.Equal(t, "player", tn.Player.Key)

	assert.Equal(t, 0.8, tn.Enemy.PunchWarning)
	assert.Equal(t, 0.25, tn.Enemy.Periods.Strike)
	assert.Equal(t, 0.3, tn.Enemy.Periods.Idle)
}

func TestParseTuningRejectsUnknownState(t *testing.T) {
	_, err := ParseTuning([]byte("player:\n  clips:\n    uppercut: {first: 1, last: 2}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uppercut")
}

func TestValidateReportsMissingClip(t *testing.T) {
	tn := DefaultTuning()
	delete(tn.Enemy.Clips, PunchWarning)

	err := tn.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingClip)
	assert.Contains(t, err.Error(), "enemy")
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *ProfileConfig)
	}{
		{"inverted clip", func(p *ProfileConfig) { p.Clips[Hit] = Clip{First: 5, Last: 2} }},
		{"zero punch", func(p *ProfileConfig) { p.PunchDuration = 0 }},
		{"negative hit cap", func(p *ProfileConfig) { p.HitCap = -1 }},
		{"window too wide", func(p *ProfileConfig) { p.ActiveWindow = 1.5 }},
		{"zero dodge", func(p *ProfileConfig) { p.DodgeDuration = 0 }},
		{"negative wait", func(p *ProfileConfig) { p.IdleWait = -1 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := defaultPlayer()
			c.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatchTuningDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fighters.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  idleWait: 1.0\n"), 0o644))

	w, err := WatchTuning(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  idleWait: 2.5\n"), 0o644))

	select {
	case tn := <-w.Updates:
		assert.Equal(t, 2.5, tn.Enemy.IdleWait)
	case <-time.After(5 * time.Second):
		t.Fatal("no tuning update received")
	}
}
