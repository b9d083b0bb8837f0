package components

import (
	"github.com/automoto/knockout/assets/animations"
	"github.com/automoto/knockout/config"
	"github.com/yohamta/donburi"
)

// AnimationData owns a fighter's animator and the clips it can switch between.
type AnimationData struct {
	Animator *animations.Animator
	Clips    map[config.StateID]config.Clip
	Current  config.StateID
}

// SetAnimation selects the clip for state and its playback settings.
// Selecting the clip that is already playing keeps it running from where it is.
func (a *AnimationData) SetAnimation(state config.StateID, period float64, loops bool) {
	clip, ok := a.Clips[state]
	if !ok {
		return
	}
	a.Animator.SetRange(clip)
	a.Animator.SetPeriod(period)
	a.Animator.Loops = loops
	a.Current = state
}

// Tick advances the animator and returns the frame to display.
func (a *AnimationData) Tick(dt float64) int {
	a.Animator.Tick(dt)
	return a.Animator.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
