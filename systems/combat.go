package systems

import (
	"github.com/automoto/knockout/components"
	cfg "github.com/automoto/knockout/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombatants steps every fighter once. Attack snapshots are taken for
// all fighters first and each fighter then reacts to its opponent's snapshot.
func UpdateCombatants(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	input := GetOrCreateInput(e)
	flash := GetOrCreateScreenFlash(e)
	GetOrCreateAudio(e)

	var fighters []*donburi.Entry
	components.Combatant.Each(e.World, func(entry *donburi.Entry) {
		fighters = append(fighters, entry)
	})

	snapshots := make(map[components.Role]Snapshot, len(fighters))
	for _, entry := range fighters {
		c := components.Combatant.Get(entry)
		snapshots[c.Role] = TakeSnapshot(c)
	}

	for _, entry := range fighters {
		c := components.Combatant.Get(entry)
		f := Fighter{
			Combatant: c,
			Animation: components.Animation.Get(entry),
			Sprite:    components.Sprite.Get(entry),
		}
		if entry.HasComponent(components.Brain) {
			f.Decider = components.Brain.Get(entry).Decider
		}

		out := Step(f, input, snapshots[c.Role.Opponent()], clock.Delta)
		if out.Hit && c.Role == components.RolePlayer {
			TriggerScreenFlash(flash)
		}
		if sfx := soundFor(out); sfx != cfg.SoundNone {
			PlaySFX(e, sfx)
		}
		traceOutcome(c.Role, c, out)
	}
}

// FindCombatant returns the fighter playing role, if there is one.
func FindCombatant(e *ecs.ECS, role components.Role) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Combatant.Each(e.World, func(entry *donburi.Entry) {
		if found == nil && components.Combatant.Get(entry).Role == role {
			found = entry
		}
	})
	return found, found != nil
}

// RefreshProfiles points every fighter's clip table at its current profile.
// Call it after installing new tuning.
func RefreshProfiles(e *ecs.ECS) {
	components.Combatant.Each(e.World, func(entry *donburi.Entry) {
		c := components.Combatant.Get(entry)
		anim := components.Animation.Get(entry)
		anim.Clips = c.Profile.Clips
		anim.SetAnimation(anim.Current, anim.Animator.Period, anim.Animator.Loops)
	})
}
