package systems

import (
	"github.com/automoto/knockout/components"
	"github.com/automoto/knockout/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each fighter's body to where its sprite is standing.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Sprite) {
			return
		}
		components.Object.Get(e).StandAt(components.Sprite.Get(e).Position)
	})
}

// Overlapping reports whether the two fighters' bodies currently overlap.
func Overlapping(a, b *donburi.Entry) bool {
	oa, ob := components.Object.Get(a), components.Object.Get(b)
	check := oa.Check(0, 0, tags.ResolvFighter)
	if check == nil {
		return false
	}
	for _, o := range check.Objects {
		if o == ob.Object {
			return true
		}
	}
	return false
}
