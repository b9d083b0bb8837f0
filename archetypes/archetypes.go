package archetypes

import (
	"github.com/automoto/knockout/components"
	cfg "github.com/automoto/knockout/config"
	"github.com/automoto/knockout/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Combatant,
		components.Animation,
		components.Sprite,
		components.Brain,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Combatant,
		components.Animation,
		components.Sprite,
		components.Brain,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
