package factory

import (
	"fmt"

	"github.com/automoto/knockout/archetypes"
	"github.com/automoto/knockout/assets/animations"
	"github.com/automoto/knockout/components"
	cfg "github.com/automoto/knockout/config"
	"github.com/automoto/knockout/systems"
	"github.com/automoto/knockout/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the input-driven fighter.
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space) *donburi.Entry {
	return createFighter(ecs, space, fighterSpec{
		archetype: archetypes.Player,
		role:      components.RolePlayer,
		profile:   &cfg.Player,
		actor:     cfg.PlayerActor,
		decider:   systems.InputDecider{},
		tag:       tags.ResolvPlayer,
	})
}

// CreateEnemy spawns the fighter that rolls its decisions from source.
func CreateEnemy(ecs *ecs.ECS, space *resolv.Space, source systems.DecisionSource) *donburi.Entry {
	return createFighter(ecs, space, fighterSpec{
		archetype: archetypes.Enemy,
		role:      components.RoleEnemy,
		profile:   &cfg.Enemy,
		actor:     cfg.EnemyActor,
		decider:   &systems.RandomDecider{Source: source},
		tag:       tags.ResolvEnemy,
	})
}

type fighterSpec struct {
	archetype interface {
		Spawn(*ecs.ECS, ...donburi.IComponentType) *donburi.Entry
	}
	role    components.Role
	profile *cfg.ProfileConfig
	actor   cfg.ActorConfig
	decider components.Decider
	tag     string
}

func createFighter(ecs *ecs.ECS, space *resolv.Space, s fighterSpec) *donburi.Entry {
	// A fighter without its clips cannot be drawn or stepped.
	if err := s.profile.Validate(); err != nil {
		panic(fmt.Sprintf("invalid %s profile: %v", s.role, err))
	}

	fighter := s.archetype.Spawn(ecs)
	origin := components.Vector{X: s.actor.OriginX, Y: s.actor.OriginY}

	components.Combatant.SetValue(fighter, components.CombatantData{
		Role:    s.role,
		Profile: s.profile,
		Origin:  origin,
		State:   cfg.Idle,
	})

	idle := s.profile.Clips[cfg.Idle]
	animator := animations.NewAnimator(idle, s.profile.Periods.Idle, true)
	if cfg.Debug.Trace {
		animator.Tracer = systems.LogTracer(s.role)
	}
	components.Animation.SetValue(fighter, components.AnimationData{
		Animator: animator,
		Clips:    s.profile.Clips,
		Current:  cfg.Idle,
	})

	components.Sprite.SetValue(fighter, components.SpriteData{
		Key:      s.profile.Key,
		Position: origin,
		Frame:    idle.First,
	})
	components.Brain.SetValue(fighter, components.BrainData{Decider: s.decider})

	w := float64(s.actor.FrameWidth) * s.actor.Scale
	h := float64(s.actor.FrameHeight) * s.actor.Scale
	obj := resolv.NewObject(origin.X-w/2, origin.Y-h, w, h, tags.ResolvFighter, s.tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})
	if space != nil {
		space.Add(obj)
	}

	return fighter
}
