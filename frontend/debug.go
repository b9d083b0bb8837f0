package frontend

import (
	"fmt"

	"github.com/automoto/knockout/components"
	cfg "github.com/automoto/knockout/config"
	"github.com/automoto/knockout/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug shows each fighter's timers and collision body when the overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !systems.GetOrCreateSettings(ecs).Debug {
		return
	}

	y := 30
	components.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		anim := components.Animation.Get(e)
		held := ""
		if anim.Animator.Finished() {
			held = " held"
		}

		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"%s %s  act=%.2f blk=%.2f wait=%.2f stun=%.2f  hits=%d/%d  frame=%d%s",
			c.Role, c.State, c.ActionTimer, c.BlockTimer, c.WaitTimer, c.HitStunTimer,
			c.HitsInWindow, c.HitsTotal, anim.Animator.Frame(), held,
		), 10, y)
		y += 16

		if e.HasComponent(components.Object) {
			o := components.Object.Get(e)
			clr := cfg.Green
			if systems.TakeSnapshot(c).Active {
				clr = cfg.Red
			}
			vector.StrokeRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), 1, clr, false)
		}
	})

	player, okP := systems.FindCombatant(ecs, components.RolePlayer)
	enemy, okE := systems.FindCombatant(ecs, components.RoleEnemy)
	if okP && okE && systems.Overlapping(player, enemy) {
		ebitenutil.DebugPrintAt(screen, "bodies overlap", 10, y)
		y += 16
	}

	clock := systems.GetOrCreateClock(ecs)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  t=%.1fs  frame=%d", ebiten.ActualTPS(), clock.Elapsed, clock.Frame), 10, y)
}
