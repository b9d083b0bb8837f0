package frontend

import (
	"fmt"

	"github.com/automoto/knockout/components"
	cfg "github.com/automoto/knockout/config"
	"github.com/automoto/knockout/fonts"
	"github.com/automoto/knockout/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the player's damage meter and the knock-out banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	e, ok := systems.FindCombatant(ecs, components.RolePlayer)
	if !ok {
		return
	}
	c := components.Combatant.Get(e)

	// Damage meter fills toward the knock-out threshold.
	const barW, barH = 120, 8
	vector.StrokeRect(screen, 10, 10, barW, barH, 1, cfg.White, false)
	if limit := c.Profile.DeathThreshold; limit > 0 {
		fill := float32(c.HitsTotal) / float32(limit+1)
		if fill > 1 {
			fill = 1
		}
		vector.FillRect(screen, 10, 10, barW*fill, barH, cfg.Red, false)
	}
	text.Draw(screen, fmt.Sprintf("HITS %d", c.HitsTotal), fonts.Mono.Get(), 136, 18, cfg.White)

	w := cfg.C.Width
	if c.Dead {
		msg := "KNOCKED OUT"
		text.Draw(screen, msg, fonts.Title.Get(), (w-len(msg)*17)/2, cfg.C.Height/2, cfg.Red)
	}

	hint := controlsHint(systems.GetOrCreateInput(ecs).LastInputMethod)
	text.Draw(screen, hint, fonts.Mono.Get(), (w-len(hint)*6)/2, cfg.C.Height-6, cfg.White)
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !systems.GetOrCreatePause(ecs).IsPaused {
		return
	}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), cfg.BlackOverlay, false)

	msg := "PAUSED"
	text.Draw(screen, msg, fonts.Title.Get(), (b.Dx()-len(msg)*17)/2, b.Dy()/2, cfg.Yellow)
}
