package frontend

import (
	"image/color"

	"github.com/automoto/knockout/assets"
	"github.com/automoto/knockout/components"
	cfg "github.com/automoto/knockout/config"
	"github.com/automoto/knockout/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// DrawArena renders the ring floor and ropes.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	screen.Fill(color.Black)
	vector.FillRect(screen, w*0.1, h*0.3, w*0.8, h*0.7, cfg.Ring, false)
	for i := 0; i < 3; i++ {
		y := h*0.3 + float32(i)*10
		vector.StrokeLine(screen, w*0.1, y, w*0.9, y, 2, cfg.White, false)
	}
}

// DrawFighters renders every combatant, back row first.
func DrawFighters(ecs *ecs.ECS, screen *ebiten.Image) {
	if e, ok := systems.FindCombatant(ecs, components.RoleEnemy); ok {
		drawFighter(screen, e, cfg.EnemyActor)
	}
	if e, ok := systems.FindCombatant(ecs, components.RolePlayer); ok {
		drawFighter(screen, e, cfg.PlayerActor)
	}
}

func drawFighter(screen *ebiten.Image, e *donburi.Entry, actor cfg.ActorConfig) {
	sprite := components.Sprite.Get(e)
	anim := components.Animation.Get(e)
	c := components.Combatant.Get(e)

	sheet := assets.GetSheet(sprite.Key, anim.Clips, actor.FrameWidth, actor.FrameHeight)
	img := sheet.Frame(sprite.Frame)

	tint := actor.Tint
	switch {
	case c.Dead:
		tint = color.RGBA{R: tint.R / 2, G: tint.G / 2, B: tint.B / 2, A: 255}
	case c.State == cfg.Hit:
		tint = cfg.White
	}

	sx := actor.Scale
	if sprite.FlipX {
		sx = -sx
	}

	// Anchor at bottom-center so the feet sit on the fighter's origin.
	if assets.TintShader == nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(actor.FrameWidth)/2, -float64(actor.FrameHeight))
		drawOp.GeoM.Scale(sx, actor.Scale)
		drawOp.GeoM.Translate(sprite.Position.X, sprite.Position.Y)
		drawOp.ColorScale.ScaleWithColor(tint)
		screen.DrawImage(img, drawOp)
		return
	}

	shaderOp.GeoM.Reset()
	shaderOp.GeoM.Translate(-float64(actor.FrameWidth)/2, -float64(actor.FrameHeight))
	shaderOp.GeoM.Scale(sx, actor.Scale)
	shaderOp.GeoM.Translate(sprite.Position.X, sprite.Position.Y)
	shaderOp.Images[0] = img
	shaderOp.Uniforms = assets.TintUniforms(tint)
	screen.DrawRectShader(actor.FrameWidth, actor.FrameHeight, assets.TintShader, shaderOp)
}

// DrawScreenFlash tints the whole screen while the hit flash is fading.
func DrawScreenFlash(ecs *ecs.ECS, screen *ebiten.Image) {
	flash := systems.GetOrCreateScreenFlash(ecs)
	if flash.Alpha <= 0 {
		return
	}
	c := cfg.Flash.Color
	c.A = uint8(float32(c.A) * flash.Alpha)
	c.R = uint8(float32(c.R) * flash.Alpha)
	c.G = uint8(float32(c.G) * flash.Alpha)
	c.B = uint8(float32(c.B) * flash.Alpha)
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}
