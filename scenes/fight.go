package scenes

import (
	"log"
	"math/rand"
	"sync"

	"github.com/automoto/knockout/assets"
	"github.com/automoto/knockout/components"
	cfg "github.com/automoto/knockout/config"
	"github.com/automoto/knockout/frontend"
	"github.com/automoto/knockout/systems"
	"github.com/automoto/knockout/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FightScene is the single ring where the player faces the enemy.
type FightScene struct {
	ecs     *ecs.ECS
	watcher *cfg.TuningWatcher
	once    sync.Once
}

// NewFightScene creates the fight. A non-nil watcher feeds tuning reloads
// into the running fight.
func NewFightScene(watcher *cfg.TuningWatcher) *FightScene {
	return &FightScene{watcher: watcher}
}

func (fs *FightScene) Update() {
	fs.once.Do(fs.configure)
	fs.applyTuning()
	fs.ecs.Update()
}

func (fs *FightScene) Draw(screen *ebiten.Image) {
	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

// applyTuning installs a reloaded tuning file between frames.
func (fs *FightScene) applyTuning() {
	if fs.watcher == nil {
		return
	}
	select {
	case t := <-fs.watcher.Updates:
		t.Apply()
		systems.RefreshProfiles(fs.ecs)
		assets.ResetSheets()
		log.Printf("Reloaded fighter tuning")
	default:
	}
}

func (fs *FightScene) configure() {
	frontend.PreloadAllSFX()

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateClock(systems.FixedDelta(cfg.C.TPS)))
	ecs.AddSystem(frontend.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(frontend.UpdateSettings)

	// Fight systems wrapped with the pause check
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombatants))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	ecs.AddSystem(frontend.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(cfg.Default, frontend.DrawArena)
	ecs.AddRenderer(cfg.Default, frontend.DrawFighters)
	ecs.AddRenderer(cfg.Default, frontend.DrawScreenFlash)
	ecs.AddRenderer(cfg.Overlay, frontend.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, frontend.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, frontend.DrawPause)

	fs.ecs = ecs

	spaceEntry := factory.CreateSpace(fs.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	space := components.Space.Get(spaceEntry)

	factory.CreateEnemy(fs.ecs, space, rand.New(rand.NewSource(cfg.Debug.Seed)))
	factory.CreatePlayer(fs.ecs, space)

	systems.GetOrCreateSettings(fs.ecs).Debug = cfg.Debug.Overlay
}
