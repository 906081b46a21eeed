package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/level"
	"github.com/automoto/thirdperson/settings"
	"github.com/automoto/thirdperson/systems"
	"github.com/automoto/thirdperson/systems/factory"
	"github.com/automoto/thirdperson/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var background = color.RGBA{16, 16, 24, 255}

// ArenaScene runs one agent in one level.
type ArenaScene struct {
	ecs   *ecs.ECS
	cfg   config.Config
	level *level.Level
	store *settings.Store
	log   logrus.FieldLogger
	panel *ui.SettingsUI
	once  sync.Once
}

func NewArenaScene(cfg config.Config, lvl *level.Level, store *settings.Store, log logrus.FieldLogger) *ArenaScene {
	return &ArenaScene{cfg: cfg, level: lvl, store: store, log: log}
}

// Update runs the fixed tick systems. Ebiten calls it at the configured TPS.
func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if systems.GetSettings(as.ecs).Paused {
		as.panel.Update()
	}
}

// Draw runs the per frame stages in order: frame timing, input, pause and
// hotkeys, presentation, then the renderers.
func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(background)

	if as.ecs == nil {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	systems.BeginFrame(as.ecs)
	systems.GatherInput(as.ecs)
	systems.UpdatePause(as.ecs)
	systems.UpdateHotkeys(as.ecs)
	systems.UpdatePresentation(as.ecs, width, height)
	as.ecs.Draw(screen)

	if systems.GetSettings(as.ecs).Paused {
		as.panel.UI.Draw(screen)
	}
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Platforms move before the agent so their delta is current when the
	// ground probe reads it.
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlatforms))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSimulation))

	ecs.AddRenderer(components.LayerWorld, systems.DrawArena)
	ecs.AddRenderer(components.LayerHUD, systems.DrawDebug)
	ecs.AddRenderer(components.LayerHUD, systems.DrawHUD)
	ecs.AddRenderer(components.LayerHUD, systems.DrawPause)

	factory.CreateSettings(ecs, as.cfg, as.store, as.log)
	factory.CreateLevel(ecs, as.level)
	factory.CreateCamera(ecs)
	factory.CreateAgent(ecs, as.level.Spawn)

	as.ecs = ecs
	as.panel = ui.NewSettingsUI(ecs)
}
