package factory

import (
	"time"

	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/logging"
	"github.com/automoto/thirdperson/settings"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSettings must run before every other factory: the rest read the
// config and logger from it.
func CreateSettings(ecs *ecs.ECS, cfg config.Config, store *settings.Store, log logrus.FieldLogger) *donburi.Entry {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(entry, components.SettingsData{
		Config: cfg,
		Store:  store,
		Log:    logging.OrDiscard(log),
	})
	components.Clock.SetValue(entry, components.ClockData{
		FixedDelta: cfg.Tick.Delta(),
		FrameDelta: cfg.Tick.Delta(),
		LastFrame:  time.Now(),
	})
	return entry
}

func mustSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		panic("factory: create the settings first")
	}
	return components.Settings.Get(entry)
}
