package components

import (
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/settings"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// SettingsData carries the run's configuration to the systems.
type SettingsData struct {
	Config config.Config
	Store  *settings.Store
	Log    logrus.FieldLogger
	Paused bool // Settings panel open, fixed tick systems skipped
}

var Settings = donburi.NewComponentType[SettingsData]()
