package systems

import (
	"github.com/automoto/thirdperson/character"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/settings"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	minSensitivity = 5
	maxSensitivity = 200
)

// GetSettings returns the singleton settings component. The scene creates it
// before any system runs.
func GetSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		panic("systems: settings entity missing")
	}
	return components.Settings.Get(entry)
}

// GetClock returns the singleton clock component.
func GetClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		panic("systems: clock entity missing")
	}
	return components.Clock.Get(entry)
}

// AdjustSensitivity changes the look sensitivity by delta within the
// allowed range.
func AdjustSensitivity(ecs *ecs.ECS, delta float32) {
	s := GetSettings(ecs)
	sens := min(max(s.Config.Agent.LookSensitivity+delta, minSensitivity), maxSensitivity)
	if sens == s.Config.Agent.LookSensitivity {
		return
	}
	s.Config.Agent.LookSensitivity = sens
	eachAgent(ecs, func(c *character.Controller) { c.SetSensitivity(sens) })
	saveSettings(s)
}

// ToggleCoupling switches whether the body faces the look yaw.
func ToggleCoupling(ecs *ecs.ECS) {
	s := GetSettings(ecs)
	s.Config.Camera.CoupleModel = !s.Config.Camera.CoupleModel
	eachAgent(ecs, func(c *character.Controller) { c.SetCoupling(s.Config.Camera.CoupleModel) })
	saveSettings(s)
}

// ToggleInvertY flips the vertical look axis.
func ToggleInvertY(ecs *ecs.ECS) {
	s := GetSettings(ecs)
	s.Config.Camera.InvertY = !s.Config.Camera.InvertY
	eachAgent(ecs, func(c *character.Controller) { c.SetInvertY(s.Config.Camera.InvertY) })
	saveSettings(s)
}

// ToggleColliders shows or hides the collider minimap.
func ToggleColliders(ecs *ecs.ECS) {
	s := GetSettings(ecs)
	s.Config.Debug.DrawColliders = !s.Config.Debug.DrawColliders
	saveSettings(s)
}

// ToggleHUD shows or hides the state readout.
func ToggleHUD(ecs *ecs.ECS) {
	s := GetSettings(ecs)
	s.Config.Debug.ShowHUD = !s.Config.Debug.ShowHUD
	saveSettings(s)
}

func eachAgent(ecs *ecs.ECS, fn func(c *character.Controller)) {
	tags.Agent.Each(ecs.World, func(entry *donburi.Entry) {
		fn(components.Agent.Get(entry).Controller)
	})
}

func saveSettings(s *components.SettingsData) {
	if err := s.Store.Save(settings.Capture(s.Config)); err != nil {
		s.Log.WithError(err).Warn("could not save settings")
	}
}
