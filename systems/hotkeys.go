package systems

import (
	cfg "github.com/automoto/thirdperson/config"
	"github.com/yohamta/donburi/ecs"
)

const sensitivityStep = 5

// UpdateHotkeys applies the runtime toggles bound to keys. Reads the input
// gathered this frame.
func UpdateHotkeys(ecs *ecs.ECS) {
	if GetSettings(ecs).Paused {
		return
	}
	switch {
	case GetAction(ecs, cfg.ActionToggleDebug).JustPressed:
		ToggleColliders(ecs)
	case GetAction(ecs, cfg.ActionToggleCoupling).JustPressed:
		ToggleCoupling(ecs)
	case GetAction(ecs, cfg.ActionSensitivityUp).JustPressed:
		AdjustSensitivity(ecs, sensitivityStep)
	case GetAction(ecs, cfg.ActionSensitivityDown).JustPressed:
		AdjustSensitivity(ecs, -sensitivityStep)
	}
}
