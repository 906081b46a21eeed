package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms moves every platform by one fixed tick. Must run BEFORE
// UpdateSimulation so agents see this tick's platform deltas.
func UpdatePlatforms(ecs *ecs.ECS) {
	dt := GetClock(ecs).FixedDelta
	components.Platform.Each(ecs.World, func(entry *donburi.Entry) {
		components.Platform.Get(entry).Step(dt)
	})
}
