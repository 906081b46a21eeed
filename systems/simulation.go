package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation advances every agent by one fixed tick using the input
// gathered on the latest frame.
func UpdateSimulation(ecs *ecs.ECS) {
	clock := GetClock(ecs)
	tags.Agent.Each(ecs.World, func(entry *donburi.Entry) {
		in := components.Input.Get(entry)
		components.Agent.Get(entry).FixedTick(in.Sample(), clock.FixedDelta)
	})
	clock.Ticks++
}
