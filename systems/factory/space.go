package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/physics"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, min, max mgl32.Vec3) *donburi.Entry {
	settings := mustSettings(ecs)
	space := archetypes.Space.Spawn(ecs)
	world := physics.NewWorld(min, max, settings.Config.Collision, settings.Log)
	components.Space.SetValue(space, components.SpaceData{World: world})
	return space
}

func mustSpace(ecs *ecs.ECS) *physics.World {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		panic("factory: create the space first")
	}
	return components.Space.Get(entry).World
}
