package archetypes

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Platform,
	)
	Agent = newArchetype(
		tags.Agent,
		components.Agent,
		components.Input,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		components.LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
