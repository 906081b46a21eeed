package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, solid level.Solid) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	body := mustSpace(ecs).Add(solid.Name, solid.Box, solid.Layer)
	components.Object.SetValue(wall, components.ObjectData{Body: body})
	return wall
}
