package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{})
	return camera
}
