package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform registers p and moves it back and forth along its travel
// with a tween sequence.
func CreatePlatform(ecs *ecs.ECS, p level.Platform) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	mover := level.NewMover(p, mustSpace(ecs))
	components.Object.SetValue(platform, components.ObjectData{Body: mover.Body})
	components.Platform.SetValue(platform, components.PlatformData{Mover: mover})
	return platform
}
