package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity with its collision space, walls and
// platforms.
func CreateLevel(ecs *ecs.ECS, lvl *level.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: lvl})

	CreateSpace(ecs, lvl.Min, lvl.Max)
	for _, s := range lvl.Solids {
		CreateWall(ecs, s)
	}
	for _, p := range lvl.Platforms {
		CreatePlatform(ecs, p)
	}

	mustSettings(ecs).Log.WithField("level", lvl.Name).Info("level created")
	return entry
}
