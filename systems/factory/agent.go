package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/character"
	"github.com/automoto/thirdperson/components"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateAgent(ecs *ecs.ECS, spawn mgl32.Vec3) *donburi.Entry {
	settings := mustSettings(ecs)
	agent := archetypes.Agent.Spawn(ecs)

	ctrl := character.New(settings.Config, spawn, mustSpace(ecs), settings.Log)
	components.Agent.SetValue(agent, components.AgentData{Controller: ctrl})
	components.Input.SetValue(agent, components.InputData{})
	return agent
}
