package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/tags"
	"github.com/automoto/thirdperson/view"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePresentation runs the agent's render tick and rebuilds the camera
// projection from its interpolated transform.
func UpdatePresentation(ecs *ecs.ECS, width, height int) {
	clock := GetClock(ecs)
	settings := GetSettings(ecs)

	agentEntry, ok := tags.Agent.First(ecs.World)
	if !ok {
		return
	}
	agent := components.Agent.Get(agentEntry)
	in := components.Input.Get(agentEntry)
	agent.RenderTick(in.Sample(), clock.FrameDelta)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Camera = view.NewCamera(agent.Camera(), settings.Config.Window, width, height)
}
