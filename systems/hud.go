package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/fonts"
	"github.com/automoto/thirdperson/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
	hudWidth      = 300
)

var (
	hudBackground = color.RGBA{0, 0, 0, 140}
	hudText       = color.RGBA{230, 230, 230, 255}
	hudHint       = color.RGBA{150, 150, 150, 255}
)

// DrawHUD renders the agent state readout in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetSettings(ecs)
	if !settings.Config.Debug.ShowHUD {
		return
	}
	agentEntry, ok := tags.Agent.First(ecs.World)
	if !ok {
		return
	}
	agent := components.Agent.Get(agentEntry)
	state := agent.State()
	ground := agent.Ground()
	look := agent.Look()
	pose := agent.Pose()
	sig := agent.Signals()
	clock := GetClock(ecs)

	lines := []string{
		fmt.Sprintf("pos   %6.2f %6.2f %6.2f", state.Position.X(), state.Position.Y(), state.Position.Z()),
		fmt.Sprintf("vel   %6.2f %6.2f %6.2f", state.Velocity.X(), state.Velocity.Y(), state.Velocity.Z()),
		fmt.Sprintf("phase %s  jump %t  coyote %.2f", ground.Phase(), ground.CanJump, ground.CoyoteTimer),
		fmt.Sprintf("look  yaw %6.1f  pitch %5.1f", look.Yaw, look.Pitch),
		fmt.Sprintf("boom  %.2f  occluded %t", pose.Boom, pose.Occluded),
		fmt.Sprintf("anim  speed %.2f  x %.2f  y %.2f", sig.Speed, sig.VelocityX, sig.VelocityY),
		fmt.Sprintf("      fall %t  attack %t", sig.FreeFall, sig.Attack),
		fmt.Sprintf("sens  %.0f  couple %t", settings.Config.Agent.LookSensitivity, settings.Config.Camera.CoupleModel),
		fmt.Sprintf("ticks %d  fps %.0f", clock.Ticks, ebiten.ActualFPS()),
	}

	face := fonts.HUD.Get()
	height := float32(len(lines)+1)*hudLineHeight + hudMargin
	vector.FillRect(screen, hudMargin/2, hudMargin/2, hudWidth, height, hudBackground, false)
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight, hudText)
	}

	hint := "F3 debug  C couple  +/- sensitivity  Esc cursor"
	text.Draw(screen, hint, fonts.HUDSmall.Get(), hudMargin, hudMargin+(len(lines)+1)*hudLineHeight, hudHint)
}
