package systems

import (
	"image/color"

	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	minimapSize   = 160
	minimapMargin = 10
)

var (
	minimapBackground = color.RGBA{0, 0, 0, 160}
	minimapRay        = color.RGBA{255, 255, 0, 255}
)

// DrawDebug renders a top down map of every collider with the agent and
// its camera boom.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetSettings(ecs)
	if !settings.Config.Debug.DrawColliders {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok || components.Level.Get(levelEntry).CurrentLevel == nil {
		return
	}
	lvl := components.Level.Get(levelEntry).CurrentLevel

	width := float32(screen.Bounds().Dx())
	originX := width - minimapSize - minimapMargin
	originY := float32(minimapMargin)
	extent := max(lvl.Max.X()-lvl.Min.X(), lvl.Max.Z()-lvl.Min.Z())
	if extent <= 0 {
		return
	}
	scale := minimapSize / extent

	// World X maps to screen X, world Z runs up the screen.
	toMap := func(x, z float32) (float32, float32) {
		return originX + (x-lvl.Min.X())*scale, originY + minimapSize - (z-lvl.Min.Z())*scale
	}

	vector.FillRect(screen, originX, originY, minimapSize, minimapSize, minimapBackground, false)

	for _, body := range space.Bodies() {
		box := body.Box()
		x0, y1 := toMap(box.Min().X(), box.Min().Z())
		x1, y0 := toMap(box.Max().X(), box.Max().Z())
		c := layerColor(body.Layer)

		// Draw outline
		vector.FillRect(screen, x0, y0, x1-x0, 1, c, false)   // Top
		vector.FillRect(screen, x0, y1-1, x1-x0, 1, c, false) // Bottom
		vector.FillRect(screen, x0, y0, 1, y1-y0, c, false)   // Left
		vector.FillRect(screen, x1-1, y0, 1, y1-y0, c, false) // Right
	}

	agentEntry, ok := tags.Agent.First(ecs.World)
	if !ok {
		return
	}
	agent := components.Agent.Get(agentEntry)
	pose := agent.Pose()
	body := agent.Body().Position
	ax, ay := toMap(body.X(), body.Z())
	hx, hy := toMap(pose.HandlePosition.X(), pose.HandlePosition.Z())
	vector.StrokeLine(screen, ax, ay, hx, hy, 1, minimapRay, false)
	vector.FillRect(screen, ax-2, ay-2, 4, 4, colorAgent, false)
}
