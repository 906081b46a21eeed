package systems

import (
	"image/color"

	"github.com/automoto/thirdperson/character"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/physics"
	"github.com/automoto/thirdperson/tags"
	"github.com/automoto/thirdperson/view"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorGround   = color.RGBA{90, 90, 90, 255}
	colorWall     = color.RGBA{150, 150, 150, 255}
	colorPlatform = color.RGBA{0, 200, 200, 255}
	colorAgent    = color.RGBA{255, 160, 0, 255}
	colorFacing   = color.RGBA{255, 60, 60, 255}
	colorGrid     = color.RGBA{40, 40, 48, 255}
)

const (
	gridStep   = 2
	facingSize = 1
)

// DrawArena renders the level and the agent as wireframes through the
// presentation camera.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry).Camera

	drawGrid(ecs, screen, cam)

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Object.Get(e).Body
		drawBox(screen, cam, body.Box(), layerColor(body.Layer))
	})

	tags.Agent.Each(ecs.World, func(e *donburi.Entry) {
		agent := components.Agent.Get(e)
		drawAgent(screen, cam, agent.Controller)
	})
}

func layerColor(l physics.Layer) color.Color {
	switch {
	case l.Has(physics.LayerPlatform):
		return colorPlatform
	case l.Has(physics.LayerWall):
		return colorWall
	default:
		return colorGround
	}
}

// drawGrid lays a reference grid over the level floor.
func drawGrid(ecs *ecs.ECS, screen *ebiten.Image, cam view.Camera) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok || components.Level.Get(levelEntry).CurrentLevel == nil {
		return
	}
	lvl := components.Level.Get(levelEntry).CurrentLevel
	y := float32(0)
	for x := lvl.Min.X(); x <= lvl.Max.X(); x += gridStep {
		drawLine(screen, cam, mgl32.Vec3{x, y, lvl.Min.Z()}, mgl32.Vec3{x, y, lvl.Max.Z()}, colorGrid)
	}
	for z := lvl.Min.Z(); z <= lvl.Max.Z(); z += gridStep {
		drawLine(screen, cam, mgl32.Vec3{lvl.Min.X(), y, z}, mgl32.Vec3{lvl.Max.X(), y, z}, colorGrid)
	}
}

// drawAgent draws the rendered body as a box plus a line along its facing.
func drawAgent(screen *ebiten.Image, cam view.Camera, c *character.Controller) {
	body := c.Body()
	agent := c.Config().Agent
	feet := body.Position
	box := cube.Box(
		feet.X()-agent.Radius, feet.Y(), feet.Z()-agent.Radius,
		feet.X()+agent.Radius, feet.Y()+agent.Height, feet.Z()+agent.Radius,
	)
	drawBox(screen, cam, box, colorAgent)

	chest := feet.Add(mgl32.Vec3{0, agent.Height * 0.5, 0})
	facing := body.Rotation.Rotate(mgl32.Vec3{0, 0, facingSize})
	drawLine(screen, cam, chest, chest.Add(facing), colorFacing)
}

func drawBox(screen *ebiten.Image, cam view.Camera, box cube.BBox, c color.Color) {
	for _, edge := range view.BoxEdges(box) {
		drawLine(screen, cam, edge[0], edge[1], c)
	}
}

func drawLine(screen *ebiten.Image, cam view.Camera, a, b mgl32.Vec3, c color.Color) {
	pa, pb, ok := cam.Segment(a, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, pa.X(), pa.Y(), pb.X(), pb.Y(), 1, c, false)
}
