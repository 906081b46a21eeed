package character

import (
	"github.com/automoto/thirdperson/physics"
	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-6

var (
	up   = mgl32.Vec3{0, 1, 0}
	down = mgl32.Vec3{0, -1, 0}
)

// CollisionQuery answers ray probes. physics.World is the production
// implementation.
type CollisionQuery interface {
	Raycast(origin, dir mgl32.Vec3, maxDistance float32, mask physics.Layer) (physics.Hit, bool)
}

// Masks used by the probes.
const (
	groundMask  = physics.LayerGround
	solidMask   = physics.LayerGround | physics.LayerWall | physics.LayerPlatform
	visibleMask = physics.LayerAll &^ physics.LayerAgent
)

// NoCollision is a query that never hits anything.
type NoCollision struct{}

func (NoCollision) Raycast(mgl32.Vec3, mgl32.Vec3, float32, physics.Layer) (physics.Hit, bool) {
	return physics.Hit{}, false
}
