package character

import (
	"testing"

	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/physics"
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

const dt = float32(0.02)

// queryFunc adapts a function to CollisionQuery.
type queryFunc func(origin, dir mgl32.Vec3, maxDistance float32, mask physics.Layer) (physics.Hit, bool)

func (f queryFunc) Raycast(origin, dir mgl32.Vec3, maxDistance float32, mask physics.Layer) (physics.Hit, bool) {
	return f(origin, dir, maxDistance, mask)
}

// switchableFloor reports a ground hit right under any probe while on is set.
type switchableFloor struct {
	on bool
}

func (f *switchableFloor) Raycast(origin, dir mgl32.Vec3, maxDistance float32, mask physics.Layer) (physics.Hit, bool) {
	if !f.on || dir.Y() >= 0 || !mask.Has(physics.LayerGround) {
		return physics.Hit{}, false
	}
	return physics.Hit{Point: origin, Normal: up, Distance: 0}, true
}

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-3
}

// approxVec compares component-wise with an absolute tolerance. The relative
// comparison of ApproxEqualThreshold rejects near-zero noise.
func approxVec(a, b mgl32.Vec3) bool {
	for i := range a {
		if !approx(a[i], b[i]) {
			return false
		}
	}
	return true
}

func testWorld() *physics.World {
	return physics.NewWorld(mgl32.Vec3{-50, 0, -50}, mgl32.Vec3{50, 0, 50}, config.Default().Collision, nil)
}

// floorWorld has a 20x20 floor whose top is at y=0.
func floorWorld() (*physics.World, *physics.Body) {
	w := testWorld()
	floor := w.Add("floor", cube.Box(-10, -1, -10, 10, 0, 10), physics.LayerGround)
	return w, floor
}

func mustGrounded(t *testing.T, g GroundState) {
	t.Helper()
	if !g.Grounded {
		t.Fatalf("expected grounded, state %+v", g)
	}
}
