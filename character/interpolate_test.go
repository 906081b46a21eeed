package character

import (
	"testing"

	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/physics"
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func newInterp(q CollisionQuery) *Interpolator {
	cfg := config.Default()
	return NewInterpolator(cfg.Presentation, cfg.Physics.RaycastPad, q)
}

func TestBodyBlendsHalfway(t *testing.T) {
	ip := newInterp(NoCollision{})
	rendered := Transform{Rotation: mgl32.QuatIdent()}

	clipped := ip.Body(&rendered, Transform{Position: mgl32.Vec3{10, 0, 0}, Rotation: mgl32.QuatIdent()})

	if clipped {
		t.Fatal("nothing to clip against")
	}
	if !approxVec(rendered.Position, mgl32.Vec3{5, 0, 0}) {
		t.Fatalf("expected halfway, got %v", rendered.Position)
	}
}

func TestBodyClipsAtWall(t *testing.T) {
	w, _ := floorWorld()
	w.Add("wall", cube.Box(2, 0, -5, 3, 3, 5), physics.LayerWall)
	ip := newInterp(w)
	rendered := Transform{Rotation: mgl32.QuatIdent()}

	clipped := ip.Body(&rendered, Transform{Position: mgl32.Vec3{10, 0, 0}, Rotation: mgl32.QuatIdent()})

	if !clipped {
		t.Fatal("expected the wall to clip the target")
	}
	if !approxVec(rendered.Position, mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("expected halfway to the wall, got %v", rendered.Position)
	}
}

func TestBodyIgnoresAgentLayer(t *testing.T) {
	w := testWorld()
	w.Add("agent", cube.Box(2, 0, -1, 3, 2, 1), physics.LayerAgent)
	ip := newInterp(w)

	goal, clipped := ip.CorrectTarget(mgl32.Vec3{}, mgl32.Vec3{10, 0, 0})
	if clipped || goal != (mgl32.Vec3{10, 0, 0}) {
		t.Fatalf("agent layer must not clip, got %v", goal)
	}
}

func TestZeroDeltaIsStable(t *testing.T) {
	calls := 0
	q := queryFunc(func(mgl32.Vec3, mgl32.Vec3, float32, physics.Layer) (physics.Hit, bool) {
		calls++
		return physics.Hit{}, false
	})
	ip := newInterp(q)
	rendered := Transform{Position: mgl32.Vec3{1, 2, 3}, Rotation: mgl32.QuatIdent()}

	ip.Body(&rendered, rendered)

	if calls != 0 {
		t.Fatal("zero length delta must not probe")
	}
	for i := 0; i < 3; i++ {
		if math32.IsNaN(rendered.Position[i]) {
			t.Fatalf("NaN position %v", rendered.Position)
		}
	}
	if rendered.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("position drifted to %v", rendered.Position)
	}
}

func TestRotationTakesShortArc(t *testing.T) {
	ip := newInterp(NoCollision{})
	target := mgl32.QuatRotate(mgl32.DegToRad(10), up)
	rendered := Transform{Rotation: target.Scale(-1)} // same orientation, other hemisphere

	ip.Camera(&rendered, Transform{Rotation: target})

	got := rendered.Rotation.Rotate(mgl32.Vec3{0, 0, 1})
	want := target.Rotate(mgl32.Vec3{0, 0, 1})
	if !approxVec(got, want) {
		t.Fatalf("expected no visible rotation, got %v want %v", got, want)
	}
}
