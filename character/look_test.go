package character

import (
	"testing"

	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/physics"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func TestPitchClamp(t *testing.T) {
	cam := config.Default().Camera
	var l LookState

	l.Apply(mgl32.Vec2{0, -1000}, 25, 1, cam.MinPitch, cam.MaxPitch)
	if l.Pitch != 89 {
		t.Fatalf("expected pitch at max 89, got %v", l.Pitch)
	}

	l.Apply(mgl32.Vec2{0, 1000}, 25, 1, cam.MinPitch, cam.MaxPitch)
	if l.Pitch != -60 {
		t.Fatalf("expected pitch at min -60, got %v", l.Pitch)
	}
}

func TestLookAccumulates(t *testing.T) {
	var l LookState
	l.Apply(mgl32.Vec2{2, 1}, 25, 0.1, -60, 89)

	if !approx(l.Yaw, 5) || !approx(l.Pitch, -2.5) {
		t.Fatalf("unexpected angles %+v", l)
	}

	l.Apply(mgl32.Vec2{144, 0}, 25, 0.1, -60, 89)
	if !approx(l.Yaw, 5) {
		t.Fatalf("expected yaw to wrap to 5, got %v", l.Yaw)
	}
}

func TestHandleOffset(t *testing.T) {
	if !approxVec(HandleOffset(0), mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("level offset %v", HandleOffset(0))
	}
	if !approxVec(HandleOffset(90), mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("overhead offset %v", HandleOffset(90))
	}
}

func TestRigUnoccluded(t *testing.T) {
	cam := config.Default().Camera
	rig := NewCameraRig(cam, NoCollision{}, nil)
	var l LookState
	anchor := mgl32.Vec3{0, 1.5, 0}

	pose := rig.Update(&l, mgl32.Vec2{}, 25, dt, anchor)

	if pose.Occluded || pose.Boom != cam.MaxDistance {
		t.Fatalf("expected full boom, got %+v", pose)
	}
	if !approxVec(pose.HandlePosition, mgl32.Vec3{0, 1.5, -6.5}) {
		t.Fatalf("handle at %v", pose.HandlePosition)
	}

	// The handle always looks at the anchor.
	forward := pose.HandleRotation.Rotate(mgl32.Vec3{0, 0, 1})
	toAnchor := anchor.Sub(pose.HandlePosition).Normalize()
	if !approxVec(forward, toAnchor) {
		t.Fatalf("handle looks along %v, anchor is along %v", forward, toAnchor)
	}
}

func TestRigLooksDownFromAbove(t *testing.T) {
	rig := NewCameraRig(config.Default().Camera, NoCollision{}, nil)
	l := LookState{Yaw: 90, Pitch: 30}
	anchor := mgl32.Vec3{}

	pose := rig.Update(&l, mgl32.Vec2{}, 25, dt, anchor)

	if pose.HandlePosition.Y() <= 0 || pose.HandlePosition.X() >= 0 {
		t.Fatalf("expected the handle above and behind along -X, got %v", pose.HandlePosition)
	}
	forward := pose.HandleRotation.Rotate(mgl32.Vec3{0, 0, 1})
	if !approxVec(forward, anchor.Sub(pose.HandlePosition).Normalize()) {
		t.Fatalf("handle does not face the anchor: %v", forward)
	}
}

func TestRigOcclusion(t *testing.T) {
	w := testWorld()
	w.Add("wall", cube.Box(-2, 0, -4, 2, 4, -3), physics.LayerWall)
	w.Add("agent", cube.Box(-0.3, 0, -0.3, 0.3, 1.8, 0.3), physics.LayerAgent)
	rig := NewCameraRig(config.Default().Camera, w, nil)
	var l LookState

	pose := rig.Update(&l, mgl32.Vec2{}, 25, dt, mgl32.Vec3{0, 1.5, 0})

	if !pose.Occluded {
		t.Fatal("expected the wall to occlude")
	}
	if !approx(pose.Boom, 2.5) {
		t.Fatalf("expected boom 3 - 0.5, got %v", pose.Boom)
	}
}

func TestBoomLength(t *testing.T) {
	cam := config.Default().Camera
	if BoomLength(0, false, cam) != 6.5 {
		t.Fatal("miss must use the max distance")
	}
	if !approx(BoomLength(3, true, cam), 2.5) {
		t.Fatal("hit must subtract the clip distance")
	}
	if !approx(BoomLength(2, true, cam), 1.5) {
		t.Fatalf("hit at 2 with clip 0.5 must give 1.5, got %v", BoomLength(2, true, cam))
	}
	if BoomLength(0.2, true, cam) != 0 {
		t.Fatal("boom must not go behind the anchor")
	}
}

func TestInvertY(t *testing.T) {
	cam := config.Default().Camera
	cam.InvertY = true
	rig := NewCameraRig(cam, NoCollision{}, nil)
	var l LookState

	rig.Update(&l, mgl32.Vec2{0, 1}, 10, 1, mgl32.Vec3{})
	if !approx(l.Pitch, 10) {
		t.Fatalf("expected inverted pitch 10, got %v", l.Pitch)
	}
}
