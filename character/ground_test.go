package character

import (
	"testing"

	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/physics"
	"github.com/go-gl/mathgl/mgl32"
)

func newGround(q CollisionQuery) (*GroundMachine, GroundState) {
	cfg := config.Default()
	return NewGroundMachine(cfg.Ground, cfg.Physics.RaycastPad, q, nil), NewGroundState(cfg.Ground)
}

func TestProbeReach(t *testing.T) {
	var gotOrigin mgl32.Vec3
	var gotDist float32
	var gotMask physics.Layer
	q := queryFunc(func(origin, dir mgl32.Vec3, maxDistance float32, mask physics.Layer) (physics.Hit, bool) {
		gotOrigin, gotDist, gotMask = origin, maxDistance, mask
		return physics.Hit{}, false
	})
	m, g := newGround(q)

	m.Probe(&g, mgl32.Vec3{1, 2, 3}, dt)

	if !approxVec(gotOrigin, mgl32.Vec3{1, 2.001, 3}) {
		t.Fatalf("probe origin %v", gotOrigin)
	}
	if !approx(gotDist, 0.011) {
		t.Fatalf("probe reach %v", gotDist)
	}
	if gotMask != physics.LayerGround {
		t.Fatalf("probe mask %v", gotMask)
	}
}

func TestProbeAgainstWorld(t *testing.T) {
	w, floor := floorWorld()
	m, g := newGround(w)

	m.Probe(&g, mgl32.Vec3{0, 0, 0}, dt)
	mustGrounded(t, g)
	if g.Support != floor {
		t.Fatalf("expected floor as support, got %v", g.Support)
	}

	// Too high above the floor: the coyote timer starts instead.
	m.Probe(&g, mgl32.Vec3{0, 0.5, 0}, dt)
	if g.Support != nil || !approx(g.CoyoteTimer, dt) {
		t.Fatalf("expected coyote timer to run, state %+v", g)
	}
}

func TestCoyoteTime(t *testing.T) {
	floor := &switchableFloor{on: true}
	m, g := newGround(floor)

	for i := 0; i < 40; i++ {
		m.Probe(&g, mgl32.Vec3{}, dt)
		m.Refresh(&g, dt)
	}
	mustGrounded(t, g)

	floor.on = false
	for i := 0; i < 2; i++ { // 0.04s off the ledge
		m.Probe(&g, mgl32.Vec3{}, dt)
		m.Refresh(&g, dt)
	}
	mustGrounded(t, g)
	if !g.CanJump {
		t.Fatal("expected jump to be allowed during coyote time")
	}

	for i := 0; i < 4; i++ { // 0.12s off the ledge
		m.Probe(&g, mgl32.Vec3{}, dt)
		m.Refresh(&g, dt)
	}
	if g.Grounded || g.CanJump {
		t.Fatalf("expected airborne after coyote time, state %+v", g)
	}
	if g.Phase() != Airborne {
		t.Fatalf("unexpected phase %v", g.Phase())
	}
}

func TestJumpIntervalGatesJumps(t *testing.T) {
	floor := &switchableFloor{on: true}
	m, g := newGround(floor)
	s := NewSimulationState(mgl32.Vec3{}, TunablesFrom(config.Default().Agent))

	m.Probe(&g, mgl32.Vec3{}, dt)
	m.Refresh(&g, dt)
	if g.CanJump {
		t.Fatal("cooldown starts at the threshold, first tick must not allow a jump")
	}
	m.Probe(&g, mgl32.Vec3{}, dt)
	m.Refresh(&g, dt)
	if !g.CanJump {
		t.Fatal("expected jump after the cooldown passed")
	}

	Jump(&g, &s, JumpCancel)
	if g.Grounded || g.JumpCooldown != 0 {
		t.Fatalf("jump did not reset the state: %+v", g)
	}
	if !g.CanJump {
		t.Fatal("eligibility must hold until the next refresh")
	}
	m.Refresh(&g, dt)
	if g.CanJump {
		t.Fatal("refresh after a jump must clear eligibility")
	}

	// Land right away: the cooldown must pass again before the next jump.
	ticks := 0
	for {
		m.Probe(&g, mgl32.Vec3{}, dt)
		m.Refresh(&g, dt)
		if g.CanJump {
			break
		}
		ticks++
		if ticks > 100 {
			t.Fatal("jump never re-enabled")
		}
	}
	if elapsed := float32(ticks) * dt; elapsed < 0.5 {
		t.Fatalf("jump re-enabled after %vs, before the interval", elapsed)
	}
}

func TestJumpModes(t *testing.T) {
	tests := []struct {
		name string
		mode JumpMode
		vy   float32
		want float32
	}{
		{"cancel replaces falling velocity", JumpCancel, -3, 5},
		{"cancel ignores a fast fall", JumpCancel, -10, 5},
		{"cancel replaces rising velocity", JumpCancel, 2, 5},
		{"additive keeps falling velocity", JumpAdditive, -3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GroundState{Grounded: true, CanJump: true}
			s := NewSimulationState(mgl32.Vec3{}, TunablesFrom(config.Default().Agent))
			s.Velocity[1] = tt.vy

			Jump(&g, &s, tt.mode)

			if !approx(s.Velocity.Y(), tt.want) {
				t.Fatalf("expected vy %v, got %v", tt.want, s.Velocity.Y())
			}
		})
	}

	if ParseJumpMode(config.JumpAdditive) != JumpAdditive || ParseJumpMode("") != JumpCancel {
		t.Fatal("unexpected jump mode parsing")
	}
}
