package character

import (
	"testing"

	"github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl32"
)

func newMover(basis string) (MovementResolver, SimulationState) {
	cfg := config.Default()
	cfg.Agent.Basis = basis
	return NewResolver(cfg.Agent, nil), NewSimulationState(mgl32.Vec3{}, TunablesFrom(cfg.Agent))
}

func grounded() GroundState {
	return GroundState{Grounded: true}
}

func TestZeroInputZeroDisplacement(t *testing.T) {
	r, s := newMover(config.BasisAnchor)
	g := grounded()

	m := r.Resolve(MovementInput{Basis: mgl32.QuatIdent()}, &g, &s, dt)

	if s.Position != (mgl32.Vec3{}) || m.World != (mgl32.Vec3{}) {
		t.Fatalf("expected no displacement, got pos %v world %v", s.Position, m.World)
	}
}

func TestPlanarMovement(t *testing.T) {
	tests := []struct {
		name   string
		sample InputSample
		yaw    float32
		want   mgl32.Vec3
	}{
		{"strafe right", InputSample{MoveDelta: mgl32.Vec2{1, 0}}, 0, mgl32.Vec3{0.1, 0, 0}},
		{"walk forward", InputSample{MoveDelta: mgl32.Vec2{0, 1}}, 0, mgl32.Vec3{0, 0, 0.1}},
		{"sprint", InputSample{MoveDelta: mgl32.Vec2{0, 1}, Sprint: true}, 0, mgl32.Vec3{0, 0, 0.2}},
		{"forward turned right", InputSample{MoveDelta: mgl32.Vec2{0, 1}}, 90, mgl32.Vec3{0.1, 0, 0}},
		{"forward turned around", InputSample{MoveDelta: mgl32.Vec2{0, 1}}, 180, mgl32.Vec3{0, 0, -0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, s := newMover(config.BasisAnchor)
			g := grounded()
			basis := LookState{Yaw: tt.yaw}.YawRotation()

			r.Resolve(MovementInput{Sample: tt.sample, Basis: basis}, &g, &s, dt)

			if !approxVec(s.Position, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, s.Position)
			}
		})
	}
}

func TestAttackLockFreezesMovement(t *testing.T) {
	r, s := newMover(config.BasisAnchor)
	g := grounded()
	g.CanJump = true

	m := r.Resolve(MovementInput{
		Sample:       InputSample{MoveDelta: mgl32.Vec2{1, 1}, Jump: true},
		AttackLocked: true,
		Basis:        mgl32.QuatIdent(),
	}, &g, &s, dt)

	if m.Jumped || m.World != (mgl32.Vec3{}) || s.Position != (mgl32.Vec3{}) {
		t.Fatalf("expected a frozen agent, got %+v at %v", m, s.Position)
	}
}

func TestJumpNeedsEligibility(t *testing.T) {
	r, s := newMover(config.BasisAnchor)
	g := grounded()

	m := r.Resolve(MovementInput{Sample: InputSample{Jump: true}, Basis: mgl32.QuatIdent()}, &g, &s, dt)
	if m.Jumped || s.Velocity.Y() != 0 {
		t.Fatal("jumped without eligibility")
	}

	g.CanJump = true
	m = r.Resolve(MovementInput{Sample: InputSample{Jump: true}, Basis: mgl32.QuatIdent()}, &g, &s, dt)
	if !m.Jumped || !approx(s.Velocity.Y(), 5) || g.Grounded {
		t.Fatalf("expected a jump, got %+v vy %v", m, s.Velocity.Y())
	}
}

func TestAirborneCarriesLastIntent(t *testing.T) {
	r, s := newMover(config.BasisAnchor)
	g := grounded()

	r.Resolve(MovementInput{Sample: InputSample{MoveDelta: mgl32.Vec2{0, 1}}, Basis: mgl32.QuatIdent()}, &g, &s, dt)
	g.Grounded = false
	m := r.Resolve(MovementInput{Basis: mgl32.QuatIdent()}, &g, &s, dt)

	if !approxVec(m.Local, mgl32.Vec3{0, 0, 5}) {
		t.Fatalf("expected carried intent, got %v", m.Local)
	}
	if !approxVec(s.Position, mgl32.Vec3{0, 0, 0.2}) {
		t.Fatalf("expected two ticks of travel, got %v", s.Position)
	}
}

func TestOrientationResolverUsesAgentOrientation(t *testing.T) {
	r, s := newMover(config.BasisOrientation)
	if _, ok := r.(*OrientationResolver); !ok {
		t.Fatalf("expected orientation resolver, got %T", r)
	}
	g := grounded()
	s.Orientation = LookState{Yaw: 90}.YawRotation()

	// The anchor basis is ignored by this variant.
	r.Resolve(MovementInput{Sample: InputSample{MoveDelta: mgl32.Vec2{0, 1}}, Basis: mgl32.QuatIdent()}, &g, &s, dt)

	if !approxVec(s.Position, mgl32.Vec3{0.1, 0, 0}) {
		t.Fatalf("expected travel along +X, got %v", s.Position)
	}
}
