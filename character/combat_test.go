package character

import (
	"testing"

	"github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl32"
)

func TestAttackGate(t *testing.T) {
	cfg := config.Default().Combat
	c := NewCombat(cfg)
	cs := NewCombatState(cfg)

	if c.Locked(cs) {
		t.Fatal("a fresh agent must not be locked")
	}
	if !c.Tick(&cs, true, 0.016) {
		t.Fatal("expected the first attack to start")
	}
	if !c.Locked(cs) {
		t.Fatal("expected movement lock right after attacking")
	}
	if c.Tick(&cs, true, 0.5) {
		t.Fatal("attacked again inside the interval")
	}

	for i := 0; i < 10; i++ {
		c.Tick(&cs, false, 0.2)
	}
	if c.Locked(cs) {
		t.Fatalf("lock should have expired, timer %v", cs.AttackTimer)
	}
}

func TestSignals(t *testing.T) {
	var s Signals
	m := Movement{Local: mgl32.Vec3{3, 0, 4}}

	s.Update(m, InputSample{MoveDelta: mgl32.Vec2{0.6, 0.8}}, GroundState{Grounded: true}, false, 5, 0.5)

	if !approx(s.Speed, 5) || !approx(s.MotionSpeed, 1) {
		t.Fatalf("unexpected speeds %+v", s)
	}
	if !approx(s.VelocityX, 0.3) || !approx(s.VelocityY, 0.4) {
		t.Fatalf("expected half blended ratios, got %+v", s)
	}
	if s.FreeFall || !s.Grounded {
		t.Fatalf("grounded agent flagged as falling: %+v", s)
	}

	s.Update(Movement{}, InputSample{Jump: true}, GroundState{}, false, 5, 0.5)
	if !s.FreeFall || s.Jump {
		t.Fatalf("expected free fall without a jump, got %+v", s)
	}

	s.Update(Movement{}, InputSample{Jump: true}, GroundState{Grounded: true, CanJump: true}, true, 5, 0.5)
	if !s.Jump || s.FreeFall || !s.Attack {
		t.Fatalf("expected jump and attack signals, got %+v", s)
	}
}

func TestSignalRatiosUseWalkSpeed(t *testing.T) {
	tests := []struct {
		name  string
		local mgl32.Vec3
		wantX float32
		wantY float32
	}{
		{"partial tilt", mgl32.Vec3{1.5, 0, 0}, 0.3, 0},
		{"full walk", mgl32.Vec3{0, 0, 5}, 0, 1},
		{"sprint", mgl32.Vec3{0, 0, 10}, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Signals
			s.Update(Movement{Local: tt.local}, InputSample{}, GroundState{Grounded: true}, false, 5, 1)
			if !approx(s.VelocityX, tt.wantX) || !approx(s.VelocityY, tt.wantY) {
				t.Fatalf("expected ratios (%v, %v), got (%v, %v)", tt.wantX, tt.wantY, s.VelocityX, s.VelocityY)
			}
		})
	}

	var s Signals
	s.Update(Movement{Local: mgl32.Vec3{1, 0, 1}}, InputSample{}, GroundState{}, false, 0, 1)
	if s.VelocityX != 0 || s.VelocityY != 0 {
		t.Fatalf("zero walk speed must give zero ratios, got %+v", s)
	}
}
