package level

import (
	"testing"

	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/physics"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func moverWorld() *physics.World {
	return physics.NewWorld(mgl32.Vec3{-10, 0, -10}, mgl32.Vec3{10, 0, 10}, config.Default().Collision, nil)
}

func TestMoverTravels(t *testing.T) {
	w := moverWorld()
	m := NewMover(Platform{
		Name:     "lift",
		Box:      cube.Box(0, -0.5, 0, 2, 0, 2),
		Travel:   mgl32.Vec3{0, 2, 0},
		Duration: 1,
	}, w)

	if !m.Body.Layer.Has(physics.LayerGround) || !m.Body.Layer.Has(physics.LayerPlatform) {
		t.Fatalf("platform layer %v", m.Body.Layer)
	}

	// Halfway up at half the duration for a symmetric ease.
	for i := 0; i < 25; i++ {
		m.Step(0.02)
	}
	if y := m.Body.Box().Max().Y(); y < 0.99 || y > 1.01 {
		t.Fatalf("expected the top near 1, got %v", y)
	}
	if m.Body.Delta().Y() <= 0 {
		t.Fatalf("expected upward delta, got %v", m.Body.Delta())
	}

	for i := 0; i < 25; i++ {
		m.Step(0.02)
	}
	if y := m.Body.Box().Max().Y(); y < 1.99 {
		t.Fatalf("expected the top of travel, got %v", y)
	}

	// And back down.
	for i := 0; i < 50; i++ {
		m.Step(0.02)
	}
	if y := m.Body.Box().Max().Y(); y > 0.01 {
		t.Fatalf("expected to be back at the start, got %v", y)
	}
}

func TestStaticPlatformHasNoDelta(t *testing.T) {
	w := moverWorld()
	m := NewMover(Platform{Name: "slab", Box: cube.Box(0, 0, 0, 1, 1, 1)}, w)

	m.Step(0.02)

	if m.Body.Delta() != (mgl32.Vec3{}) {
		t.Fatalf("static platform moved by %v", m.Body.Delta())
	}
}
