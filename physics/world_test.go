package physics

import (
	"testing"

	"github.com/automoto/thirdperson/config"
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func newTestWorld() *World {
	return NewWorld(mgl32.Vec3{-20, 0, -20}, mgl32.Vec3{20, 0, 20}, config.Default().Collision, nil)
}

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-3
}

func TestRaycastDown(t *testing.T) {
	w := newTestWorld()
	floor := w.Add("floor", cube.Box(-10, -1, -10, 10, 0, 10), LayerGround)

	hit, ok := w.Raycast(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, -1, 0}, 2, LayerGround)
	if !ok {
		t.Fatal("expected floor hit")
	}
	if hit.Body != floor {
		t.Fatalf("expected floor body, got %v", hit.Body.Name)
	}
	if !approx(hit.Distance, 1) || !approx(hit.Point.Y(), 0) {
		t.Fatalf("unexpected hit %+v", hit)
	}
	if hit.Normal != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("expected up normal, got %v", hit.Normal)
	}
}

func TestRaycastRespectsDistanceAndMask(t *testing.T) {
	w := newTestWorld()
	w.Add("floor", cube.Box(-10, -1, -10, 10, 0, 10), LayerGround)

	if _, ok := w.Raycast(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, -1, 0}, 0.5, LayerGround); ok {
		t.Fatal("hit beyond max distance")
	}
	if _, ok := w.Raycast(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, -1, 0}, 2, LayerWall); ok {
		t.Fatal("hit a masked out layer")
	}
	if _, ok := w.Raycast(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}, 2, LayerAll); ok {
		t.Fatal("zero direction must not hit")
	}
	if _, ok := w.Raycast(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, -1, 0}, 0, LayerAll); ok {
		t.Fatal("zero distance must not hit")
	}
}

func TestRaycastPicksClosest(t *testing.T) {
	w := newTestWorld()
	w.Add("far", cube.Box(4, 0, -1, 5, 2, 1), LayerWall)
	near := w.Add("near", cube.Box(2, 0, -1, 3, 2, 1), LayerWall)

	hit, ok := w.Raycast(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, 10, LayerAll)
	if !ok || hit.Body != near {
		t.Fatalf("expected near wall, got %+v ok=%v", hit, ok)
	}
	if !approx(hit.Distance, 2) {
		t.Fatalf("expected distance 2, got %v", hit.Distance)
	}
	if hit.Normal != (mgl32.Vec3{-1, 0, 0}) {
		t.Fatalf("expected -X normal, got %v", hit.Normal)
	}
}

func TestRaycastIgnoresContainingBody(t *testing.T) {
	w := newTestWorld()
	w.Add("agent", cube.Box(-0.3, 0, -0.3, 0.3, 1.8, 0.3), LayerAgent)
	wall := w.Add("wall", cube.Box(-1, 0, -5, 1, 3, -4), LayerWall)

	hit, ok := w.Raycast(mgl32.Vec3{0, 1.5, 0}, mgl32.Vec3{0, 0, -1}, 10, LayerAll)
	if !ok || hit.Body != wall {
		t.Fatalf("expected wall behind the agent, got %+v ok=%v", hit, ok)
	}
}

func TestBodyTranslateUpdatesQueries(t *testing.T) {
	w := newTestWorld()
	p := w.Add("platform", cube.Box(-1, 0, -1, 1, 0.5, 1), LayerPlatform|LayerGround)

	p.Translate(mgl32.Vec3{8, 1, 0})
	if p.Delta() != (mgl32.Vec3{8, 1, 0}) {
		t.Fatalf("unexpected delta %v", p.Delta())
	}
	if _, ok := w.Raycast(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}, 10, LayerAll); ok {
		t.Fatal("platform still found at its old position")
	}
	hit, ok := w.Raycast(mgl32.Vec3{8, 5, 0}, mgl32.Vec3{0, -1, 0}, 10, LayerAll)
	if !ok || !approx(hit.Point.Y(), 1.5) {
		t.Fatalf("expected top at 1.5, got %+v ok=%v", hit, ok)
	}

	p.MoveTo(mgl32.Vec3{7, 1, -1})
	if !approx(p.Delta().Len(), 0) {
		t.Fatalf("MoveTo to the same corner should not move, delta %v", p.Delta())
	}
}

func TestRemove(t *testing.T) {
	w := newTestWorld()
	b := w.Add("crate", cube.Box(-1, 0, -1, 1, 1, 1), LayerWall)
	w.Remove(b)
	if len(w.Bodies()) != 0 {
		t.Fatalf("expected no bodies, got %d", len(w.Bodies()))
	}
	if _, ok := w.Raycast(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}, 10, LayerAll); ok {
		t.Fatal("removed body still hit")
	}
}

func TestLayers(t *testing.T) {
	l := ParseLayer("ground | Platform|bogus")
	if l != LayerGround|LayerPlatform {
		t.Fatalf("unexpected mask %v", l)
	}
	if LayerAll.Except(LayerAgent).Has(LayerAgent) {
		t.Fatal("agent bit survived Except")
	}
	if l.String() != "ground|platform" || LayerNone.String() != "none" {
		t.Fatalf("unexpected names %q %q", l.String(), LayerNone.String())
	}
}
