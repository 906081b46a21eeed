// Package physics is the collision query service the character controller
// probes against: axis aligned boxes on layers, a grid broadphase over the
// ground plane and exact ray/box tests.
package physics

import (
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/logging"
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
)

const epsilon = 1e-6

// Hit describes the closest surface a ray reached.
type Hit struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
	Body     *Body
}

// World holds every collider of a level.
type World struct {
	space  *resolv.Space
	scale  float32
	origin mgl32.Vec3
	bodies []*Body
	log    logrus.FieldLogger
}

// NewWorld creates an empty world covering the XZ extent between min and max.
// Bodies outside that extent are never returned by queries.
func NewWorld(min, max mgl32.Vec3, cfg config.CollisionConfig, log logrus.FieldLogger) *World {
	w := int(math32.Ceil((max.X() - min.X()) * cfg.BroadphaseScale))
	h := int(math32.Ceil((max.Z() - min.Z()) * cfg.BroadphaseScale))
	if w < cfg.CellSize {
		w = cfg.CellSize
	}
	if h < cfg.CellSize {
		h = cfg.CellSize
	}
	return &World{
		space:  resolv.NewSpace(w, h, cfg.CellSize, cfg.CellSize),
		scale:  cfg.BroadphaseScale,
		origin: min,
		log:    logging.OrDiscard(log),
	}
}

// Add registers a box collider and returns its handle.
func (w *World) Add(name string, box cube.BBox, layer Layer) *Body {
	b := &Body{Name: name, Layer: layer, box: box, world: w}
	x, y, bw, bh := w.toGrid(box.Min(), box.Max())
	b.obj = resolv.NewObject(x-1, y-1, bw+2, bh+2, layer.Tags()...)
	b.obj.Data = b
	w.space.Add(b.obj)
	w.bodies = append(w.bodies, b)

	w.log.WithFields(logrus.Fields{"body": name, "layer": layer}).Debug("collider added")
	return b
}

// Remove drops a body from the world.
func (w *World) Remove(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			w.space.Remove(b.obj)
			return
		}
	}
}

// Bodies returns the registered bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Raycast returns the closest hit along dir within maxDistance against bodies
// whose layer is in mask. Bodies that contain the origin are ignored, and a
// zero direction or non-positive distance never hits.
func (w *World) Raycast(origin, dir mgl32.Vec3, maxDistance float32, mask Layer) (Hit, bool) {
	length := dir.Len()
	if maxDistance <= 0 || length < epsilon {
		return Hit{}, false
	}
	dir = dir.Mul(1 / length)
	end := origin.Add(dir.Mul(maxDistance))

	var (
		best  Hit
		found bool
	)
	for _, b := range w.candidates(origin, end) {
		if !mask.Has(b.Layer) || contains(b.box, origin) {
			continue
		}
		res, ok := trace.BBoxIntercept(b.box, origin, end)
		if !ok {
			continue
		}
		p := res.Position()
		d := p.Sub(origin).Len()
		if d > maxDistance {
			continue
		}
		if !found || d < best.Distance {
			best = Hit{Point: p, Normal: faceNormal(b.box, p), Distance: d, Body: b}
			found = true
		}
	}
	return best, found
}

// candidates returns the bodies sharing a broadphase cell with the segment.
func (w *World) candidates(start, end mgl32.Vec3) []*Body {
	lo := mgl32.Vec3{math32.Min(start.X(), end.X()), 0, math32.Min(start.Z(), end.Z())}
	hi := mgl32.Vec3{math32.Max(start.X(), end.X()), 0, math32.Max(start.Z(), end.Z())}
	x, y, bw, bh := w.toGrid(lo, hi)

	// A thin segment still has to cover at least one cell.
	probe := resolv.NewObject(x-1, y-1, bw+2, bh+2)
	w.space.Add(probe)
	defer w.space.Remove(probe)

	col := probe.Check(0, 0)
	if col == nil {
		return nil
	}
	bodies := make([]*Body, 0, len(col.Objects))
	for _, o := range col.Objects {
		if b, ok := o.Data.(*Body); ok {
			bodies = append(bodies, b)
		}
	}
	return bodies
}

func (w *World) toGrid(min, max mgl32.Vec3) (x, y, width, height float64) {
	x = float64((min.X() - w.origin.X()) * w.scale)
	y = float64((min.Z() - w.origin.Z()) * w.scale)
	width = float64((max.X() - min.X()) * w.scale)
	height = float64((max.Z() - min.Z()) * w.scale)
	return x, y, width, height
}

func contains(box cube.BBox, p mgl32.Vec3) bool {
	min, max := box.Min(), box.Max()
	for i := 0; i < 3; i++ {
		if p[i] <= min[i] || p[i] >= max[i] {
			return false
		}
	}
	return true
}

// faceNormal picks the face of box closest to p, preferring the top face on ties.
func faceNormal(box cube.BBox, p mgl32.Vec3) mgl32.Vec3 {
	min, max := box.Min(), box.Max()
	faces := [...]struct {
		dist   float32
		normal mgl32.Vec3
	}{
		{math32.Abs(p.Y() - max.Y()), mgl32.Vec3{0, 1, 0}},
		{math32.Abs(p.Y() - min.Y()), mgl32.Vec3{0, -1, 0}},
		{math32.Abs(p.X() - min.X()), mgl32.Vec3{-1, 0, 0}},
		{math32.Abs(p.X() - max.X()), mgl32.Vec3{1, 0, 0}},
		{math32.Abs(p.Z() - min.Z()), mgl32.Vec3{0, 0, -1}},
		{math32.Abs(p.Z() - max.Z()), mgl32.Vec3{0, 0, 1}},
	}
	best := faces[0]
	for _, f := range faces[1:] {
		if f.dist < best.dist {
			best = f
		}
	}
	return best.normal
}
