// Package view projects world space lines onto the screen for the
// wireframe debug view.
package view

import (
	"github.com/automoto/thirdperson/character"
	"github.com/automoto/thirdperson/config"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective projection for one frame.
type Camera struct {
	Eye        mgl32.Vec3
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Width      float32
	Height     float32
	near       float32
}

// NewCamera builds the projection for a camera transform on a width x height
// screen. The world is left handed (+X is right of +Z), so the projection
// mirrors X to keep right on the right.
func NewCamera(t character.Transform, win config.WindowConfig, width, height int) Camera {
	forward := t.Rotation.Rotate(mgl32.Vec3{0, 0, 1})
	up := t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
	aspect := float32(width) / float32(height)

	proj := mgl32.Scale3D(-1, 1, 1).Mul4(
		mgl32.Perspective(mgl32.DegToRad(win.FOV), aspect, win.Near, win.Far),
	)
	return Camera{
		Eye:        t.Position,
		View:       mgl32.LookAtV(t.Position, t.Position.Add(forward), up),
		Projection: proj,
		Width:      float32(width),
		Height:     float32(height),
		near:       win.Near,
	}
}

// Segment projects the line a-b, cutting it at the near plane. It reports
// false when the whole line is behind the camera.
func (c Camera) Segment(a, b mgl32.Vec3) (mgl32.Vec2, mgl32.Vec2, bool) {
	va := c.View.Mul4x1(a.Vec4(1)).Vec3()
	vb := c.View.Mul4x1(b.Vec4(1)).Vec3()

	// View space looks down -Z.
	limit := -c.near
	inA, inB := va.Z() <= limit, vb.Z() <= limit
	switch {
	case !inA && !inB:
		return mgl32.Vec2{}, mgl32.Vec2{}, false
	case !inA:
		va = cut(vb, va, limit)
	case !inB:
		vb = cut(va, vb, limit)
	}
	return c.screen(va), c.screen(vb), true
}

// Point projects p, reporting false when it is behind the near plane.
func (c Camera) Point(p mgl32.Vec3) (mgl32.Vec2, bool) {
	v := c.View.Mul4x1(p.Vec4(1)).Vec3()
	if v.Z() > -c.near {
		return mgl32.Vec2{}, false
	}
	return c.screen(v), true
}

func (c Camera) screen(v mgl32.Vec3) mgl32.Vec2 {
	clip := c.Projection.Mul4x1(v.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())
	return mgl32.Vec2{
		(ndc.X() + 1) / 2 * c.Width,
		(1 - ndc.Y()) / 2 * c.Height,
	}
}

// cut moves out along in-out until it sits on the plane z = limit.
func cut(in, out mgl32.Vec3, limit float32) mgl32.Vec3 {
	t := (limit - in.Z()) / (out.Z() - in.Z())
	return in.Add(out.Sub(in).Mul(t))
}

// BoxEdges returns the twelve edges of box.
func BoxEdges(box cube.BBox) [12][2]mgl32.Vec3 {
	lo, hi := box.Min(), box.Max()
	corner := func(x, y, z int) mgl32.Vec3 {
		c := lo
		if x == 1 {
			c[0] = hi[0]
		}
		if y == 1 {
			c[1] = hi[1]
		}
		if z == 1 {
			c[2] = hi[2]
		}
		return c
	}
	var edges [12][2]mgl32.Vec3
	i := 0
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			edges[i] = [2]mgl32.Vec3{corner(0, a, b), corner(1, a, b)}
			edges[i+1] = [2]mgl32.Vec3{corner(a, 0, b), corner(a, 1, b)}
			edges[i+2] = [2]mgl32.Vec3{corner(a, b, 0), corner(a, b, 1)}
			i += 3
		}
	}
	return edges
}
