package physics

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/resolv"
)

// Body is a box collider registered in a World.
type Body struct {
	Name  string
	Layer Layer

	box   cube.BBox
	delta mgl32.Vec3 // Displacement applied by the most recent move
	obj   *resolv.Object
	world *World
}

// Box returns the world space bounds.
func (b *Body) Box() cube.BBox {
	return b.box
}

// Center returns the middle of the bounds.
func (b *Body) Center() mgl32.Vec3 {
	return b.box.Min().Add(b.box.Max()).Mul(0.5)
}

// Delta returns the displacement of the last Translate or MoveTo call.
func (b *Body) Delta() mgl32.Vec3 {
	return b.delta
}

// Translate shifts the body and refreshes its broadphase cells.
func (b *Body) Translate(d mgl32.Vec3) {
	b.delta = d
	b.box = b.box.Translate(d)
	x, y, _, _ := b.world.toGrid(b.box.Min(), b.box.Max())
	b.obj.X, b.obj.Y = x-1, y-1
	b.obj.Update()
}

// MoveTo places the body so that its minimum corner sits at min.
func (b *Body) MoveTo(min mgl32.Vec3) {
	b.Translate(min.Sub(b.box.Min()))
}
