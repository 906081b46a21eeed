package character

import (
	"github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a rendered pose.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Interpolator eases rendered transforms toward their targets once per
// render tick. The blend factor is applied as is, so the visual lag depends
// on the frame rate.
type Interpolator struct {
	blend float32
	pad   float32
	query CollisionQuery
}

func NewInterpolator(cfg config.PresentationConfig, pad float32, query CollisionQuery) *Interpolator {
	return &Interpolator{blend: cfg.Smoothing, pad: pad, query: query}
}

// CorrectTarget clips target to the first surface on the straight path from
// from. Both ends are lifted by the raycast pad so a path lying on a floor
// does not catch on it. The second result reports a clip.
func (ip *Interpolator) CorrectTarget(from, target mgl32.Vec3) (mgl32.Vec3, bool) {
	delta := target.Sub(from)
	dist := delta.Len()
	if dist < epsilon {
		return target, false
	}
	lift := up.Mul(ip.pad)
	hit, ok := ip.query.Raycast(from.Add(lift), delta, dist, visibleMask)
	if !ok {
		return target, false
	}
	return hit.Point.Sub(lift), true
}

// Body moves the rendered body toward target, clipped by CorrectTarget.
// Only the rendered transform changes.
func (ip *Interpolator) Body(rendered *Transform, target Transform) bool {
	goal, clipped := ip.CorrectTarget(rendered.Position, target.Position)
	rendered.Position = lerp(rendered.Position, goal, ip.blend)
	rendered.Rotation = nlerp(rendered.Rotation, target.Rotation, ip.blend)
	return clipped
}

// Camera moves the rendered camera toward the rig handle without a
// collision pass.
func (ip *Interpolator) Camera(rendered *Transform, target Transform) {
	rendered.Position = lerp(rendered.Position, target.Position, ip.blend)
	rendered.Rotation = nlerp(rendered.Rotation, target.Rotation, ip.blend)
}

func lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// nlerp blends along the shorter arc.
func nlerp(a, b mgl32.Quat, t float32) mgl32.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl32.QuatNlerp(a, b, t)
}
