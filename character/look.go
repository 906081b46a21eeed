package character

import (
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/logging"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

var right = mgl32.Vec3{1, 0, 0}

// LookState holds the accumulated view angles in degrees.
type LookState struct {
	Yaw   float32
	Pitch float32
}

// Apply accumulates a look delta. Raw Y is inverted so that a positive delta
// looks up. Pitch is clamped, yaw wraps.
func (l *LookState) Apply(delta mgl32.Vec2, sensitivity, dt, minPitch, maxPitch float32) {
	l.Yaw = math32.Mod(l.Yaw+delta.X()*sensitivity*dt, 360)
	l.Pitch = mgl32.Clamp(l.Pitch-delta.Y()*sensitivity*dt, minPitch, maxPitch)
}

// YawRotation is the rotation about the vertical axis only.
func (l LookState) YawRotation() mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(l.Yaw), up)
}

// Rotation is yaw followed by pitch.
func (l LookState) Rotation() mgl32.Quat {
	return l.YawRotation().Mul(mgl32.QuatRotate(mgl32.DegToRad(l.Pitch), right))
}

// RigPose is the camera rig placement for one render tick.
type RigPose struct {
	AnchorPosition mgl32.Vec3
	AnchorRotation mgl32.Quat
	HandlePosition mgl32.Vec3
	HandleRotation mgl32.Quat
	Boom           float32 // Distance from anchor to handle
	Occluded       bool
}

// CameraRig orbits a camera handle around an anchor and pulls it in when
// geometry sits between them.
type CameraRig struct {
	cfg      config.CameraConfig
	query    CollisionQuery
	log      logrus.FieldLogger
	occluded bool
}

func NewCameraRig(cfg config.CameraConfig, query CollisionQuery, log logrus.FieldLogger) *CameraRig {
	return &CameraRig{cfg: cfg, query: query, log: logging.OrDiscard(log)}
}

// BoomLength returns the handle distance for a probe result.
func BoomLength(hitDistance float32, hit bool, cfg config.CameraConfig) float32 {
	if !hit {
		return cfg.MaxDistance
	}
	return math32.Max(hitDistance-cfg.ClipDistance, cfg.MinDistance)
}

// HandleOffset is the unit offset of the handle in anchor space.
func HandleOffset(pitch float32) mgl32.Vec3 {
	p := mgl32.DegToRad(pitch)
	return mgl32.Vec3{0, math32.Sin(p), -math32.Cos(p)}
}

// Update applies the look delta to l and places the rig around anchor.
func (r *CameraRig) Update(l *LookState, look mgl32.Vec2, sensitivity, dt float32, anchor mgl32.Vec3) RigPose {
	if r.cfg.InvertY {
		look[1] = -look[1]
	}
	l.Apply(look, sensitivity, dt, r.cfg.MinPitch, r.cfg.MaxPitch)

	yaw := l.YawRotation()
	back := yaw.Rotate(HandleOffset(l.Pitch))
	hit, ok := r.query.Raycast(anchor, back, r.cfg.MaxDistance+r.cfg.ClipDistance, visibleMask)
	boom := BoomLength(hit.Distance, ok, r.cfg)

	if ok != r.occluded {
		r.occluded = ok
		r.log.WithFields(logrus.Fields{"occluded": ok, "boom": boom}).Debug("camera occlusion changed")
	}

	return RigPose{
		AnchorPosition: anchor,
		AnchorRotation: yaw,
		HandlePosition: anchor.Add(back.Mul(boom)),
		HandleRotation: l.Rotation(),
		Boom:           boom,
		Occluded:       ok,
	}
}
