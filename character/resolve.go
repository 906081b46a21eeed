package character

import (
	"github.com/automoto/thirdperson/config"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// minApproachCos bounds the back off for rays that graze a surface.
const minApproachCos = 0.1

// SweepResolver keeps the simulated agent out of solid geometry. It sweeps
// the displacement of a tick horizontally, then vertically.
type SweepResolver struct {
	pad     float32
	radius  float32
	height  float32
	heights []float32
	query   CollisionQuery
}

func NewSweepResolver(agent config.AgentConfig, pad float32, query CollisionQuery) *SweepResolver {
	heights := agent.ProbeHeights
	if len(heights) == 0 {
		heights = []float32{agent.Height / 2}
	}
	return &SweepResolver{
		pad:     pad,
		radius:  agent.Radius,
		height:  agent.Height,
		heights: heights,
		query:   query,
	}
}

// Resolve moves s.Position from from toward where integration left it,
// stopping at surfaces and removing velocity that points into them. It
// reports whether the agent landed on something this tick.
func (r *SweepResolver) Resolve(s *SimulationState, from mgl32.Vec3) bool {
	to := s.Position
	pos := r.horizontal(s, from, mgl32.Vec3{to.X() - from.X(), 0, to.Z() - from.Z()})

	dy := to.Y() - from.Y()
	pos[1] = to.Y()
	switch {
	case dy < 0:
		feet := mgl32.Vec3{pos.X(), from.Y() + r.pad, pos.Z()}
		if hit, ok := r.query.Raycast(feet, down, -dy+r.pad, solidMask); ok {
			pos[1] = hit.Point.Y()
			s.Velocity[1] = math32.Max(s.Velocity.Y(), 0)
			s.Position = pos
			return true
		}
	case dy > 0:
		head := mgl32.Vec3{pos.X(), from.Y() + r.height, pos.Z()}
		if hit, ok := r.query.Raycast(head, up, dy+r.pad, solidMask); ok {
			pos[1] = from.Y() + math32.Max(hit.Distance-r.pad, 0)
			s.Velocity[1] = math32.Min(s.Velocity.Y(), 0)
		}
	}
	s.Position = pos
	return false
}

// horizontal sweeps move from start at every probe height and slides the
// remainder along the blocking surface once.
func (r *SweepResolver) horizontal(s *SimulationState, start, move mgl32.Vec3) mgl32.Vec3 {
	allowed, normal, blocked := r.sweep(start, move)
	if !blocked {
		return start.Add(move)
	}
	pos := start.Add(safeNormalize(move).Mul(allowed))

	if vn := s.Velocity.Dot(normal); vn < 0 {
		s.Velocity = s.Velocity.Sub(normal.Mul(vn))
	}

	rest := safeNormalize(move).Mul(move.Len() - allowed)
	slide := rest.Sub(normal.Mul(rest.Dot(normal)))
	if slide.Len() < epsilon {
		return pos
	}
	slideAllowed, _, _ := r.sweep(pos, slide)
	return pos.Add(safeNormalize(slide).Mul(slideAllowed))
}

// sweep returns how far along move the body may travel, with the normal of
// the nearest blocker.
func (r *SweepResolver) sweep(start, move mgl32.Vec3) (float32, mgl32.Vec3, bool) {
	length := move.Len()
	if length < epsilon {
		return 0, mgl32.Vec3{}, false
	}
	dir := move.Mul(1 / length)

	allowed := length
	var (
		normal  mgl32.Vec3
		blocked bool
	)
	for _, h := range r.heights {
		hit, ok := r.query.Raycast(start.Add(up.Mul(h)), dir, length+r.radius, solidMask)
		if !ok {
			continue
		}
		n := safeNormalize(mgl32.Vec3{hit.Normal.X(), 0, hit.Normal.Z()})
		// Back off far enough that the body keeps its radius from the
		// surface, not just along the ray.
		cos := math32.Max(math32.Abs(dir.Dot(n)), minApproachCos)
		if d := math32.Max(hit.Distance-r.radius/cos, 0); d < allowed || !blocked {
			allowed = math32.Min(d, allowed)
			normal = n
			blocked = true
		}
	}
	return allowed, normal, blocked
}

func safeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	if l := v.Len(); l > epsilon {
		return v.Mul(1 / l)
	}
	return mgl32.Vec3{}
}
