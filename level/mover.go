package level

import (
	"github.com/automoto/thirdperson/physics"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PlatformLayer is the collision layer moving platforms are registered on.
// They carry the agent, so they are ground as well.
const PlatformLayer = physics.LayerGround | physics.LayerPlatform

// Mover drives a platform body back and forth along its travel with a
// tween sequence. Step must run once per fixed tick, before the agent, so
// the body's delta always describes the current tick.
type Mover struct {
	Platform Platform
	Body     *physics.Body

	origin mgl32.Vec3
	seq    *gween.Sequence
}

// NewMover registers p with w.
func NewMover(p Platform, w *physics.World) *Mover {
	m := &Mover{
		Platform: p,
		Body:     w.Add(p.Name, p.Box, PlatformLayer),
		origin:   p.Box.Min(),
	}
	if p.Moving() {
		m.seq = gween.NewSequence(
			gween.New(0, 1, p.Duration, ease.InOutQuad),
			gween.New(1, 0, p.Duration, ease.InOutQuad),
		)
	}
	return m
}

// Step advances the platform by dt seconds.
func (m *Mover) Step(dt float32) {
	if m.seq == nil {
		m.Body.MoveTo(m.origin)
		return
	}
	t, _, done := m.seq.Update(dt)
	if done {
		m.seq.Reset()
	}
	m.Body.MoveTo(m.origin.Add(m.Platform.Travel.Mul(t)))
}

// Movers registers every platform of l with w.
func (l *Level) Movers(w *physics.World) []*Mover {
	movers := make([]*Mover, 0, len(l.Platforms))
	for _, p := range l.Platforms {
		movers = append(movers, NewMover(p, w))
	}
	return movers
}
