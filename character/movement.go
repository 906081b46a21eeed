package character

import (
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/logging"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// MovementInput is what a resolver needs beyond the agent state.
type MovementInput struct {
	Sample       InputSample
	AttackLocked bool
	// Basis is the yaw only rotation of the camera anchor.
	Basis mgl32.Quat
}

// Movement is the outcome of one resolve step.
type Movement struct {
	Local  mgl32.Vec3 // Planar velocity before rotation
	World  mgl32.Vec3 // Velocity applied to the position this tick
	Jumped bool
}

// MovementResolver turns intent into a displacement and may trigger a jump.
type MovementResolver interface {
	Resolve(in MovementInput, g *GroundState, s *SimulationState, dt float32) Movement
}

// NewResolver builds the resolver named by the configuration. The anchor
// resolver is the default.
func NewResolver(cfg config.AgentConfig, log logrus.FieldLogger) MovementResolver {
	p := planar{mode: ParseJumpMode(cfg.JumpMode), log: logging.OrDiscard(log)}
	if cfg.Basis == config.BasisOrientation {
		return &OrientationResolver{planar: p}
	}
	return &AnchorResolver{planar: p}
}

// planar holds the rules shared by both resolvers. The local vector persists
// between ticks: while airborne and not attack locked the last grounded
// intent keeps carrying the agent.
type planar struct {
	mode  JumpMode
	local mgl32.Vec3
	log   logrus.FieldLogger
}

func (p *planar) step(in MovementInput, g *GroundState, s *SimulationState) bool {
	switch {
	case in.AttackLocked:
		p.local = mgl32.Vec3{}
	case g.Grounded:
		p.local = mgl32.Vec3{in.Sample.MoveDelta.X(), 0, in.Sample.MoveDelta.Y()}.Mul(s.Tunables.Speed)
		if in.Sample.Sprint {
			p.local = p.local.Mul(s.Tunables.SprintMultiplier)
		}
		if in.Sample.Jump && g.CanJump {
			Jump(g, s, p.mode)
			p.log.WithField("vy", s.Velocity.Y()).Debug("jump")
			return true
		}
	}
	return false
}

func (p *planar) apply(basis mgl32.Quat, jumped bool, s *SimulationState, dt float32) Movement {
	world := basis.Rotate(p.local)
	s.Move(world, dt)
	return Movement{Local: p.local, World: world, Jumped: jumped}
}

// AnchorResolver moves relative to the camera anchor's yaw.
type AnchorResolver struct {
	planar
}

func (r *AnchorResolver) Resolve(in MovementInput, g *GroundState, s *SimulationState, dt float32) Movement {
	jumped := r.step(in, g, s)
	return r.apply(in.Basis, jumped, s, dt)
}

// OrientationResolver moves relative to the agent's own orientation by
// multiplying the planar vector with it directly.
type OrientationResolver struct {
	planar
}

func (r *OrientationResolver) Resolve(in MovementInput, g *GroundState, s *SimulationState, dt float32) Movement {
	jumped := r.step(in, g, s)
	return r.apply(s.Orientation, jumped, s, dt)
}
