package character

import (
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/logging"
	"github.com/automoto/thirdperson/physics"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// Phase is the coarse ground state.
type Phase int

const (
	Airborne Phase = iota
	Grounded
)

func (p Phase) String() string {
	if p == Grounded {
		return "grounded"
	}
	return "airborne"
}

// GroundState tracks contact with walkable surfaces and jump eligibility.
type GroundState struct {
	Grounded     bool
	CanJump      bool
	CoyoteTimer  float32       // Seconds since the probe last found ground
	JumpCooldown float32       // Seconds spent grounded since the last jump
	Support      *physics.Body // Body under the feet, nil without a probe hit this tick
}

// NewGroundState starts airborne with the jump cooldown already at its
// threshold, so one more grounded tick enables jumping.
func NewGroundState(cfg config.GroundConfig) GroundState {
	return GroundState{JumpCooldown: cfg.JumpInterval}
}

func (g GroundState) Phase() Phase {
	if g.Grounded {
		return Grounded
	}
	return Airborne
}

// JumpMode selects how a jump combines with the current vertical velocity.
type JumpMode int

const (
	JumpCancel JumpMode = iota
	JumpAdditive
)

// ParseJumpMode maps the configuration string, defaulting to cancel.
func ParseJumpMode(s string) JumpMode {
	if s == config.JumpAdditive {
		return JumpAdditive
	}
	return JumpCancel
}

// GroundMachine runs the ground probe and the jump timers.
type GroundMachine struct {
	cfg   config.GroundConfig
	pad   float32
	query CollisionQuery
	log   logrus.FieldLogger
}

func NewGroundMachine(cfg config.GroundConfig, pad float32, query CollisionQuery, log logrus.FieldLogger) *GroundMachine {
	return &GroundMachine{cfg: cfg, pad: pad, query: query, log: logging.OrDiscard(log)}
}

// Probe casts down from just above pos. A hit grounds the agent and resets
// the coyote timer. A miss only ungrounds once the coyote time has elapsed.
func (m *GroundMachine) Probe(g *GroundState, pos mgl32.Vec3, dt float32) {
	was := g.Grounded
	origin := pos.Add(up.Mul(m.pad))
	if hit, ok := m.query.Raycast(origin, down, m.cfg.GroundedDistance+m.pad, groundMask); ok {
		g.Grounded = true
		g.CoyoteTimer = 0
		g.Support = hit.Body
	} else {
		g.CoyoteTimer += dt
		g.Support = nil
		if g.CoyoteTimer > m.cfg.CoyoteTime {
			g.Grounded = false
		}
	}

	if was != g.Grounded {
		m.log.WithField("phase", g.Phase()).Debug("ground phase changed")
	}
}

// Refresh evaluates jump eligibility, then advances the cooldown timer while
// grounded.
func (m *GroundMachine) Refresh(g *GroundState, dt float32) {
	g.CanJump = g.Grounded && g.JumpCooldown > m.cfg.JumpInterval
	if g.Grounded {
		g.JumpCooldown += dt
	}
}

// Jump leaves the ground and restarts the cooldown. CanJump keeps its value
// until the next Refresh so the render tick still reports the jump.
func Jump(g *GroundState, s *SimulationState, mode JumpMode) {
	g.Grounded = false
	g.JumpCooldown = 0
	g.Support = nil
	if mode == JumpAdditive {
		s.Velocity[1] += s.Tunables.JumpForce
		return
	}
	s.Velocity[1] = s.Tunables.JumpForce
}
