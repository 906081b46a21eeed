package character

import (
	"github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl32"
)

// Integrator advances velocity and position by one fixed tick.
type Integrator struct {
	gravity mgl32.Vec3
}

func NewIntegrator(cfg config.PhysicsConfig) *Integrator {
	return &Integrator{gravity: cfg.Gravity.V()}
}

// Step integrates the accumulator and gravity into velocity, clamps vertical
// velocity while grounded and moves the position. Gravity acts on velocity
// directly and is not folded into the accumulator.
func (in *Integrator) Step(s *SimulationState, grounded bool, dt float32) {
	s.Accelerate(s.Acceleration, dt)
	s.Accelerate(in.gravity, dt)
	if grounded {
		s.Velocity[1] = 0
	}
	s.Move(s.Velocity, dt)
}
