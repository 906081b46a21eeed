// Package character is a fixed step third person character controller:
// ground detection with coyote time, camera relative movement, an orbiting
// camera rig with an occlusion probe and render side smoothing.
//
// Two clocks drive it. FixedTick advances the simulation at a constant step,
// RenderTick runs once per displayed frame and only reads the simulation.
package character

import (
	"github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl32"
)

// InputSample is one gathered snapshot of player intent.
type InputSample struct {
	MoveDelta mgl32.Vec2 // x strafes right, y walks forward
	LookDelta mgl32.Vec2 // x turns right, y looks up
	Jump      bool
	Attack    bool
	Interact  bool
	Sprint    bool
}

// Tunables are the per agent movement values.
type Tunables struct {
	Speed            float32
	JumpForce        float32
	SprintMultiplier float32
	LookSensitivity  float32
}

// TunablesFrom copies the agent section of the configuration.
func TunablesFrom(cfg config.AgentConfig) Tunables {
	return Tunables{
		Speed:            cfg.Speed,
		JumpForce:        cfg.JumpForce,
		SprintMultiplier: cfg.SprintMultiplier,
		LookSensitivity:  cfg.LookSensitivity,
	}
}

// SimulationState is the authoritative kinematic state. Only fixed tick
// stages write it.
type SimulationState struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	// Acceleration is a persistent accumulator. Integration reads it every
	// tick and never clears it, so a force pushed through ApplyForce keeps
	// acting until ResetAcceleration.
	Acceleration mgl32.Vec3
	Orientation  mgl32.Quat
	Tunables     Tunables
}

// NewSimulationState places an agent at rest.
func NewSimulationState(pos mgl32.Vec3, t Tunables) SimulationState {
	return SimulationState{
		Position:    pos,
		Orientation: mgl32.QuatIdent(),
		Tunables:    t,
	}
}

// Move displaces the position by d scaled by dt.
func (s *SimulationState) Move(d mgl32.Vec3, dt float32) {
	s.Position = s.Position.Add(d.Mul(dt))
}

// Accelerate changes the velocity by a scaled by dt.
func (s *SimulationState) Accelerate(a mgl32.Vec3, dt float32) {
	s.Velocity = s.Velocity.Add(a.Mul(dt))
}

// ApplyForce adds to the acceleration accumulator.
func (s *SimulationState) ApplyForce(a mgl32.Vec3) {
	s.Acceleration = s.Acceleration.Add(a)
}

// ResetAcceleration clears the accumulator.
func (s *SimulationState) ResetAcceleration() {
	s.Acceleration = mgl32.Vec3{}
}
