package character

// Signals are the animation parameters published after each render tick.
type Signals struct {
	Speed       float32 // Magnitude of the planar movement
	VelocityX   float32 // Smoothed strafe ratio in [-1, 1]
	VelocityY   float32 // Smoothed forward ratio in [-1, 1]
	Jump        bool
	Grounded    bool
	FreeFall    bool
	MotionSpeed float32 // Magnitude of the raw move input
	Attack      bool
}

// Update refreshes the signals from the latest movement and state.
// The velocity ratios are relative to the walking speed, so a partial tilt
// reads below 1 and sprinting reads above it.
func (s *Signals) Update(m Movement, in InputSample, g GroundState, attacking bool, walkSpeed, smoothing float32) {
	var rx, ry float32
	if walkSpeed > epsilon {
		rx = m.Local.X() / walkSpeed
		ry = m.Local.Z() / walkSpeed
	}

	s.Speed = m.Local.Len()
	s.VelocityX += (rx - s.VelocityX) * smoothing
	s.VelocityY += (ry - s.VelocityY) * smoothing
	s.Jump = in.Jump && g.CanJump
	s.Grounded = g.Grounded
	s.FreeFall = !g.Grounded && !s.Jump
	s.MotionSpeed = in.MoveDelta.Len()
	s.Attack = attacking
}
