// Package input folds raw device readings into the per-frame sample the
// character controller consumes. Device polling lives with the ebiten
// systems; this package only sees plain values.
package input

import (
	"github.com/automoto/thirdperson/character"
	"github.com/automoto/thirdperson/config"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Method is the device family that produced the latest input.
type Method int

const (
	MethodKeyboard Method = iota
	MethodGamepad
)

func (m Method) String() string {
	if m == MethodGamepad {
		return "gamepad"
	}
	return "keyboard"
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// Raw is one frame of device readings.
type Raw struct {
	Pressed    [config.ActionCount]bool
	LeftStick  mgl32.Vec2 // ebiten axes, +Y down
	RightStick mgl32.Vec2 // ebiten axes, +Y down
	Cursor     mgl32.Vec2 // Cursor travel in pixels since the last frame, +Y down
	Gamepad    bool
}

// State stores the current and previous frame's pressed state for all
// actions plus the resolved analog vectors.
type State struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
	Move     mgl32.Vec2 // Planar intent, +Y forward, length <= 1
	Look     mgl32.Vec2 // Look delta, +X right, +Y up
	Method   Method
}

// Update swaps the frame buffers and folds raw into s.
func (s *State) Update(raw Raw, cfg config.InputConfig) {
	s.Previous = s.Current
	s.Current = raw.Pressed

	keys := mgl32.Vec2{
		axis(raw.Pressed[config.ActionMoveRight], raw.Pressed[config.ActionMoveLeft]),
		axis(raw.Pressed[config.ActionMoveForward], raw.Pressed[config.ActionMoveBack]),
	}
	stick := Deadzone(mgl32.Vec2{raw.LeftStick.X(), -raw.LeftStick.Y()}, cfg.AnalogDeadzone)
	s.Move = clampUnit(keys.Add(stick))

	look := Deadzone(mgl32.Vec2{raw.RightStick.X(), -raw.RightStick.Y()}, cfg.AnalogDeadzone)
	s.Look = mgl32.Vec2{raw.Cursor.X(), -raw.Cursor.Y()}.Mul(cfg.MouseScale).Add(look.Mul(cfg.StickLookScale))

	if raw.Gamepad {
		s.Method = MethodGamepad
	} else if keys.Len() > 0 || raw.Cursor.Len() > 0 {
		s.Method = MethodKeyboard
	}
}

// Action returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func (s *State) Action(id config.ActionID) ActionState {
	curr := s.Current[id]
	prev := s.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Sample is the controller facing view of the state.
func (s *State) Sample() character.InputSample {
	return character.InputSample{
		MoveDelta: s.Move,
		LookDelta: s.Look,
		Jump:      s.Current[config.ActionJump],
		Attack:    s.Current[config.ActionAttack],
		Interact:  s.Action(config.ActionInteract).JustPressed,
		Sprint:    s.Current[config.ActionSprint],
	}
}

// Deadzone zeroes v inside the radius and rescales the rest so output
// starts at zero on the edge of the zone.
func Deadzone(v mgl32.Vec2, radius float32) mgl32.Vec2 {
	l := v.Len()
	if l <= radius || l == 0 {
		return mgl32.Vec2{}
	}
	if radius >= 1 {
		return mgl32.Vec2{}
	}
	scaled := (math32.Min(l, 1) - radius) / (1 - radius)
	return v.Mul(scaled / l)
}

func axis(pos, neg bool) float32 {
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

func clampUnit(v mgl32.Vec2) mgl32.Vec2 {
	if l := v.Len(); l > 1 {
		return v.Mul(1 / l)
	}
	return v
}
