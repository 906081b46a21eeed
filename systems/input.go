package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/input"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

var bindings = DefaultBindings()

// GatherInput polls the devices once per frame and folds the reading into
// every agent's input component. Must run BEFORE UpdatePresentation.
func GatherInput(ecs *ecs.ECS) {
	settings := GetSettings(ecs)
	raw := pollDevices()
	if settings.Paused {
		// Only the key that closes the panel reaches the agent.
		release := raw.Pressed[cfg.ActionReleaseCursor]
		raw = input.Raw{}
		raw.Pressed[cfg.ActionReleaseCursor] = release
	}
	cx, cy := ebiten.CursorPosition()
	cursor := mgl32.Vec2{float32(cx), float32(cy)}
	captured := ebiten.CursorMode() == ebiten.CursorModeCaptured

	tags.Agent.Each(ecs.World, func(entry *donburi.Entry) {
		in := components.Input.Get(entry)
		r := raw
		// Only a captured cursor steers the camera, and the first reading
		// after capture has no reference point.
		if captured && in.CursorKnown {
			r.Cursor = cursor.Sub(in.LastCursor)
		}
		in.LastCursor, in.CursorKnown = cursor, captured
		in.Update(r, settings.Config.Input)
	})
}

// pollDevices reads every binding plus both analog sticks.
func pollDevices() input.Raw {
	var raw input.Raw
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				raw.Pressed[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				raw.Pressed[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					raw.Pressed[actionID] = true
					raw.Gamepad = true
				}
			}
		}
	}

	// The first standard gamepad provides the sticks.
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		raw.LeftStick = stick(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical)
		raw.RightStick = stick(gpID, ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical)
		if raw.LeftStick.Len() > 0 || raw.RightStick.Len() > 0 {
			raw.Gamepad = true
		}
		break
	}
	return raw
}

func stick(id ebiten.GamepadID, h, v ebiten.StandardGamepadAxis) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(ebiten.StandardGamepadAxisValue(id, h)),
		float32(ebiten.StandardGamepadAxisValue(id, v)),
	}
}

// GetAction returns the full ActionState for the agent's action.
func GetAction(ecs *ecs.ECS, id cfg.ActionID) input.ActionState {
	entry, ok := tags.Agent.First(ecs.World)
	if !ok {
		return input.ActionState{}
	}
	return components.Input.Get(entry).Action(id)
}
