package systems

import (
	cfg "github.com/automoto/thirdperson/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// DefaultBindings maps every action to its keyboard, mouse and gamepad
// inputs. Analog sticks are read separately.
func DefaultBindings() map[cfg.ActionID]InputBinding {
	return map[cfg.ActionID]InputBinding{
		cfg.ActionMoveLeft: {
			Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftLeft,
			},
		},
		cfg.ActionMoveRight: {
			Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftRight,
			},
		},
		cfg.ActionMoveForward: {
			Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftTop,
			},
		},
		cfg.ActionMoveBack: {
			Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftBottom,
			},
		},
		cfg.ActionJump: {
			Keys: []ebiten.Key{ebiten.KeySpace},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		cfg.ActionAttack: {
			MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			// X / Square button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightLeft,
			},
		},
		cfg.ActionInteract: {
			Keys: []ebiten.Key{ebiten.KeyE},
			// Y / Triangle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightTop,
			},
		},
		cfg.ActionSprint: {
			Keys: []ebiten.Key{ebiten.KeyShiftLeft},
			// Left stick click
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftStick,
			},
		},
		cfg.ActionToggleDebug: {
			Keys: []ebiten.Key{ebiten.KeyF3},
		},
		cfg.ActionToggleCoupling: {
			Keys: []ebiten.Key{ebiten.KeyC},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterLeft,
			},
		},
		cfg.ActionSensitivityUp: {
			Keys: []ebiten.Key{ebiten.KeyEqual},
		},
		cfg.ActionSensitivityDown: {
			Keys: []ebiten.Key{ebiten.KeyMinus},
		},
		cfg.ActionReleaseCursor: {
			Keys: []ebiten.Key{ebiten.KeyEscape},
		},
	}
}
