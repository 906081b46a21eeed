package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveForward
	ActionMoveBack
	ActionJump
	ActionAttack
	ActionInteract
	ActionSprint
	ActionToggleDebug
	ActionToggleCoupling
	ActionSensitivityUp
	ActionSensitivityDown
	ActionReleaseCursor
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:            "none",
	ActionMoveLeft:        "move_left",
	ActionMoveRight:       "move_right",
	ActionMoveForward:     "move_forward",
	ActionMoveBack:        "move_back",
	ActionJump:            "jump",
	ActionAttack:          "attack",
	ActionInteract:        "interact",
	ActionSprint:          "sprint",
	ActionToggleDebug:     "toggle_debug",
	ActionToggleCoupling:  "toggle_coupling",
	ActionSensitivityUp:   "sensitivity_up",
	ActionSensitivityDown: "sensitivity_down",
	ActionReleaseCursor:   "release_cursor",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputConfig holds device independent input tuning. Key and button tables
// live with the poller since they depend on the window backend.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float32 `yaml:"analog_deadzone"`
	// Look delta per pixel of mouse travel
	MouseScale float32 `yaml:"mouse_scale"`
	// Look delta per unit of right stick deflection
	StickLookScale float32 `yaml:"stick_look_scale"`
	CaptureCursor  bool    `yaml:"capture_cursor"`
}
