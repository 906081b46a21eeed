package config

import "github.com/go-gl/mathgl/mgl32"

// Vec3 is a YAML friendly three component vector.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// V converts to the math type used by the simulation.
func (v Vec3) V() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// WindowConfig contains window and projection settings
type WindowConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Title  string  `yaml:"title"`
	FOV    float32 `yaml:"fov"`  // Vertical field of view in degrees
	Near   float32 `yaml:"near"` // Near clip plane for the debug view
	Far    float32 `yaml:"far"`  // Far clip plane for the debug view
}

// TickConfig contains the fixed simulation rate
type TickConfig struct {
	Rate int `yaml:"rate"` // Fixed ticks per second
}

// Delta returns the fixed tick length in seconds.
func (t TickConfig) Delta() float32 {
	return 1 / float32(t.Rate)
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity    Vec3    `yaml:"gravity"`     // Applied every fixed tick
	RaycastPad float32 `yaml:"raycast_pad"` // Lift applied to probe origins to avoid self hits
}

// Jump modes
const (
	JumpCancel   = "cancel"   // Jump replaces vertical velocity
	JumpAdditive = "additive" // Jump adds to vertical velocity
)

// Movement bases
const (
	BasisAnchor      = "anchor"      // Yaw of the camera anchor
	BasisOrientation = "orientation" // Full orientation of the agent
)

// AgentConfig contains the character tunables
type AgentConfig struct {
	// Movement
	Speed            float32 `yaml:"speed"`
	JumpForce        float32 `yaml:"jump_force"`
	SprintMultiplier float32 `yaml:"sprint_multiplier"`
	LookSensitivity  float32 `yaml:"look_sensitivity"` // Degrees per second per unit of look delta
	JumpMode         string  `yaml:"jump_mode"`
	Basis            string  `yaml:"basis"`

	// Dimensions
	Height       float32   `yaml:"height"`
	Radius       float32   `yaml:"radius"`
	ProbeHeights []float32 `yaml:"probe_heights"` // Heights above the feet used for horizontal sweeps
	KillHeight   float32   `yaml:"kill_height"`   // Falling below this respawns the agent
}

// GroundConfig contains ground detection and jump timing
type GroundConfig struct {
	GroundedDistance float32 `yaml:"grounded_distance"` // Probe reach below the feet
	CoyoteTime       float32 `yaml:"coyote_time"`       // Seconds of grace after leaving the ground
	JumpInterval     float32 `yaml:"jump_interval"`     // Seconds grounded before another jump is allowed
}

// CombatConfig contains attack timing
type CombatConfig struct {
	AttackInterval float32 `yaml:"attack_interval"` // Seconds between attacks, movement is locked meanwhile
}

// CameraConfig contains camera rig settings
type CameraConfig struct {
	MinPitch     float32 `yaml:"min_pitch"` // Degrees
	MaxPitch     float32 `yaml:"max_pitch"` // Degrees
	MaxDistance  float32 `yaml:"max_distance"`
	MinDistance  float32 `yaml:"min_distance"`  // Floor for the occluded boom length
	ClipDistance float32 `yaml:"clip_distance"` // Gap kept between camera and occluder
	AnchorOffset Vec3    `yaml:"anchor_offset"` // Anchor position relative to the body
	CoupleModel  bool    `yaml:"couple_model"`  // Body faces the look yaw directly
	InvertY      bool    `yaml:"invert_y"`
}

// PresentationConfig contains render smoothing values
type PresentationConfig struct {
	Smoothing       float32 `yaml:"smoothing"`        // Per render tick blend factor, not scaled by frame time
	SignalSmoothing float32 `yaml:"signal_smoothing"` // Blend factor for the animation velocity ratios
}

// CollisionConfig contains broadphase settings
type CollisionConfig struct {
	BroadphaseScale float32 `yaml:"broadphase_scale"` // Grid units per world unit
	CellSize        int     `yaml:"cell_size"`        // Grid cell size in grid units
}

// DebugConfig contains development toggles
type DebugConfig struct {
	LogLevel      string `yaml:"log_level"`
	DrawColliders bool   `yaml:"draw_colliders"`
	ShowHUD       bool   `yaml:"show_hud"`
}

// Config is the root configuration. It is built once at startup and passed
// into every constructor that needs it.
type Config struct {
	Window       WindowConfig       `yaml:"window"`
	Tick         TickConfig         `yaml:"tick"`
	Physics      PhysicsConfig      `yaml:"physics"`
	Agent        AgentConfig        `yaml:"agent"`
	Ground       GroundConfig       `yaml:"ground"`
	Combat       CombatConfig       `yaml:"combat"`
	Camera       CameraConfig       `yaml:"camera"`
	Presentation PresentationConfig `yaml:"presentation"`
	Collision    CollisionConfig    `yaml:"collision"`
	Input        InputConfig        `yaml:"input"`
	Debug        DebugConfig        `yaml:"debug"`
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  960,
			Height: 540,
			Title:  "thirdperson",
			FOV:    60,
			Near:   0.1,
			Far:    200,
		},
		Tick: TickConfig{
			Rate: 50,
		},
		Physics: PhysicsConfig{
			Gravity:    Vec3{Y: -30},
			RaycastPad: 0.001,
		},
		Agent: AgentConfig{
			Speed:            5,
			JumpForce:        5,
			SprintMultiplier: 2,
			LookSensitivity:  25,
			JumpMode:         JumpCancel,
			Basis:            BasisAnchor,
			Height:           1.8,
			Radius:           0.3,
			ProbeHeights:     []float32{0.05, 0.9, 1.7},
			KillHeight:       -20,
		},
		Ground: GroundConfig{
			GroundedDistance: 0.01,
			CoyoteTime:       0.1,
			JumpInterval:     0.5,
		},
		Combat: CombatConfig{
			AttackInterval: 1.5,
		},
		Camera: CameraConfig{
			MinPitch:     -60,
			MaxPitch:     89,
			MaxDistance:  6.5,
			MinDistance:  0,
			ClipDistance: 0.5,
			AnchorOffset: Vec3{Y: 1.5},
			CoupleModel:  true,
		},
		Presentation: PresentationConfig{
			Smoothing:       0.5,
			SignalSmoothing: 0.01,
		},
		Collision: CollisionConfig{
			BroadphaseScale: 16,
			CellSize:        16,
		},
		Input: InputConfig{
			AnalogDeadzone: 0.25,
			MouseScale:     0.1,
			StickLookScale: 4,
			CaptureCursor:  true,
		},
		Debug: DebugConfig{
			LogLevel:      "info",
			DrawColliders: true,
			ShowHUD:       true,
		},
	}
}
