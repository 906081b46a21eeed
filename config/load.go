package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file over the defaults. An empty path or a missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping values the document leaves out, and
// validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return cfg.Validate()
}

var (
	ErrTickRate  = errors.New("tick rate must be positive")
	ErrPitch     = errors.New("invalid pitch limits")
	ErrSmoothing = errors.New("smoothing must be in (0, 1]")
	ErrDistance  = errors.New("invalid camera distances")
	ErrJumpMode  = errors.New("unknown jump mode")
	ErrBasis     = errors.New("unknown movement basis")
	ErrBody      = errors.New("agent height and radius must be positive")
	ErrGrid      = errors.New("broadphase scale and cell size must be positive")
)

// Validate reports the first inconsistent tunable.
func (c Config) Validate() error {
	if c.Tick.Rate <= 0 {
		return fmt.Errorf("%w: %d", ErrTickRate, c.Tick.Rate)
	}
	if c.Camera.MinPitch > c.Camera.MaxPitch || c.Camera.MinPitch <= -90 || c.Camera.MaxPitch >= 90 {
		return fmt.Errorf("%w: [%v, %v]", ErrPitch, c.Camera.MinPitch, c.Camera.MaxPitch)
	}
	if c.Presentation.Smoothing <= 0 || c.Presentation.Smoothing > 1 {
		return fmt.Errorf("%w: %v", ErrSmoothing, c.Presentation.Smoothing)
	}
	if c.Camera.MinDistance < 0 || c.Camera.MaxDistance < c.Camera.MinDistance || c.Camera.ClipDistance < 0 {
		return fmt.Errorf("%w: min %v max %v clip %v", ErrDistance,
			c.Camera.MinDistance, c.Camera.MaxDistance, c.Camera.ClipDistance)
	}
	switch c.Agent.JumpMode {
	case JumpCancel, JumpAdditive:
	default:
		return fmt.Errorf("%w: %q", ErrJumpMode, c.Agent.JumpMode)
	}
	switch c.Agent.Basis {
	case BasisAnchor, BasisOrientation:
	default:
		return fmt.Errorf("%w: %q", ErrBasis, c.Agent.Basis)
	}
	if c.Agent.Height <= 0 || c.Agent.Radius <= 0 {
		return ErrBody
	}
	if c.Collision.BroadphaseScale <= 0 || c.Collision.CellSize <= 0 {
		return ErrGrid
	}
	return nil
}
