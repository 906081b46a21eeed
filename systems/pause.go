package systems

import (
	"image/color"

	cfg "github.com/automoto/thirdperson/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var pauseOverlay = color.RGBA{0, 0, 0, 120}

// UpdatePause opens and closes the settings panel. The cursor is released
// while the panel is open. Runs in Draw after GatherInput.
func UpdatePause(ecs *ecs.ECS) {
	if GetAction(ecs, cfg.ActionReleaseCursor).JustPressed {
		SetPaused(ecs, !GetSettings(ecs).Paused)
	}
}

// SetPaused opens or closes the settings panel.
func SetPaused(ecs *ecs.ECS, paused bool) {
	s := GetSettings(ecs)
	if s.Paused == paused {
		return
	}
	s.Paused = paused
	switch {
	case paused:
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	case s.Config.Input.CaptureCursor:
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	s.Log.WithField("paused", paused).Debug("pause toggled")
}

// DrawPause dims the world behind the settings panel.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetSettings(ecs).Paused {
		return
	}
	bounds := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), pauseOverlay, false)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetSettings(e).Paused {
			return
		}
		system(e)
	}
}
