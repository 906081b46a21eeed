// Package settings persists the player adjustable part of the config
// between runs.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/logging"
	"github.com/quasilyte/gdata"
	"github.com/sirupsen/logrus"
)

const itemKey = "settings"

// Saved represents the settings data stored on disk
type Saved struct {
	LookSensitivity float32 `json:"lookSensitivity"`
	InvertY         bool    `json:"invertY"`
	CoupleModel     bool    `json:"coupleModel"`
	ShowHUD         bool    `json:"showHud"`
	DrawColliders   bool    `json:"drawColliders"`
}

// Capture copies the persisted fields out of cfg.
func Capture(cfg config.Config) Saved {
	return Saved{
		LookSensitivity: cfg.Agent.LookSensitivity,
		InvertY:         cfg.Camera.InvertY,
		CoupleModel:     cfg.Camera.CoupleModel,
		ShowHUD:         cfg.Debug.ShowHUD,
		DrawColliders:   cfg.Debug.DrawColliders,
	}
}

// Apply writes s over cfg. A non positive sensitivity is ignored.
func (s Saved) Apply(cfg *config.Config) {
	if s.LookSensitivity > 0 {
		cfg.Agent.LookSensitivity = s.LookSensitivity
	}
	cfg.Camera.InvertY = s.InvertY
	cfg.Camera.CoupleModel = s.CoupleModel
	cfg.Debug.ShowHUD = s.ShowHUD
	cfg.Debug.DrawColliders = s.DrawColliders
}

// Store reads and writes Saved through gdata. A nil Store is valid and
// never persists anything.
type Store struct {
	m   *gdata.Manager
	log logrus.FieldLogger
}

// Open initializes the gdata manager for appName.
func Open(appName string, log logrus.FieldLogger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings storage: %w", err)
	}
	return &Store{m: m, log: logging.OrDiscard(log)}, nil
}

// Load returns the saved settings, or nil when nothing was saved yet.
func (s *Store) Load() (*Saved, error) {
	if s == nil || s.m == nil {
		return nil, nil
	}

	data, err := s.m.LoadItem(itemKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved Saved
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &saved, nil
}

// Save writes saved to disk.
func (s *Store) Save(saved Saved) error {
	if s == nil || s.m == nil {
		return nil
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.m.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.log.WithField("settings", saved).Debug("settings saved")
	return nil
}
