package models

import (
	"os"
	"sync"

	"win31-sim/internal/colors"
	"win31-sim/internal/logger"

	"github.com/bytedance/sonic"
)

// Settings is the persisted user preference record. A single instance is owned
// by the controller and handed to whoever needs to read or change it.
type Settings struct {
	mu              sync.RWMutex
	backgroundColor string
}

// SettingsSnapshot is a point-in-time copy of Settings and also the on-disk
// shape. Unknown fields are ignored on load.
type SettingsSnapshot struct {
	BackgroundColor string `json:"background_color"`
}

// DefaultSettings returns the record used when nothing usable is on disk.
func DefaultSettings() *Settings {
	return &Settings{backgroundColor: colors.DefaultBackground}
}

func (s *Settings) BackgroundColor() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backgroundColor
}

func (s *Settings) SetBackgroundColor(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backgroundColor = id
}

// Snapshot copies the current values. Safe to call from any goroutine.
func (s *Settings) Snapshot() SettingsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SettingsSnapshot{BackgroundColor: s.backgroundColor}
}

// SettingsStore reads and writes the settings record at a fixed path.
type SettingsStore struct {
	path   string
	logger logger.Logger
}

func NewSettingsStore(path string, log logger.Logger) *SettingsStore {
	return &SettingsStore{path: path, logger: log}
}

func (s *SettingsStore) Path() string {
	return s.path
}

// Load never fails. A missing, unreadable or malformed file yields defaults.
func (s *SettingsStore) Load() *Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warning("SettingsStore", "settings unreadable, using defaults", map[string]interface{}{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return DefaultSettings()
	}

	var rec SettingsSnapshot
	if err := sonic.ConfigStd.Unmarshal(data, &rec); err != nil {
		s.logger.Warning("SettingsStore", "settings malformed, using defaults", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return DefaultSettings()
	}

	if rec.BackgroundColor == "" {
		rec.BackgroundColor = colors.DefaultBackground
	}

	s.logger.Debug("SettingsStore", "settings loaded", map[string]interface{}{
		"path":             s.path,
		"background_color": rec.BackgroundColor,
	})

	return &Settings{backgroundColor: rec.BackgroundColor}
}

// Save replaces the file wholesale. No atomicity or backup is attempted.
func (s *SettingsStore) Save(settings *Settings) error {
	data, err := sonic.ConfigStd.Marshal(settings.Snapshot())
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return err
	}

	s.logger.Debug("SettingsStore", "settings saved", map[string]interface{}{
		"path": s.path,
	})
	return nil
}
