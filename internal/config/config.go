package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config holds all runtime configuration.
type Config struct {
	Settings SettingsConfig
	Shell    ShellConfig
	Logging  LogConfig
}

// SettingsConfig locates the persisted settings record.
type SettingsConfig struct {
	File string `envconfig:"WIN31_SETTINGS_FILE" default:"win31_settings.json"`
}

// ShellConfig controls the top-level window.
type ShellConfig struct {
	BootDelay  time.Duration `envconfig:"WIN31_BOOT_DELAY" default:"3s"`
	FullScreen bool          `envconfig:"WIN31_FULLSCREEN" default:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	JSON  bool   `envconfig:"WIN31_JSON_LOGS" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Settings: SettingsConfig{
			File: "win31_settings.json",
		},
		Shell: ShellConfig{
			BootDelay:  3 * time.Second,
			FullScreen: true,
		},
		Logging: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}

// ZerologLevel maps the configured level name, defaulting to info.
func (c LogConfig) ZerologLevel() zerolog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
