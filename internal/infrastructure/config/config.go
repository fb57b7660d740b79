package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Scan      ScanConfig
	Settings  SettingsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// ScanConfig bounds directory scan work.
type ScanConfig struct {
	MaxEntries  int `envconfig:"SCAN_MAX_ENTRIES" default:"10000"`
	MimeSamples int `envconfig:"SCAN_MIME_SAMPLES" default:"200"`
}

// SettingsConfig holds settings persistence configuration.
type SettingsConfig struct {
	File string `envconfig:"SETTINGS_FILE" default:""`
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
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Scan: ScanConfig{
			MaxEntries:  10000,
			MimeSamples: 200,
		},
		Settings: SettingsConfig{
			File: "",
		},
	}
}

// SettingsPath resolves the settings file location, falling back to a
// per-user default under the OS config directory.
func (c *Config) SettingsPath() string {
	if c.Settings.File != "" {
		return c.Settings.File
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "diskwise", "settings.toml")
	}
	return filepath.Join(dir, "diskwise", "settings.toml")
}
