// Package config provides configuration loading and defaults for the
// dock-status server.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultPollInterval = time.Second

// ServerConfig holds settings for the local HTTP listener.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// DockConfig holds connection details for the dock's status endpoint.
type DockConfig struct {
	// URL is the dock base URL; /status is appended when missing.
	URL string `yaml:"url"`
	// PollIntervalMS is the refresh period of the polling loop in milliseconds.
	PollIntervalMS int `yaml:"poll_interval_ms"`
	// Timeout is the HTTP request timeout in seconds. Zero disables it.
	Timeout int `yaml:"timeout"`
}

// PollInterval returns the polling period, falling back to one second when
// PollIntervalMS is zero or negative.
func (d DockConfig) PollInterval() time.Duration {
	if d.PollIntervalMS <= 0 {
		return defaultPollInterval
	}
	return time.Duration(d.PollIntervalMS) * time.Millisecond
}

// LogConfig controls the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is json or console.
	Format string `yaml:"format"`
}

// Config is the top-level configuration structure for the dock-status server.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Dock   DockConfig   `yaml:"dock"`
	Log    LogConfig    `yaml:"log"`
}

// LoadConfig reads and parses a YAML configuration file from the given path.
// Keys absent from the file keep their DefaultConfig values. On error, nil is
// returned for the config pointer.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a new Config populated with default values.
// Each call returns a distinct instance.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Dock: DockConfig{
			URL:            "http://10.0.0.3:5005",
			PollIntervalMS: 1000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// ApplyEnvOverrides updates cfg in place with values from environment variables.
// Recognized variables:
//   - DOCK_STATUS_URL overrides cfg.Dock.URL
//   - DOCK_STATUS_LOG_LEVEL overrides cfg.Log.Level
func ApplyEnvOverrides(cfg *Config) {
	if url := os.Getenv("DOCK_STATUS_URL"); url != "" {
		cfg.Dock.URL = url
	}
	if level := os.Getenv("DOCK_STATUS_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
}
