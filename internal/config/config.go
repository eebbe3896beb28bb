package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the config file looked up in the working directory
const FileName = ".toastbar.json"

// Config represents the full toastbar demo configuration
type Config struct {
	Theme     string          `json:"theme"`
	Layout    LayoutConfig    `json:"layout"`
	Animation AnimationConfig `json:"animation"`
	Log       LogConfig       `json:"log"`
}

// LayoutConfig contains screen layout settings
type LayoutConfig struct {
	RTL bool `json:"rtl"`
	// Mouse enables mouse reporting; nil means the default (on)
	Mouse *bool `json:"mouse,omitempty"`
}

// AnimationConfig tunes the toast fade spring
type AnimationConfig struct {
	FPS       int     `json:"fps"`
	Frequency float64 `json:"frequency"`
	Damping   float64 `json:"damping"`
}

// LogConfig contains log file settings
type LogConfig struct {
	File       string `json:"file"`
	Level      string `json:"level"`
	MaxSizeMB  int    `json:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups"`
}

// MouseEnabled reports whether mouse reporting is on
func (l LayoutConfig) MouseEnabled() bool {
	return l.Mouse == nil || *l.Mouse
}

// SetMouse sets mouse reporting explicitly
func (l *LayoutConfig) SetMouse(enabled bool) {
	l.Mouse = &enabled
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	mouse := true

	return &Config{
		Theme: "macchiato",
		Layout: LayoutConfig{
			RTL:   false,
			Mouse: &mouse,
		},
		Animation: AnimationConfig{
			FPS:       60,
			Frequency: 8.0,
			Damping:   1.0,
		},
		Log: LogConfig{
			File:       filepath.Join(homeDir, ".toastbar", "logs", "toastbar.log"),
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Validate checks values that defaults cannot fill in
func (c *Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "", "macchiato", "latte":
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.Animation.FPS < 0 || c.Animation.Frequency < 0 || c.Animation.Damping < 0 {
		return fmt.Errorf("animation settings must not be negative")
	}
	return nil
}

// LoadConfig loads configuration from dir with priority:
// 1. .toastbar.json in dir (with version migration support)
// 2. Defaults
//
// CLI flags are applied on top by the caller.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from an explicit path. Unlike LoadConfig a
// missing file is an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	cfg = MergeWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Theme == "" {
		cfg.Theme = defaults.Theme
	}

	// Merge Layout config
	if cfg.Layout.Mouse == nil {
		cfg.Layout.Mouse = defaults.Layout.Mouse
	}

	// Merge Animation config
	if cfg.Animation.FPS == 0 {
		cfg.Animation.FPS = defaults.Animation.FPS
	}
	if cfg.Animation.Frequency == 0 {
		cfg.Animation.Frequency = defaults.Animation.Frequency
	}
	if cfg.Animation.Damping == 0 {
		cfg.Animation.Damping = defaults.Animation.Damping
	}

	// Merge Log config
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = defaults.Log.MaxSizeMB
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = defaults.Log.MaxBackups
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
