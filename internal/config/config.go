// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/hy4ri/tabtodo/internal/todo"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "TABTODO_CONFIG"

const appDirName = "tabtodo"

// Config represents the application configuration.
type Config struct {
	UI            UIConfig            `yaml:"ui"`
	Theme         ThemeConfig         `yaml:"theme"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Log           LogConfig           `yaml:"log"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	StartTab  string `yaml:"start_tab"` // "home", "work" or "personal"
	ShowHints bool   `yaml:"show_hints"`
	Mouse     bool   `yaml:"mouse"`
}

// ThemeConfig holds the background color painted behind each tab.
// Values are "#RRGGBB" or an ANSI color number.
type ThemeConfig struct {
	Home     string `yaml:"home"`
	Work     string `yaml:"work"`
	Personal string `yaml:"personal"`
}

// NotificationsConfig controls desktop notifications.
type NotificationsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Level string `yaml:"level"`
	// File defaults to tabtodo.log in the config directory.
	File string `yaml:"file,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			StartTab:  "home",
			ShowHints: true,
			Mouse:     true,
		},
		Theme: ThemeConfig{
			Home:     "#8B0000",
			Work:     "#006400",
			Personal: "#00008B",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(homeDir, ".config")
	}

	configDir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
// TABTODO_CONFIG takes precedence over the default location.
func ConfigPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates the configuration at path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the configuration to path.
func SaveTo(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Owner read/write only
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func validColor(c string) bool {
	if hexColor.MatchString(c) {
		return true
	}
	n, err := strconv.Atoi(c)
	return err == nil && n >= 0 && n <= 255
}

// Validate checks that every value can be used as-is.
func (c *Config) Validate() error {
	if _, err := todo.ParseTab(c.UI.StartTab); err != nil {
		return fmt.Errorf("ui.start_tab: %w", err)
	}

	colors := []struct {
		key, value string
	}{
		{"theme.home", c.Theme.Home},
		{"theme.work", c.Theme.Work},
		{"theme.personal", c.Theme.Personal},
	}
	for _, col := range colors {
		if !validColor(col.value) {
			return fmt.Errorf("%s: invalid color %q", col.key, col.value)
		}
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// StartTab returns the tab to open on startup, Home if unset or invalid.
func (c *Config) StartTab() todo.Tab {
	tab, err := todo.ParseTab(c.UI.StartTab)
	if err != nil {
		return todo.Home
	}
	return tab
}

// TabColor returns the configured background color for tab.
func (c *Config) TabColor(tab todo.Tab) string {
	switch tab {
	case todo.Work:
		return c.Theme.Work
	case todo.Personal:
		return c.Theme.Personal
	default:
		return c.Theme.Home
	}
}

// LogPath returns the log file path, falling back to the config directory.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName+".log"), nil
}
