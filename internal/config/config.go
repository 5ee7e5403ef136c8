// Package config provides YAML-based configuration loading for tui-flow.
package config

import "fmt"

// FlowConfig contains all configuration for the Flow binary.
type FlowConfig struct {
	Levels  LevelsConfig  `yaml:"levels"`
	Display DisplayConfig `yaml:"display"`
	Records RecordsConfig `yaml:"records"`
	Server  ServerConfig  `yaml:"server"`
}

// LevelsConfig selects the level pack.
type LevelsConfig struct {
	Dir   string `yaml:"dir"`   // Directory of level files; empty uses the built-in pack
	Start string `yaml:"start"` // Level id to open first
}

// DisplayConfig controls how the board is drawn.
type DisplayConfig struct {
	Theme    Theme `yaml:"theme"`
	ShowHelp bool  `yaml:"show_help"`
}

// RecordsConfig controls the solve records store.
type RecordsConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// ServerConfig controls `flow serve`.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
	MetricsAddress     string `yaml:"metrics_address"` // Empty disables the metrics endpoint
}

// Theme names a color scheme.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeNeon    Theme = "neon"
	ThemePastel  Theme = "pastel"
	ThemeMono    Theme = "mono"
)

// Themes lists the known themes.
func Themes() []Theme {
	return []Theme{ThemeDefault, ThemeNeon, ThemePastel, ThemeMono}
}

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	for _, t := range Themes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Validate checks values that cannot be used as loaded.
func (c FlowConfig) Validate() error {
	if _, err := ParseTheme(string(c.Display.Theme)); err != nil {
		return fmt.Errorf("display.theme: %w", err)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("server.idle_timeout_minutes: must not be negative, got %d", c.Server.IdleTimeoutMinutes)
	}
	if c.Records.Enabled && c.Records.DBPath == "" {
		return fmt.Errorf("records.db_path: required when records are enabled")
	}
	return nil
}

// Overrides are command-line values that take precedence over the file.
// Empty fields leave the loaded value alone.
type Overrides struct {
	LevelsDir string
	DBPath    string
	Theme     string
	Address   string
}

// Apply merges command-line overrides into the config.
func (c *FlowConfig) Apply(o Overrides) error {
	if o.LevelsDir != "" {
		c.Levels.Dir = o.LevelsDir
	}
	if o.DBPath != "" {
		c.Records.DBPath = o.DBPath
	}
	if o.Theme != "" {
		t, err := ParseTheme(o.Theme)
		if err != nil {
			return err
		}
		c.Display.Theme = t
	}
	if o.Address != "" {
		c.Server.Address = o.Address
	}
	return nil
}
