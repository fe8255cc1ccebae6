// Package config loads widget settings from TOML or YAML files. A
// missing file is not an error; callers get the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable widget settings.
type Config struct {
	// MaxHeight caps visible body lines; 0 means unlimited.
	MaxHeight int `toml:"max_height" yaml:"max_height"`
	// TabWidth is the indentation stop width.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`
	// Decorations selects the decoration preset: "classic" or "none".
	Decorations string `toml:"decorations" yaml:"decorations"`
	// Keymap is the path of a Lua keymap script; empty uses the normal
	// bindings.
	Keymap string `toml:"keymap" yaml:"keymap"`
	// LogFile enables session logging to the given path.
	LogFile string `toml:"log_file" yaml:"log_file"`
	// LogLevel is the minimum level logged: debug, info, warn, error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the settings used when no file overrides them.
func Default() Config {
	return Config{
		TabWidth:    4,
		Decorations: "classic",
		LogLevel:    "info",
	}
}

// Load reads the config file at path, chosen by extension (.toml, .yaml,
// .yml). A nonexistent file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg.normalize(), nil
}

// normalize clamps nonsense values back to usable ones.
func (c Config) normalize() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = Default().TabWidth
	}
	if c.MaxHeight < 0 {
		c.MaxHeight = 0
	}
	if c.Decorations == "" {
		c.Decorations = Default().Decorations
	}
	if c.LogLevel == "" {
		c.LogLevel = Default().LogLevel
	}
	return c
}

// ParseLogLevel maps a config string onto a log level index understood
// by the editor: 0 debug, 1 info, 2 warn, 3 error.
func ParseLogLevel(s string) int {
	switch strings.ToLower(s) {
	case "debug":
		return 0
	case "warn", "warning":
		return 2
	case "error":
		return 3
	default:
		return 1
	}
}
