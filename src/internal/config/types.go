package config

import (
	"path/filepath"

	"github.com/maksimkurb/engutil/src/internal/utils"
)

type Config struct {
	// Log holds logger settings.
	Log LogConfig `toml:"log" json:"log"`
	// App holds host application settings.
	App AppConfig `toml:"app" json:"app"`

	_absConfigFilePath string
}

type LogConfig struct {
	// Verbosity is the log verbosity threshold. Messages with a level above it are dropped (0 = quiet, 1 = normal, 2 = debug).
	Verbosity int `toml:"verbosity" json:"verbosity" validate:"gte=0"`
	// DefaultColor is the color used by the default debug marker. Either a markup color name or a 3/6-digit hex code with optional '#'.
	DefaultColor string `toml:"default_color" json:"default_color" validate:"required,color_name"`
	// ForceStdErr sends every message to stderr instead of stdout.
	ForceStdErr bool `toml:"force_stderr" json:"force_stderr"`
	// Disabled suppresses all log output.
	Disabled bool `toml:"disabled" json:"disabled"`
	// File appends log output to a file instead of the console (optional, relative to the config directory).
	File string `toml:"file,omitempty" json:"file,omitempty"`
}

type AppConfig struct {
	// Mode selects how the host application is terminated (production, signal or interactive).
	Mode string `toml:"mode" json:"mode" validate:"required,app_mode"`
}

func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return ""
	}
	return filepath.Dir(c._absConfigFilePath)
}

// GetConfigFilePath returns the absolute path the config was loaded from or will be written to.
func (c *Config) GetConfigFilePath() string {
	return c._absConfigFilePath
}

// SetConfigFilePath sets the path used by WriteConfig.
func (c *Config) SetConfigFilePath(path string) error {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return err
	}
	c._absConfigFilePath = abs
	return nil
}

// GetAbsLogFilePath returns the log file path resolved against the config directory,
// or "" if logging to a file is not configured.
func (c *Config) GetAbsLogFilePath() string {
	return utils.ResolvePath(c.Log.File, c.GetConfigDir())
}
