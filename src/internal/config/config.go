package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/engutil/src/internal/errors"
	"github.com/maksimkurb/engutil/src/internal/lifecycle"
	"github.com/maksimkurb/engutil/src/internal/log"
)

// DefaultConfigPath is used when no -config flag is given.
const DefaultConfigPath = "engutil.toml"

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Verbosity:    log.LevelNormal,
			DefaultColor: log.DefaultColor,
		},
		App: AppConfig{
			Mode: lifecycle.ModeProduction,
		},
	}
}

// LoadConfig reads the TOML file at configPath. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, errors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.NewConfigError(fmt.Sprintf("configuration file not found: %s", configFile), err)
		}
		return nil, errors.NewConfigError("failed to read config file", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(content, config); err != nil {
		var derr *toml.DecodeError
		if stderrors.As(err, &derr) {
			row, col := derr.Position()
			return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file at line %d, column %d", row, col), err)
		}
		return nil, errors.NewConfigError("failed to parse config file", err)
	}

	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)

	return config, nil
}

// LoadConfigOrDefault loads configPath, falling back to DefaultConfig if the
// file does not exist. Any other error is returned.
func LoadConfigOrDefault(configPath string) (*Config, error) {
	cfg, err := LoadConfig(configPath)
	if err == nil {
		return cfg, nil
	}
	if !stderrors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	log.Debugf("Configuration file %s not found, using defaults", configPath)
	cfg = DefaultConfig()
	if err := cfg.SetConfigFilePath(configPath); err != nil {
		return nil, errors.NewConfigError("failed to get absolute path", err)
	}
	return cfg, nil
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, errors.NewConfigError("failed to serialize config", err)
	}
	return &buf, nil
}

func (c *Config) WriteConfig() error {
	if c._absConfigFilePath == "" {
		return errors.NewConfigError("config file path is not set", nil)
	}
	config, err := c.SerializeConfig()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c._absConfigFilePath, config.Bytes(), 0644); err != nil {
		return errors.NewConfigError("failed to write config file", err)
	}
	return nil
}

// Apply builds a logger from the log section. When a log file is configured
// every message, errors included, is appended to it.
func (c *Config) Apply() (*log.Logger, error) {
	var logger *log.Logger

	if path := c.GetAbsLogFilePath(); path != "" {
		console, err := log.OpenFileConsole(path)
		if err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("failed to open log file %s", path), err)
		}
		logger = log.New(console, c.Log.Verbosity)
	} else {
		logger = log.NewStd(c.Log.Verbosity, c.Log.ForceStdErr)
	}

	logger.SetDefaultColor(c.Log.DefaultColor)
	if c.Log.Disabled {
		logger.Disable()
	}

	return logger, nil
}
