// Package config handles configuration file parsing and validation for engutil.
//
// The configuration is a small TOML file controlling the logger and the way
// the host application is terminated. Every key is optional: values missing
// from the file keep their defaults.
//
// # Configuration Structure
//
//	[log]
//	verbosity = 1          # 0 = quiet, 1 = normal, 2 = debug
//	default_color = "red"  # color name or hex (#rgb, #rrggbb)
//	force_stderr = false
//	disabled = false
//	file = ""              # optional, relative to the config directory
//
//	[app]
//	mode = "production"    # production, signal or interactive
//
// # Example Usage
//
//	cfg, err := config.LoadConfigOrDefault("engutil.toml")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	logger, err := cfg.Apply()
package config
