package commands

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/maksimkurb/engutil/src/internal/config"
	"github.com/maksimkurb/engutil/src/internal/errors"
)

func CreateInitConfigCommand() *InitConfigCommand {
	gc := &InitConfigCommand{baseCommand: newBaseCommand("init-config")}
	gc.fs.BoolVar(&gc.force, "force", false, "Overwrite an existing configuration file")
	return gc
}

// InitConfigCommand writes the default configuration to the config path.
type InitConfigCommand struct {
	baseCommand
	force bool
}

func (g *InitConfigCommand) Init(args []string, ctx *AppContext) error {
	return g.parse(args, ctx, 0, 0)
}

func (g *InitConfigCommand) Run() error {
	path := g.ctx.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath
	}

	if _, err := os.Stat(path); err == nil && !g.force {
		return errors.NewConfigError(fmt.Sprintf("configuration file already exists: %s (use -force to overwrite)", path), nil)
	} else if err != nil && !stderrors.Is(err, os.ErrNotExist) {
		return errors.NewConfigError("failed to check configuration file", err)
	}

	cfg := config.DefaultConfig()
	if err := cfg.SetConfigFilePath(path); err != nil {
		return errors.NewConfigError("failed to get absolute path", err)
	}
	if err := cfg.WriteConfig(); err != nil {
		return err
	}

	g.logger().Infof("Configuration written to %s", cfg.GetConfigFilePath())
	return nil
}
