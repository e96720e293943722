package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/maksimkurb/engutil/src/internal/config"
	"github.com/maksimkurb/engutil/src/internal/errors"
	"github.com/maksimkurb/engutil/src/internal/lifecycle"
	"github.com/maksimkurb/engutil/src/internal/log"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool

	Config     *config.Config
	Logger     *log.Logger
	Terminator lifecycle.Terminator

	// Stdout receives command results. os.Stdout is used if nil.
	Stdout io.Writer
}

// PrepareContext loads and validates the configuration, then builds the logger
// and terminator it describes. A missing config file means defaults.
// cancel is handed to the interactive terminator.
func PrepareContext(ctx *AppContext, cancel context.CancelFunc) error {
	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	ctx.Config = cfg

	if ctx.Logger, err = cfg.Apply(); err != nil {
		return err
	}
	if ctx.Verbose {
		ctx.Logger.SetVerbosity(log.LevelDebug)
	}

	if ctx.Terminator, err = lifecycle.FromMode(cfg.App.Mode, cancel); err != nil {
		return err
	}

	return nil
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfigOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// baseCommand holds what every command shares: its flag set and the app context.
type baseCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
}

func newBaseCommand(name string) baseCommand {
	return baseCommand{fs: flag.NewFlagSet(name, flag.ExitOnError)}
}

func (b *baseCommand) Name() string {
	return b.fs.Name()
}

// parse stores ctx and parses args, requiring between minArgs and maxArgs
// positional arguments. A negative maxArgs means no upper bound.
func (b *baseCommand) parse(args []string, ctx *AppContext, minArgs, maxArgs int) error {
	b.ctx = ctx

	if err := b.fs.Parse(args); err != nil {
		return err
	}

	n := b.fs.NArg()
	if n < minArgs || (maxArgs >= 0 && n > maxArgs) {
		return errors.NewValidationError(fmt.Sprintf("%s: unexpected number of arguments: %d", b.Name(), n), nil)
	}

	return nil
}

func (b *baseCommand) out() io.Writer {
	if b.ctx != nil && b.ctx.Stdout != nil {
		return b.ctx.Stdout
	}
	return os.Stdout
}

func (b *baseCommand) logger() *log.Logger {
	if b.ctx != nil && b.ctx.Logger != nil {
		return b.ctx.Logger
	}
	return log.Default()
}

func (b *baseCommand) println(a ...interface{}) error {
	_, err := fmt.Fprintln(b.out(), a...)
	return err
}

func parseFloat32(name, value string) (float32, error) {
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s %q", name, value), err)
	}
	return float32(f), nil
}

func parseInt(name, value string) (int, error) {
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s %q", name, value), err)
	}
	return i, nil
}

func parseBool(name, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.NewValidationError(fmt.Sprintf("invalid %s %q", name, value), err)
	}
	return b, nil
}

// All returns a fresh instance of every command, in usage order.
func All() []Runner {
	return []Runner{
		CreateBlankCommand(),
		CreateRemoveCommand(),
		CreateReplaceCommand(),
		CreateFormatCommand(),
		CreateHexCommand(),
		CreateColorizeCommand(),
		CreateAngleCommand(),
		CreateWrapCommand(),
		CreateModfCommand(),
		CreateStepCommand(),
		CreateApproxCommand(),
		CreateGateCommand(),
		CreateProbeCommand(),
		CreateClientStateCommand(),
		CreateLogCommand(),
		CreateQuitCommand(),
		CreateInitConfigCommand(),
	}
}
