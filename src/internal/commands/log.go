package commands

import (
	"strings"

	"github.com/maksimkurb/engutil/src/internal/log"
)

func CreateLogCommand() *LogCommand {
	gc := &LogCommand{baseCommand: newBaseCommand("log")}
	gc.fs.StringVar(&gc.color, "color", log.DefaultColor, "Color name or hex code")
	gc.fs.IntVar(&gc.level, "level", log.LevelNormal, "Message level; written only if verbosity >= level")
	gc.fs.BoolVar(&gc.plain, "plain", false, "Write the message without a color tag")
	return gc
}

// LogCommand writes a message through the configured logger. Without a message
// the default debug marker is written.
type LogCommand struct {
	baseCommand
	color string
	level int
	plain bool
}

func (g *LogCommand) Init(args []string, ctx *AppContext) error {
	return g.parse(args, ctx, 0, -1)
}

func (g *LogCommand) Run() error {
	logger := g.logger()

	if g.fs.NArg() == 0 {
		logger.LogDefault()
		return nil
	}

	message := strings.Join(g.fs.Args(), " ")
	if g.plain {
		logger.LogPlain(message, g.level)
	} else {
		logger.Log(g.color, message, g.level)
	}
	return nil
}
