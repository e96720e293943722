package commands

import (
	"strings"

	"github.com/maksimkurb/engutil/src/internal/errors"
	"github.com/maksimkurb/engutil/src/internal/lifecycle"
)

func CreateQuitCommand() *QuitCommand {
	return &QuitCommand{baseCommand: newBaseCommand("quit")}
}

// QuitCommand terminates the host the way app.mode describes, logging an
// optional message first.
type QuitCommand struct {
	baseCommand
}

func (g *QuitCommand) Init(args []string, ctx *AppContext) error {
	if err := g.parse(args, ctx, 0, -1); err != nil {
		return err
	}
	if ctx.Terminator == nil {
		return errors.NewNilObjectError("quit: terminator")
	}
	return nil
}

func (g *QuitCommand) Run() error {
	return lifecycle.QuitApplication(g.logger(), g.ctx.Terminator, strings.Join(g.fs.Args(), " "))
}
