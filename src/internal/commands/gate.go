package commands

import (
	"fmt"

	"github.com/maksimkurb/engutil/src/internal/errors"
	"github.com/maksimkurb/engutil/src/internal/utils"
)

func CreateGateCommand() *GateCommand {
	return &GateCommand{baseCommand: newBaseCommand("gate")}
}

// GateCommand evaluates a boolean gate: gate <and|nand|or|nor|xor|xnor> <a> <b>.
type GateCommand struct {
	baseCommand
	gate utils.Gate
	a, b bool
}

func (g *GateCommand) Init(args []string, ctx *AppContext) error {
	if err := g.parse(args, ctx, 3, 3); err != nil {
		return err
	}

	gate, ok := utils.GateByName(g.fs.Arg(0))
	if !ok {
		return errors.NewValidationError(fmt.Sprintf("unknown gate %q", g.fs.Arg(0)), nil)
	}
	g.gate = gate

	var err error
	if g.a, err = parseBool("input", g.fs.Arg(1)); err != nil {
		return err
	}
	if g.b, err = parseBool("input", g.fs.Arg(2)); err != nil {
		return err
	}
	return nil
}

func (g *GateCommand) Run() error {
	return g.println(g.gate(g.a, g.b))
}
