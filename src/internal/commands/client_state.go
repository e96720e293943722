package commands

import "github.com/maksimkurb/engutil/src/internal/utils"

func CreateClientStateCommand() *ClientStateCommand {
	return &ClientStateCommand{baseCommand: newBaseCommand("client-state")}
}

// ClientStateCommand prints the name of a networking client state code.
type ClientStateCommand struct {
	baseCommand
	state int
}

func (g *ClientStateCommand) Init(args []string, ctx *AppContext) error {
	if err := g.parse(args, ctx, 1, 1); err != nil {
		return err
	}

	var err error
	g.state, err = parseInt("state", g.fs.Arg(0))
	return err
}

func (g *ClientStateCommand) Run() error {
	return g.println(utils.ClientStateToString(g.state))
}
