package commands

import (
	"strings"

	"github.com/maksimkurb/engutil/src/internal/utils"
)

func CreateBlankCommand() *BlankCommand {
	return &BlankCommand{baseCommand: newBaseCommand("blank")}
}

// BlankCommand prints whether its argument is blank. No argument is treated
// as an absent string.
type BlankCommand struct {
	baseCommand
	text *string
}

func (g *BlankCommand) Init(args []string, ctx *AppContext) error {
	if err := g.parse(args, ctx, 0, 1); err != nil {
		return err
	}
	if g.fs.NArg() == 1 {
		text := g.fs.Arg(0)
		g.text = &text
	}
	return nil
}

func (g *BlankCommand) Run() error {
	return g.println(utils.IsBlank(g.text))
}

func CreateRemoveCommand() *RemoveCommand {
	gc := &RemoveCommand{baseCommand: newBaseCommand("remove")}
	gc.fs.StringVar(&gc.chars, "chars", "", "Characters to remove")
	return gc
}

// RemoveCommand deletes every occurrence of the given characters.
type RemoveCommand struct {
	baseCommand
	chars string
}

func (g *RemoveCommand) Init(args []string, ctx *AppContext) error {
	return g.parse(args, ctx, 1, 1)
}

func (g *RemoveCommand) Run() error {
	return g.println(utils.RemoveChars(g.fs.Arg(0), g.chars))
}

func CreateReplaceCommand() *ReplaceCommand {
	return &ReplaceCommand{baseCommand: newBaseCommand("replace")}
}

// ReplaceCommand replaces the first occurrence of a substring: replace <text> <old> <new>.
type ReplaceCommand struct {
	baseCommand
}

func (g *ReplaceCommand) Init(args []string, ctx *AppContext) error {
	return g.parse(args, ctx, 3, 3)
}

func (g *ReplaceCommand) Run() error {
	return g.println(utils.ReplaceFirst(g.fs.Arg(0), g.fs.Arg(1), g.fs.Arg(2)))
}

func CreateFormatCommand() *FormatCommand {
	gc := &FormatCommand{baseCommand: newBaseCommand("format")}
	gc.fs.BoolVar(&gc.null, "null", false, "Format an absent array")
	gc.fs.StringVar(&gc.sep, "split", "", "Split a single argument on this separator instead of using one item per argument")
	return gc
}

// FormatCommand prints its arguments as an array.
type FormatCommand struct {
	baseCommand
	null bool
	sep  string
}

func (g *FormatCommand) Init(args []string, ctx *AppContext) error {
	return g.parse(args, ctx, 0, -1)
}

func (g *FormatCommand) Run() error {
	if g.null {
		return g.println(utils.FormatArray[string](nil))
	}

	items := g.fs.Args()
	if g.sep != "" && len(items) == 1 {
		items = strings.Split(items[0], g.sep)
	}
	if items == nil {
		items = []string{}
	}
	return g.println(utils.FormatArray(items))
}
