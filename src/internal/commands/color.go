package commands

import (
	"fmt"

	"github.com/maksimkurb/engutil/src/internal/utils"
)

func CreateHexCommand() *HexCommand {
	gc := &HexCommand{baseCommand: newBaseCommand("hex")}
	gc.fs.BoolVar(&gc.rgb, "rgb", false, "Print the decoded channels instead of the expanded code")
	return gc
}

// HexCommand expands a 3-digit hex color.
type HexCommand struct {
	baseCommand
	rgb bool
}

func (g *HexCommand) Init(args []string, ctx *AppContext) error {
	return g.parse(args, ctx, 1, 1)
}

func (g *HexCommand) Run() error {
	if !g.rgb {
		return g.println(utils.ExpandHexShorthand(g.fs.Arg(0)))
	}

	c, err := utils.ParseHexColor(g.fs.Arg(0))
	if err != nil {
		return err
	}
	return g.println(fmt.Sprintf("%d %d %d", c.R, c.G, c.B))
}

func CreateColorizeCommand() *ColorizeCommand {
	gc := &ColorizeCommand{baseCommand: newBaseCommand("colorize")}
	gc.fs.StringVar(&gc.color, "color", "#ff0000", "Hex color (#rgb or #rrggbb)")
	return gc
}

// ColorizeCommand wraps text in a color markup tag.
type ColorizeCommand struct {
	baseCommand
	color string
	c     utils.Color32
}

func (g *ColorizeCommand) Init(args []string, ctx *AppContext) error {
	if err := g.parse(args, ctx, 1, 1); err != nil {
		return err
	}

	c, err := utils.ParseHexColor(g.color)
	if err != nil {
		return err
	}
	g.c = c
	return nil
}

func (g *ColorizeCommand) Run() error {
	return g.println(utils.ColorizeText(g.fs.Arg(0), g.c))
}
