package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maksimkurb/engutil/src/internal/errors"
	"github.com/maksimkurb/engutil/src/internal/log"
	"github.com/maksimkurb/engutil/src/internal/utils"
)

// probeSamples are the values the probe command can inspect, keyed by a short name.
var probeSamples = map[string]any{
	"color":        utils.Color{},
	"color32":      utils.Color32{},
	"vector2":      utils.Vector2{},
	"vector3":      utils.Vector3{},
	"vector4":      &utils.Vector4{},
	"client-state": utils.ClientState(0),
	"logger":       &log.Logger{},
}

func CreateProbeCommand() *ProbeCommand {
	gc := &ProbeCommand{baseCommand: newBaseCommand("probe")}
	gc.fs.BoolVar(&gc.table, "table", false, "Answer from a capability table instead of reflection")
	return gc
}

// ProbeCommand reports whether a known type has a method: probe <type> <method>.
type ProbeCommand struct {
	baseCommand
	table  bool
	sample any
}

func (g *ProbeCommand) Init(args []string, ctx *AppContext) error {
	if err := g.parse(args, ctx, 2, 2); err != nil {
		return err
	}

	sample, ok := probeSamples[g.fs.Arg(0)]
	if !ok {
		names := make([]string, 0, len(probeSamples))
		for name := range probeSamples {
			names = append(names, name)
		}
		sort.Strings(names)
		return errors.NewValidationError(fmt.Sprintf("unknown type %q (known: %s)", g.fs.Arg(0), strings.Join(names, ", ")), nil)
	}
	g.sample = sample
	return nil
}

func (g *ProbeCommand) Run() error {
	method := g.fs.Arg(1)

	if g.table {
		table := utils.NewCapabilityTable()
		for _, sample := range probeSamples {
			table.RegisterType(sample)
		}
		g.logger().Debugf("Looking up %s.%s in capability table", utils.TypeName(g.sample), method)
		return g.println(table.Supports(g.sample, method))
	}

	ok, err := utils.HasMethod(g.sample, method)
	if err != nil {
		return err
	}
	return g.println(ok)
}
