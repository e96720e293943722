package commands

import (
	"fmt"

	"github.com/maksimkurb/engutil/src/internal/utils"
)

func CreateAngleCommand() *AngleCommand {
	return &AngleCommand{baseCommand: newBaseCommand("angle")}
}

// AngleCommand prints the minimal signed angle between two angles, or between
// two Euler angle triples: angle <from> <to> | angle <fx> <fy> <fz> <tx> <ty> <tz>.
type AngleCommand struct {
	baseCommand
	values []float32
}

func (g *AngleCommand) Init(args []string, ctx *AppContext) error {
	if err := g.parse(args, ctx, 2, 6); err != nil {
		return err
	}
	if g.fs.NArg() != 2 && g.fs.NArg() != 6 {
		return fmt.Errorf("angle: expected 2 or 6 arguments, got %d", g.fs.NArg())
	}

	g.values = make([]float32, 0, g.fs.NArg())
	for _, arg := range g.fs.Args() {
		v, err := parseFloat32("angle", arg)
		if err != nil {
			return err
		}
		g.values = append(g.values, v)
	}
	return nil
}

func (g *AngleCommand) Run() error {
	v := g.values
	if len(v) == 2 {
		return g.println(utils.MinAngleBetween(v[0], v[1]))
	}

	d := utils.MinAngleVectorBetween(utils.Vector3{X: v[0], Y: v[1], Z: v[2]}, utils.Vector3{X: v[3], Y: v[4], Z: v[5]})
	return g.println(d.X, d.Y, d.Z)
}

func CreateWrapCommand() *WrapCommand {
	return &WrapCommand{baseCommand: newBaseCommand("wrap")}
}

// WrapCommand wraps a value into [0, modulus) keeping its fraction: wrap <value> <modulus>.
type WrapCommand struct {
	baseCommand
	value   float32
	modulus int
}

func (g *WrapCommand) Init(args []string, ctx *AppContext) error {
	if err := g.parse(args, ctx, 2, 2); err != nil {
		return err
	}

	var err error
	if g.value, err = parseFloat32("value", g.fs.Arg(0)); err != nil {
		return err
	}
	if g.modulus, err = parseInt("modulus", g.fs.Arg(1)); err != nil {
		return err
	}
	return nil
}

func (g *WrapCommand) Run() error {
	return g.println(utils.WrapMod(g.value, g.modulus))
}

func CreateModfCommand() *ModfCommand {
	return &ModfCommand{baseCommand: newBaseCommand("modf")}
}

// ModfCommand computes a floating point modulus in [0, modulus): modf <value> <modulus>.
type ModfCommand struct {
	baseCommand
	value   float32
	modulus float32
}

func (g *ModfCommand) Init(args []string, ctx *AppContext) error {
	if err := g.parse(args, ctx, 2, 2); err != nil {
		return err
	}

	var err error
	if g.value, err = parseFloat32("value", g.fs.Arg(0)); err != nil {
		return err
	}
	if g.modulus, err = parseFloat32("modulus", g.fs.Arg(1)); err != nil {
		return err
	}
	return nil
}

func (g *ModfCommand) Run() error {
	return g.println(utils.Modf(g.value, g.modulus))
}

func CreateStepCommand() *StepCommand {
	gc := &StepCommand{baseCommand: newBaseCommand("step")}
	gc.fs.IntVar(&gc.count, "n", 1, "Number of steps; negative steps backwards")
	return gc
}

// StepCommand moves a cyclic index forwards or backwards: step [-n count] <value> <modulus>.
type StepCommand struct {
	baseCommand
	count   int
	value   int
	modulus int
}

func (g *StepCommand) Init(args []string, ctx *AppContext) error {
	if err := g.parse(args, ctx, 2, 2); err != nil {
		return err
	}

	var err error
	if g.value, err = parseInt("value", g.fs.Arg(0)); err != nil {
		return err
	}
	if g.modulus, err = parseInt("modulus", g.fs.Arg(1)); err != nil {
		return err
	}
	return nil
}

func (g *StepCommand) Run() error {
	value := g.value
	remaining := utils.Abs(g.count)
	for remaining > 0 {
		if g.modulus > 0 && value >= 0 && value < g.modulus {
			// a full cycle of steps from an in-range value is a no-op
			remaining %= g.modulus
			if remaining == 0 {
				break
			}
		}
		if g.count > 0 {
			utils.ModIncrement(&value, g.modulus)
		} else {
			utils.ModDecrement(&value, g.modulus)
		}
		remaining--
	}
	return g.println(value)
}

func CreateApproxCommand() *ApproxCommand {
	gc := &ApproxCommand{baseCommand: newBaseCommand("approx")}
	gc.fs.Float64Var(&gc.epsilon, "epsilon", float64(utils.DefaultEpsilon), "Per-component tolerance")
	gc.fs.BoolVar(&gc.abs, "abs", false, "Compare absolute values")
	return gc
}

// ApproxCommand compares two vectors of equal size (2, 3 or 4 components) within
// a tolerance: approx <a...> <b...>.
type ApproxCommand struct {
	baseCommand
	epsilon float64
	abs     bool
	a, b    utils.Vector4
	size    int
}

func (g *ApproxCommand) Init(args []string, ctx *AppContext) error {
	if err := g.parse(args, ctx, 4, 8); err != nil {
		return err
	}

	n := g.fs.NArg()
	if n%2 != 0 || n/2 < 2 {
		return fmt.Errorf("approx: expected 4, 6 or 8 arguments, got %d", n)
	}
	g.size = n / 2

	for i, arg := range g.fs.Args() {
		v, err := parseFloat32("component", arg)
		if err != nil {
			return err
		}
		if i < g.size {
			g.a.Set(i, v)
		} else {
			g.b.Set(i-g.size, v)
		}
	}
	return nil
}

func (g *ApproxCommand) Run() error {
	a, b := g.a, g.b
	if g.abs {
		a, b = utils.AbsVector4(a), utils.AbsVector4(b)
	}
	eps := float32(g.epsilon)

	var equal bool
	switch g.size {
	case 2:
		equal = utils.Vectors2ApproxEqual(utils.Vector2{X: a.X, Y: a.Y}, utils.Vector2{X: b.X, Y: b.Y}, eps)
	case 3:
		equal = utils.Vectors3ApproxEqual(utils.Vector3{X: a.X, Y: a.Y, Z: a.Z}, utils.Vector3{X: b.X, Y: b.Y, Z: b.Z}, eps)
	default:
		equal = utils.Vectors4ApproxEqual(a, b, eps)
	}
	return g.println(equal)
}
