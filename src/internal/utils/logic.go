package utils

import "strings"

// Gate is a two-input boolean function.
type Gate func(a, b bool) bool

// And returns a && b.
func And(a, b bool) bool { return a && b }

// Nand returns !(a && b).
func Nand(a, b bool) bool { return !(a && b) }

// Or returns a || b.
func Or(a, b bool) bool { return a || b }

// Nor returns !(a || b).
func Nor(a, b bool) bool { return !(a || b) }

// Xor returns true if exactly one of a and b is true.
func Xor(a, b bool) bool { return a != b }

// Xnor returns true if a and b are equal.
func Xnor(a, b bool) bool { return a == b }

var gates = map[string]Gate{
	"and":  And,
	"nand": Nand,
	"or":   Or,
	"nor":  Nor,
	"xor":  Xor,
	"xnor": Xnor,
}

// GateByName looks up a gate by its case-insensitive name.
func GateByName(name string) (Gate, bool) {
	g, ok := gates[strings.ToLower(name)]
	return g, ok
}
