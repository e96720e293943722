package utils

import "math"

// DefaultEpsilon is the tolerance used by the ApproxEqual methods.
const DefaultEpsilon float32 = 0.01

// Vector2 is a 2-component vector.
type Vector2 struct {
	X, Y float32
}

// Vector3 is a 3-component vector.
type Vector3 struct {
	X, Y, Z float32
}

// Vector4 is a 4-component vector.
type Vector4 struct {
	X, Y, Z, W float32
}

// Index returns component i (0 = X ... 3 = W). It panics if i is out of range.
func (v Vector4) Index(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("Vector4 index out of range")
}

// Set assigns component i (0 = X ... 3 = W). It panics if i is out of range.
func (v *Vector4) Set(i int, value float32) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	case 3:
		v.W = value
	default:
		panic("Vector4 index out of range")
	}
}

// AbsVector4 returns v with every component replaced by its absolute value.
func AbsVector4(v Vector4) Vector4 {
	ret := v
	for i := 0; i < 4; i++ {
		ret.Set(i, Abs(v.Index(i)))
	}
	return ret
}

func within(a, b, epsilon float32) bool {
	return float32(math.Abs(float64(a-b))) <= epsilon
}

// Vectors2ApproxEqual reports whether every component of a and b differs by at most epsilon.
func Vectors2ApproxEqual(a, b Vector2, epsilon float32) bool {
	return within(a.X, b.X, epsilon) && within(a.Y, b.Y, epsilon)
}

// Vectors3ApproxEqual reports whether every component of a and b differs by at most epsilon.
func Vectors3ApproxEqual(a, b Vector3, epsilon float32) bool {
	return within(a.X, b.X, epsilon) && within(a.Y, b.Y, epsilon) && within(a.Z, b.Z, epsilon)
}

// Vectors4ApproxEqual reports whether every component of a and b differs by at most epsilon.
func Vectors4ApproxEqual(a, b Vector4, epsilon float32) bool {
	return within(a.X, b.X, epsilon) && within(a.Y, b.Y, epsilon) &&
		within(a.Z, b.Z, epsilon) && within(a.W, b.W, epsilon)
}

// ApproxEqual compares v and o with DefaultEpsilon.
func (v Vector2) ApproxEqual(o Vector2) bool {
	return Vectors2ApproxEqual(v, o, DefaultEpsilon)
}

// ApproxEqual compares v and o with DefaultEpsilon.
func (v Vector3) ApproxEqual(o Vector3) bool {
	return Vectors3ApproxEqual(v, o, DefaultEpsilon)
}

// ApproxEqual compares v and o with DefaultEpsilon.
func (v Vector4) ApproxEqual(o Vector4) bool {
	return Vectors4ApproxEqual(v, o, DefaultEpsilon)
}
