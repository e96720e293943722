package utils

import "math"

// ModIncrement increments *value, wrapping to 0 once it reaches modulus.
func ModIncrement(value *int, modulus int) {
	*value++
	if *value >= modulus {
		*value = 0
	}
}

// ModDecrement decrements *value, wrapping to modulus-1 once it drops below 0.
func ModDecrement(value *int, modulus int) {
	*value--
	if *value < 0 {
		*value = modulus - 1
	}
}

// WrapMod wraps the integer part of value into [0, modulus) and keeps its
// fractional part. When the wrapped integer part is 0 and the fraction is
// negative, the integer part becomes modulus instead, so WrapMod(-0.5, 360)
// is 359.5. A zero modulus returns value unchanged.
func WrapMod(value float32, modulus int) float32 {
	if modulus == 0 {
		return value
	}

	intPart := int(value)
	frac := value - float32(intPart)

	intPart %= modulus
	if intPart < 0 {
		intPart += modulus
	}
	if intPart == 0 && frac < 0 {
		intPart = modulus
	}
	return float32(intPart) + frac
}

// Modf shifts value by whole multiples of modulus until it lies in [0, modulus).
// A non-positive modulus and non-finite values are returned unchanged.
func Modf(value, modulus float32) float32 {
	if modulus <= 0 || math.IsInf(float64(value), 0) || math.IsNaN(float64(value)) {
		return value
	}

	for value < 0 {
		next := value + modulus
		if next == value {
			// modulus is below the float32 resolution at this magnitude
			return float32(positiveMod(float64(value), float64(modulus)))
		}
		value = next
	}
	for value >= modulus {
		next := value - modulus
		if next == value {
			return float32(positiveMod(float64(value), float64(modulus)))
		}
		value = next
	}
	return value
}

func positiveMod(value, modulus float64) float64 {
	m := math.Mod(value, modulus)
	if m < 0 {
		m += modulus
	}
	return m
}
