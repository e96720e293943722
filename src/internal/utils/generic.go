package utils

// Signed is satisfied by the signed integer and floating point types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Abs returns the absolute value of x.
func Abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Swap exchanges the values pointed to by a and b.
func Swap[T any](a, b *T) {
	*a, *b = *b, *a
}
