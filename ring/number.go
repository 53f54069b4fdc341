package ring

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Numeric is the set of built-in types usable as coefficients.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Number is the ring of a built-in numeric type, with Go's native arithmetic.
// Integer types wrap around on overflow and unsigned types have no negative
// literals, exactly as the corresponding Go operators.
type Number[T Numeric] struct{}

// Int64 is the ring of int64 coefficients.
var Int64 = Number[int64]{}

// Float64 is the ring of float64 coefficients.
var Float64 = Number[float64]{}

func (Number[T]) Zero() T {
	return 0
}

func (Number[T]) One() T {
	return 1
}

func (Number[T]) FromInt64(v int64) T {
	return T(v)
}

func (Number[T]) Add(a, b T) T {
	return a + b
}

func (Number[T]) Neg(a T) T {
	return -a
}

func (Number[T]) Mul(a, b T) T {
	return a * b
}

func (Number[T]) Equal(a, b T) bool {
	return a == b
}

func (Number[T]) Sign(a T) int {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}

// Literal formats a in decimal; floating point values use the shortest
// representation that reads back to the same value.
func (Number[T]) Literal(a T) string {
	switch v := any(a).(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	// named floating point types
	if half := T(1) / 2; half != 0 {
		return strconv.FormatFloat(float64(a), 'g', -1, 64)
	}
	if a < 0 {
		return strconv.FormatInt(int64(a), 10)
	}
	return strconv.FormatUint(uint64(a), 10)
}
