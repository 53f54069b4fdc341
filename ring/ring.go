// Package ring implements the coefficient rings over which polynomials are built.
//
// A ring is a stateless (or read-only after construction) value that carries
// the arithmetic of its elements, so that elements can be plain Go values such
// as int64 or *big.Rat. Every operation allocates its result and never
// modifies its operands.
package ring

// Ring is the arithmetic capability of a commutative ring with identity.
type Ring[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// FromInt64 returns the image of the integer literal v in the ring.
	FromInt64(v int64) T

	Add(a, b T) T
	Neg(a T) T
	Mul(a, b T) T
	Equal(a, b T) bool

	// Sign returns -1, 0 or +1 depending on whether a renders as a negative,
	// zero or positive literal. Rings without an order return +1 for every
	// non-zero element.
	Sign(a T) int
	// Literal returns the textual form of a. Negative elements carry their own
	// leading minus sign.
	Literal(a T) string
}

// Algebra is a ring V together with the embedding of the coefficient ring T into V.
// It is the capability needed to evaluate a polynomial over T at a point of V.
type Algebra[T, V any] interface {
	Ring[V]
	Embed(c T) V
}

// Self returns r viewed as an algebra over itself, with the identity embedding.
func Self[T any](r Ring[T]) Algebra[T, T] {
	return self[T]{Ring: r}
}

type self[T any] struct {
	Ring[T]
}

func (s self[T]) Embed(c T) T {
	return c
}

// IsZero returns true if a is the additive identity of r.
func IsZero[T any](r Ring[T], a T) bool {
	return r.Equal(a, r.Zero())
}

// IsOne returns true if a is the multiplicative identity of r.
func IsOne[T any](r Ring[T], a T) bool {
	return r.Equal(a, r.One())
}

// IsMinusOne returns true if a is the additive inverse of the multiplicative identity of r.
func IsMinusOne[T any](r Ring[T], a T) bool {
	return r.Equal(a, r.Neg(r.One()))
}

// Clone returns a fresh element equal to a, which shares no memory with a
// for rings whose elements are pointers.
func Clone[T any](r Ring[T], a T) T {
	return r.Add(a, r.Zero())
}

// Sub returns a - b.
func Sub[T any](r Ring[T], a, b T) T {
	return r.Add(a, r.Neg(b))
}
