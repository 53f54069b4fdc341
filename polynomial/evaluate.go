package polynomial

import (
	"github.com/tiwo/polynomials/ring"
)

// Evaluate returns p(x), where x is an element of an algebra over the
// coefficient ring of p, using Horner's rule:
//
//	p(x) = (...((c[n] * x + c[n-1]) * x + c[n-2]) ...) * x + c[0]
//
// The fold starts from the zero of the algebra. With the coefficient ring
// itself as algebra (ring.Self) this is the evaluation at a scalar, with the
// polynomial ring (NewRing) it is the substitution of a polynomial for x.
func Evaluate[T, V any](p Polynomial[T], x V, a ring.Algebra[T, V]) (y V) {
	y = a.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = a.Add(a.Mul(y, x), a.Embed(p.coeffs[i]))
	}
	return
}

// Evaluate returns p(x) for x in the coefficient ring.
func (p Polynomial[T]) Evaluate(x T) T {
	return Evaluate(p, x, ring.Self(p.r))
}

// Compose returns p(q), the polynomial obtained by substituting q for x in p.
func (p Polynomial[T]) Compose(q Polynomial[T]) Polynomial[T] {
	return Evaluate[T, Polynomial[T]](p, q, NewRing(p.r))
}
