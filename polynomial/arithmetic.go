package polynomial

import (
	"fmt"

	"github.com/tiwo/polynomials/utils"
)

// Add returns p + q.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	coeffs := make([]T, utils.Max(len(p.coeffs), len(q.coeffs)))
	for i := range coeffs {
		coeffs[i] = p.r.Add(p.Coeff(i), q.Coeff(i))
	}
	return canonical(p.r, coeffs)
}

// Neg returns -p.
func (p Polynomial[T]) Neg() Polynomial[T] {
	coeffs := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = p.r.Neg(c)
	}
	// -c is zero iff c is zero, the result is already canonical.
	return Polynomial[T]{r: p.r, coeffs: coeffs}
}

// Sub returns p - q.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	return p.Add(q.Neg())
}

// Mul returns p * q.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {

	coeffs := make([]T, len(p.coeffs)+len(q.coeffs))
	for i := range coeffs {
		coeffs[i] = p.r.Zero()
	}

	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			coeffs[i+j] = p.r.Add(coeffs[i+j], p.r.Mul(a, b))
		}
	}

	return canonical(p.r, coeffs)
}

// Pow returns p^e, the product of e copies of p, for a non-negative e.
// p^0 is the constant polynomial 1, zero included.
func (p Polynomial[T]) Pow(e int) (Polynomial[T], error) {

	if e < 0 {
		return Polynomial[T]{}, fmt.Errorf("cannot Pow: %w: %d", ErrNegativeExponent, e)
	}

	result := One(p.r)
	for k := 0; k < e; k++ {
		result = result.Mul(p)
	}

	return result, nil
}

// AddScalar returns p + c.
func (p Polynomial[T]) AddScalar(c T) Polynomial[T] {
	return p.Add(Const(p.r, c))
}

// SubScalar returns p - c.
func (p Polynomial[T]) SubScalar(c T) Polynomial[T] {
	return p.Sub(Const(p.r, c))
}

// ScalarSub returns c - p.
func (p Polynomial[T]) ScalarSub(c T) Polynomial[T] {
	return p.SubScalar(c).Neg()
}

// MulScalar returns c * p.
func (p Polynomial[T]) MulScalar(c T) Polynomial[T] {
	return p.Mul(Const(p.r, c))
}
