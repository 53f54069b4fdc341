// Package polynomial implements univariate polynomials over a generic coefficient ring.
//
// A Polynomial is an immutable value: its coefficients are stored in canonical
// form (no trailing zero coefficient) from construction on, and every
// operation returns a new Polynomial backed by freshly allocated storage.
// Polynomials can therefore be shared between goroutines without
// synchronization.
package polynomial

import (
	"strings"

	"github.com/tiwo/polynomials/ring"
	"github.com/tiwo/polynomials/utils"
)

// Polynomial is a univariate polynomial c[0] + c[1]x + c[2]x^2 + ... with
// coefficients in the ring R. The zero value is not usable, polynomials must
// be created with New, Const, X, or derived from an existing Polynomial.
type Polynomial[T any] struct {
	r      ring.Ring[T]
	coeffs []T
}

// New creates a new polynomial over r from its coefficients in ascending
// degree order: New(r, 1, 2, 3) is 1+2x+3x^2. The coefficients are cloned,
// later changes to the caller's values do not affect the polynomial.
func New[T any](r ring.Ring[T], coeffs ...T) Polynomial[T] {
	c := make([]T, len(coeffs))
	for i := range coeffs {
		c[i] = ring.Clone(r, coeffs[i])
	}
	return canonical(r, c)
}

// NewFromInt64 creates a new polynomial over r from integer literals in
// ascending degree order.
func NewFromInt64[T any](r ring.Ring[T], coeffs ...int64) Polynomial[T] {
	c := make([]T, len(coeffs))
	for i := range coeffs {
		c[i] = r.FromInt64(coeffs[i])
	}
	return canonical(r, c)
}

// Const returns the constant polynomial c. The coefficient is cloned.
func Const[T any](r ring.Ring[T], c T) Polynomial[T] {
	return canonical(r, []T{ring.Clone(r, c)})
}

// Zero returns the zero polynomial over r.
func Zero[T any](r ring.Ring[T]) Polynomial[T] {
	return Polynomial[T]{r: r}
}

// One returns the constant polynomial 1 over r.
func One[T any](r ring.Ring[T]) Polynomial[T] {
	return Const(r, r.One())
}

// X returns the polynomial x over r.
func X[T any](r ring.Ring[T]) Polynomial[T] {
	return canonical(r, []T{r.Zero(), r.One()})
}

// canonical takes ownership of coeffs and strips its trailing zero coefficients.
func canonical[T any](r ring.Ring[T], coeffs []T) Polynomial[T] {
	coeffs = utils.TrimRight(coeffs, func(c T) bool { return ring.IsZero(r, c) })
	if len(coeffs) == 0 {
		coeffs = nil
	}
	return Polynomial[T]{r: r, coeffs: coeffs}
}

// Ring returns the coefficient ring of the polynomial.
func (p Polynomial[T]) Ring() ring.Ring[T] {
	return p.r
}

// Len returns the number of stored coefficients, that is Degree()+1 for a
// non-zero polynomial and 0 for the zero polynomial.
func (p Polynomial[T]) Len() int {
	return len(p.coeffs)
}

// Coeff returns the coefficient of x^i. Indexes outside of [0, Len()-1],
// negative ones included, read as zero.
// The returned value must not be modified.
func (p Polynomial[T]) Coeff(i int) T {
	if i < 0 || i >= len(p.coeffs) {
		return p.r.Zero()
	}
	return p.coeffs[i]
}

// Coeffs returns a copy of the coefficients in ascending degree order.
// The zero polynomial has no coefficient.
func (p Polynomial[T]) Coeffs() []T {
	c := make([]T, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// Degree returns the degree of the polynomial, NegInf for the zero polynomial.
func (p Polynomial[T]) Degree() Degree {
	if len(p.coeffs) == 0 {
		return NegInf
	}
	return Degree(len(p.coeffs) - 1)
}

// IsZero returns true if p is the zero polynomial.
func (p Polynomial[T]) IsZero() bool {
	return len(p.coeffs) == 0
}

// Equal returns true if p - q is the zero polynomial.
func (p Polynomial[T]) Equal(q Polynomial[T]) bool {
	return p.Sub(q).IsZero()
}

// GoString returns the polynomial as the list of its coefficients,
// for example "Polynomial([1, 2, 3])".
func (p Polynomial[T]) GoString() string {
	literals := make([]string, len(p.coeffs))
	for i, c := range p.coeffs {
		literals[i] = p.r.Literal(c)
	}
	return "Polynomial([" + strings.Join(literals, ", ") + "])"
}
