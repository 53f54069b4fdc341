package polynomial

import (
	"fmt"

	"github.com/tiwo/polynomials/ring"
)

// Ring is the ring of polynomials over a coefficient ring. It implements
// ring.Algebra[T, Polynomial[T]]: polynomials can be used as evaluation
// points of other polynomials (composition) and as coefficients themselves.
//
// Used as a coefficient ring, its elements render in the variable of the
// ring's Format. The outer polynomial renders in its own Format, so nested
// polynomials should use distinct variables to stay unambiguous.
type Ring[T any] struct {
	base   ring.Ring[T]
	format Format
}

// NewRing returns the ring of polynomials with coefficients in base,
// rendering its elements with DefaultFormat.
func NewRing[T any](base ring.Ring[T]) Ring[T] {
	return Ring[T]{base: base, format: DefaultFormat}
}

// WithFormat returns a copy of the ring rendering its elements with f.
func (r Ring[T]) WithFormat(f Format) Ring[T] {
	r.format = f
	return r
}

// ElementFormat returns the format used to render the elements of the ring.
func (r Ring[T]) ElementFormat() Format {
	if r.format.variable == "" {
		return DefaultFormat
	}
	return r.format
}

// Base returns the coefficient ring.
func (r Ring[T]) Base() ring.Ring[T] {
	return r.base
}

// X returns the polynomial x.
func (r Ring[T]) X() Polynomial[T] {
	return X(r.base)
}

func (r Ring[T]) Zero() Polynomial[T] {
	return Zero(r.base)
}

func (r Ring[T]) One() Polynomial[T] {
	return One(r.base)
}

func (r Ring[T]) FromInt64(v int64) Polynomial[T] {
	return Const(r.base, r.base.FromInt64(v))
}

func (r Ring[T]) Add(a, b Polynomial[T]) Polynomial[T] {
	return a.Add(b)
}

func (r Ring[T]) Neg(a Polynomial[T]) Polynomial[T] {
	return a.Neg()
}

func (r Ring[T]) Mul(a, b Polynomial[T]) Polynomial[T] {
	return a.Mul(b)
}

func (r Ring[T]) Equal(a, b Polynomial[T]) bool {
	return a.Equal(b)
}

// Sign returns the sign of the coefficient of a monomial, 0 for the zero
// polynomial and +1 for any polynomial with more than one term, whose literal
// is parenthesized.
func (r Ring[T]) Sign(a Polynomial[T]) int {
	switch terms := r.terms(a); {
	case terms == 0:
		return 0
	case terms == 1:
		return r.base.Sign(a.coeffs[len(a.coeffs)-1])
	default:
		return 1
	}
}

// Literal returns the rendering of a, in parentheses when it has more than one term.
func (r Ring[T]) Literal(a Polynomial[T]) string {
	if r.terms(a) > 1 {
		return "(" + a.Render(r.ElementFormat()) + ")"
	}
	return a.Render(r.ElementFormat())
}

func (r Ring[T]) terms(a Polynomial[T]) (n int) {
	for _, c := range a.coeffs {
		if !ring.IsZero(r.base, c) {
			n++
		}
	}
	return
}

// Embed returns the constant polynomial c.
func (r Ring[T]) Embed(c T) Polynomial[T] {
	return Const(r.base, c)
}

// Coerce converts v to a polynomial over the base ring:
//   - nil is the zero polynomial;
//   - a Polynomial[T] is returned as is;
//   - a []T, []int or []int64 is a sequence of coefficients in ascending degree order;
//   - a T, int or int64 is a constant polynomial.
//
// Any other value returns an error wrapping ErrInvalidOperand.
func (r Ring[T]) Coerce(v any) (Polynomial[T], error) {
	switch v := v.(type) {
	case nil:
		return r.Zero(), nil
	case Polynomial[T]:
		return v, nil
	case []T:
		return New(r.base, v...), nil
	case T:
		return Const(r.base, v), nil
	case []int64:
		return NewFromInt64(r.base, v...), nil
	case []int:
		coeffs := make([]int64, len(v))
		for i := range v {
			coeffs[i] = int64(v[i])
		}
		return NewFromInt64(r.base, coeffs...), nil
	case int64:
		return r.FromInt64(v), nil
	case int:
		return r.FromInt64(int64(v)), nil
	default:
		return Polynomial[T]{}, fmt.Errorf("cannot Coerce: %w: %T is neither a coefficient nor a sequence of coefficients", ErrInvalidOperand, v)
	}
}
