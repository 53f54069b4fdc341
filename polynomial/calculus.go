package polynomial

import (
	"fmt"
	"sync"

	"github.com/tiwo/polynomials/ring"
)

// Derivative returns the formal derivative of p: the coefficient c[e] of x^e
// becomes e*c[e] at x^(e-1) and the constant term vanishes.
func (p Polynomial[T]) Derivative() Polynomial[T] {

	if len(p.coeffs) <= 1 {
		return Zero(p.r)
	}

	coeffs := make([]T, len(p.coeffs)-1)
	for e := 1; e < len(p.coeffs); e++ {
		coeffs[e-1] = p.r.Mul(p.r.FromInt64(int64(e)), p.coeffs[e])
	}

	// e*c[e] can vanish in positive characteristic
	return canonical(p.r, coeffs)
}

// Delta returns the forward difference p(x+1) - p(x).
func (p Polynomial[T]) Delta() Polynomial[T] {
	return p.Compose(X(p.r).AddScalar(p.r.One())).Sub(p)
}

// FallingFactorial returns the falling factorial of order n,
// x(x-1)(x-2)...(x-n+1), the product of n factors. The falling factorial of
// order 0 is 1. Falling factorials are to Delta what monomials are to the
// derivative: FallingFactorial(n).Delta() = n * FallingFactorial(n-1).
func FallingFactorial[T any](r ring.Ring[T], n int) (Polynomial[T], error) {

	if n < 0 {
		return Polynomial[T]{}, fmt.Errorf("cannot FallingFactorial: %w: %d", ErrNegativeOrder, n)
	}

	x := X(r)

	result := One(r)
	for i := 0; i < n; i++ {
		result = result.Mul(x.SubScalar(r.FromInt64(int64(i))))
	}

	return result, nil
}

// FallingFactorials is a table of the falling factorials over a ring, grown
// on demand with one multiplication per new order.
// It is safe for concurrent use.
type FallingFactorials[T any] struct {
	r     ring.Ring[T]
	mutex sync.Mutex
	table []Polynomial[T]
}

// NewFallingFactorials creates a new table of falling factorials over r.
func NewFallingFactorials[T any](r ring.Ring[T]) *FallingFactorials[T] {
	return &FallingFactorials[T]{r: r, table: []Polynomial[T]{One(r)}}
}

// Get returns the falling factorial of order n.
func (f *FallingFactorials[T]) Get(n int) (Polynomial[T], error) {

	if n < 0 {
		return Polynomial[T]{}, fmt.Errorf("cannot Get: %w: %d", ErrNegativeOrder, n)
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	x := X(f.r)
	for i := len(f.table) - 1; i < n; i++ {
		f.table = append(f.table, f.table[i].Mul(x.SubScalar(f.r.FromInt64(int64(i)))))
	}

	return f.table[n], nil
}

// Len returns the number of falling factorials computed so far.
func (f *FallingFactorials[T]) Len() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return len(f.table)
}
