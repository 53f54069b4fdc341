package polynomial

import (
	"fmt"

	"github.com/tiwo/polynomials/ring"
	"github.com/tiwo/polynomials/utils/sampling"
)

// Sampler samples polynomials with integer coefficients drawn uniformly in
// [-bound, bound] and mapped into the ring.
type Sampler[T any] struct {
	prng  sampling.PRNG
	r     ring.Ring[T]
	bound int64
}

// NewSampler creates a new Sampler reading its randomness from prng.
// A KeyedPRNG makes the sequence of sampled polynomials reproducible.
func NewSampler[T any](prng sampling.PRNG, r ring.Ring[T], bound int64) (*Sampler[T], error) {
	if bound < 1 {
		return nil, fmt.Errorf("cannot NewSampler: bound must be at least 1 but is %d", bound)
	}
	return &Sampler[T]{prng: prng, r: r, bound: bound}, nil
}

// ReadNew samples a new polynomial of degree exactly d, or the zero
// polynomial if d is negative.
func (s *Sampler[T]) ReadNew(d int) Polynomial[T] {

	if d < 0 {
		return Zero(s.r)
	}

	coeffs := make([]T, d+1)
	for i := range coeffs {
		coeffs[i] = s.read()
	}

	// the leading coefficient can also vanish after the mapping into the ring, e.g. in Z/pZ
	for ring.IsZero(s.r, coeffs[d]) {
		coeffs[d] = s.read()
	}

	return canonical(s.r, coeffs)
}

func (s *Sampler[T]) read() T {
	return s.r.FromInt64(sampling.RandInt64(s.prng, s.bound))
}
