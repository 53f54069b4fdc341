package ring

import (
	"fmt"
	"math/big"

	"github.com/tiwo/polynomials/utils/bignum"
)

// Floats is the ring of arbitrary precision floating point numbers, built on
// "math/big.Float". Every result is rounded to the precision of the ring.
// Arithmetic is inexact, so ring identities only hold up to rounding.
type Floats struct {
	prec uint
}

// NewFloats returns the ring of big floats with prec bits of mantissa.
func NewFloats(prec uint) (Floats, error) {
	if prec == 0 {
		return Floats{}, fmt.Errorf("cannot NewFloats: precision must be positive")
	}
	if prec > big.MaxPrec {
		return Floats{}, fmt.Errorf("cannot NewFloats: precision %d exceeds big.MaxPrec", prec)
	}
	return Floats{prec: prec}, nil
}

// Prec returns the precision, in bits, of the ring.
func (r Floats) Prec() uint {
	return r.prec
}

// FromFloat64 returns v as an element of the ring.
func (r Floats) FromFloat64(v float64) *big.Float {
	return bignum.NewFloat(v, r.prec)
}

func (r Floats) Zero() *big.Float {
	return bignum.NewFloat(nil, r.prec)
}

func (r Floats) One() *big.Float {
	return bignum.NewFloat(1, r.prec)
}

func (r Floats) FromInt64(v int64) *big.Float {
	return bignum.NewFloat(v, r.prec)
}

func (r Floats) Add(a, b *big.Float) *big.Float {
	return r.Zero().Add(r.orZero(a), r.orZero(b))
}

func (r Floats) Neg(a *big.Float) *big.Float {
	return r.Zero().Neg(r.orZero(a))
}

func (r Floats) Mul(a, b *big.Float) *big.Float {
	return r.Zero().Mul(r.orZero(a), r.orZero(b))
}

func (r Floats) Equal(a, b *big.Float) bool {
	return r.orZero(a).Cmp(r.orZero(b)) == 0
}

func (r Floats) Sign(a *big.Float) int {
	return r.orZero(a).Sign()
}

// Literal returns the shortest decimal representation of a that reads back
// to the same value at the precision of a.
func (r Floats) Literal(a *big.Float) string {
	return r.orZero(a).Text('g', -1)
}

// PowScalar returns a^e for a strictly positive a.
func (r Floats) PowScalar(a, e *big.Float) *big.Float {
	if r.orZero(a).Sign() <= 0 {
		panic(fmt.Sprintf("cannot PowScalar: base must be strictly positive but is %s", r.Literal(a)))
	}
	x := bignum.NewFloat(a, r.prec)
	return r.Zero().Set(bignum.Pow(x, bignum.NewFloat(e, r.prec)))
}

func (r Floats) orZero(a *big.Float) *big.Float {
	if a == nil {
		return r.Zero()
	}
	return a
}
