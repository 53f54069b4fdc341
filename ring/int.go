package ring

import (
	"math/big"

	"github.com/tiwo/polynomials/utils/bignum"
)

// Integers is the ring of arbitrary precision integers, built using Go's
// built-in "math/big.Int". A nil element is read as zero.
type Integers struct{}

// Int is the ring of *big.Int coefficients.
var Int = Integers{}

func (Integers) Zero() *big.Int {
	return new(big.Int)
}

func (Integers) One() *big.Int {
	return big.NewInt(1)
}

func (Integers) FromInt64(v int64) *big.Int {
	return bignum.NewInt(v)
}

func (Integers) Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(intOrZero(a), intOrZero(b))
}

func (Integers) Neg(a *big.Int) *big.Int {
	return new(big.Int).Neg(intOrZero(a))
}

func (Integers) Mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(intOrZero(a), intOrZero(b))
}

func (Integers) Equal(a, b *big.Int) bool {
	return intOrZero(a).Cmp(intOrZero(b)) == 0
}

func (Integers) Sign(a *big.Int) int {
	return intOrZero(a).Sign()
}

func (Integers) Literal(a *big.Int) string {
	return intOrZero(a).String()
}

var zeroInt = new(big.Int)

func intOrZero(a *big.Int) *big.Int {
	if a == nil {
		return zeroInt
	}
	return a
}
