package ring

import (
	"math/big"

	"github.com/tiwo/polynomials/utils/bignum"
)

// Rationals is the field of exact rational numbers, built on "math/big.Rat".
// Literals are in lowest terms, integral values without a denominator
// (e.g. "3" and "-1/2"). A nil element is read as zero.
type Rationals struct{}

// Rat is the ring of *big.Rat coefficients.
var Rat = Rationals{}

func (Rationals) Zero() *big.Rat {
	return new(big.Rat)
}

func (Rationals) One() *big.Rat {
	return big.NewRat(1, 1)
}

func (Rationals) FromInt64(v int64) *big.Rat {
	return bignum.NewRat(v)
}

func (Rationals) Add(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Add(ratOrZero(a), ratOrZero(b))
}

func (Rationals) Neg(a *big.Rat) *big.Rat {
	return new(big.Rat).Neg(ratOrZero(a))
}

func (Rationals) Mul(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(ratOrZero(a), ratOrZero(b))
}

func (Rationals) Equal(a, b *big.Rat) bool {
	return ratOrZero(a).Cmp(ratOrZero(b)) == 0
}

func (Rationals) Sign(a *big.Rat) int {
	return ratOrZero(a).Sign()
}

func (Rationals) Literal(a *big.Rat) string {
	return ratOrZero(a).RatString()
}

var zeroRat = new(big.Rat)

func ratOrZero(a *big.Rat) *big.Rat {
	if a == nil {
		return zeroRat
	}
	return a
}
