package ring

import (
	"fmt"
	"math/big"

	"github.com/tiwo/polynomials/utils/bignum"
)

// Modular is the ring Z/pZ of integers modulo p, whose elements are
// represented by *big.Int in the interval [0, p-1]. Inputs outside of this
// interval are reduced before use, so any integer is a valid element.
//
// Z/pZ is unordered: every non-zero residue renders as a positive literal, so
// that for example -2x over Z/7Z renders as "5x".
//
// The zero value has no modulus and is not usable: rings must be created with
// NewModular. Arithmetic on the zero value panics.
type Modular struct {
	p *big.Int
}

// NewModular returns the ring Z/pZ. The modulus must be at least 2.
func NewModular(p *big.Int) (Modular, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 {
		return Modular{}, fmt.Errorf("cannot NewModular: modulus must be at least 2 but is %v", p)
	}
	return Modular{p: bignum.NewInt(p)}, nil
}

// Modulus returns a copy of the modulus p.
func (r Modular) Modulus() *big.Int {
	return bignum.NewInt(r.modulus())
}

// IsField returns true if p is (with overwhelming probability) prime, i.e.
// if Z/pZ is a field.
func (r Modular) IsField() bool {
	return r.modulus().ProbablyPrime(20)
}

// Reduce returns a mod p in [0, p-1].
func (r Modular) Reduce(a *big.Int) *big.Int {
	return new(big.Int).Mod(intOrZero(a), r.modulus())
}

func (r Modular) Zero() *big.Int {
	return new(big.Int)
}

func (r Modular) One() *big.Int {
	return r.Reduce(big.NewInt(1))
}

func (r Modular) FromInt64(v int64) *big.Int {
	return r.Reduce(big.NewInt(v))
}

func (r Modular) Add(a, b *big.Int) *big.Int {
	c := new(big.Int).Add(intOrZero(a), intOrZero(b))
	return c.Mod(c, r.modulus())
}

func (r Modular) Neg(a *big.Int) *big.Int {
	c := new(big.Int).Neg(intOrZero(a))
	return c.Mod(c, r.modulus())
}

func (r Modular) Mul(a, b *big.Int) *big.Int {
	c := new(big.Int).Mul(intOrZero(a), intOrZero(b))
	return c.Mod(c, r.modulus())
}

func (r Modular) Equal(a, b *big.Int) bool {
	return r.Reduce(a).Cmp(r.Reduce(b)) == 0
}

func (r Modular) Sign(a *big.Int) int {
	return r.Reduce(a).Sign()
}

func (r Modular) Literal(a *big.Int) string {
	return r.Reduce(a).String()
}

func (r Modular) modulus() *big.Int {
	if r.p == nil {
		panic("cannot use Modular: zero value, the ring must be created with NewModular")
	}
	return r.p
}
