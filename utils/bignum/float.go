package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valide types for x are: int, int64, uint, uint64, float64, *big.Int, *big.Rat or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Rat:
		y.SetRat(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valide types are int, int64, uint, uint64, float64, *big.Int, *big.Rat or *big.Float but is %T", x))
	}

	return
}

// Pow returns x^y.
// x must be strictly positive.
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}
