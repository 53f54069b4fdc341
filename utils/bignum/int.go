package bignum

import (
	"fmt"
	"math/big"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string (any base accepted by big.Int.SetString with base 0),
// int, int64, uint64, *big.Int, or an integral *big.Rat.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	switch x := x.(type) {
	case nil:
	case string:
		if _, ok := y.SetString(x, 0); !ok {
			panic(fmt.Sprintf("cannot NewInt: %q is not an integer literal", x))
		}
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint64:
		y.SetUint64(x)
	case *big.Int:
		y.Set(x)
	case *big.Rat:
		if !x.IsInt() {
			panic(fmt.Sprintf("cannot NewInt: %s is not integral", x.RatString()))
		}
		y.Set(x.Num())
	default:
		panic(fmt.Sprintf("cannot NewInt: accepted types are string, int, int64, uint64, *big.Int or *big.Rat, but is %T", x))
	}

	return
}

// NewRat allocates a new *big.Rat.
// Accepted types are: string (as in big.Rat.SetString), int, int64, *big.Int or *big.Rat.
func NewRat(x interface{}) (y *big.Rat) {

	y = new(big.Rat)

	switch x := x.(type) {
	case nil:
	case string:
		if _, ok := y.SetString(x); !ok {
			panic(fmt.Sprintf("cannot NewRat: %q is not a rational literal", x))
		}
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Rat:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewRat: accepted types are string, int, int64, *big.Int or *big.Rat, but is %T", x))
	}

	return
}
