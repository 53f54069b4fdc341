package polynomial

import (
	"math"
	"strconv"

	"github.com/tiwo/polynomials/utils"
)

// Degree is the degree of a polynomial. The degree of the zero polynomial is
// NegInf, which compares below every finite degree.
type Degree int

// NegInf is the degree of the zero polynomial.
const NegInf = Degree(math.MinInt)

// IsFinite returns false for NegInf and true otherwise.
func (d Degree) IsFinite() bool {
	return d != NegInf
}

// Add returns d + e, the degree of a product. NegInf is absorbing.
func (d Degree) Add(e Degree) Degree {
	if d == NegInf || e == NegInf {
		return NegInf
	}
	return d + e
}

func (d Degree) String() string {
	if d == NegInf {
		return "-inf"
	}
	return strconv.Itoa(int(d))
}

// MaxDegree returns the larger of a and b, an upper bound on the degree of a sum.
func MaxDegree(a, b Degree) Degree {
	return utils.Max(a, b)
}
