package polynomial

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tiwo/polynomials/ring"
	"github.com/tiwo/polynomials/utils/sampling"
)

var testKey = []byte("polynomial test vectors")

var (
	ints     ring.Ring[int64]    = ring.Int64
	float64s ring.Ring[float64]  = ring.Float64
	bigints  ring.Ring[*big.Int] = ring.Int
	rats     ring.Ring[*big.Rat] = ring.Rat
)

func testString[T any](opname string, r ring.Ring[T]) string {
	return fmt.Sprintf("%s/ring=%T", opname, r)
}

type testContext[T any] struct {
	r       ring.Ring[T]
	prng    *sampling.KeyedPRNG
	sampler *Sampler[T]
}

func newTestContext[T any](t *testing.T, r ring.Ring[T]) *testContext[T] {
	prng, err := sampling.NewKeyedPRNG(testKey)
	require.NoError(t, err)
	sampler, err := NewSampler(prng, r, 10)
	require.NoError(t, err)
	return &testContext[T]{r: r, prng: prng, sampler: sampler}
}

// readNew samples a polynomial of random degree in [-1, maxDegree].
func (tc *testContext[T]) readNew(maxDegree int) Polynomial[T] {
	return tc.sampler.ReadNew(int(sampling.RandUint64N(tc.prng, uint64(maxDegree+2))) - 1)
}

func newZ97(t *testing.T) ring.Ring[*big.Int] {
	r, err := ring.NewModular(big.NewInt(97))
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {

	t.Run("Canonical", func(t *testing.T) {
		p := NewFromInt64(ints, 1, 2, 0, 0)
		require.Equal(t, 2, p.Len())
		require.Equal(t, Degree(1), p.Degree())
		require.Equal(t, []int64{1, 2}, p.Coeffs())
		require.True(t, p.Equal(New(ints, 1, 2)))
	})

	t.Run("Zero", func(t *testing.T) {
		for _, p := range []Polynomial[int64]{
			New(ints),
			New(ints, 0, 0, 0),
			Zero(ints),
			Const(ints, 0),
		} {
			require.True(t, p.IsZero())
			require.Equal(t, 0, p.Len())
			require.Equal(t, NegInf, p.Degree())
			require.Empty(t, p.Coeffs())
		}
	})

	t.Run("Copy", func(t *testing.T) {
		c := []int64{1, 2}
		p := New(ints, c...)
		c[0] = 5
		require.Equal(t, int64(1), p.Coeff(0))

		coeffs := p.Coeffs()
		coeffs[1] = 7
		require.Equal(t, int64(2), p.Coeff(1))
	})

	t.Run("X", func(t *testing.T) {
		x := X(ints)
		require.Equal(t, []int64{0, 1}, x.Coeffs())
		require.Equal(t, Degree(1), x.Degree())
		require.True(t, One(ints).Equal(Const(ints, 1)))
	})

	t.Run("BigInt", func(t *testing.T) {
		p := NewFromInt64(bigints, 4, -3, 0)
		require.Equal(t, Degree(1), p.Degree())
		require.Equal(t, "-3", p.Coeff(1).String())
		require.Equal(t, "0", p.Coeff(5).String())
	})

	t.Run("CallerMutation", func(t *testing.T) {
		a, b := big.NewInt(1), big.NewInt(3)
		p := New(bigints, a, b)
		q := Const(bigints, b)
		a.SetInt64(7)
		b.SetInt64(0)
		require.Equal(t, Degree(1), p.Degree())
		require.Equal(t, "1+3x", p.String())
		require.Equal(t, "3", q.String())
		require.False(t, q.IsZero())

		r := big.NewRat(1, 2)
		pr, err := NewRing(rats).Coerce([]*big.Rat{big.NewRat(0, 1), r})
		require.NoError(t, err)
		r.SetInt64(0)
		require.Equal(t, "1/2x", pr.String())
	})

	t.Run("NilCoefficients", func(t *testing.T) {
		p := New(bigints, big.NewInt(1), nil, nil)
		require.Equal(t, Degree(0), p.Degree())
		require.Equal(t, "1", p.String())
	})
}

func TestCoeff(t *testing.T) {
	p := NewFromInt64(ints, 1, 2, 3)
	require.Equal(t, int64(1), p.Coeff(0))
	require.Equal(t, int64(3), p.Coeff(2))
	require.Equal(t, int64(0), p.Coeff(3))
	require.Equal(t, int64(0), p.Coeff(100))
	require.Equal(t, int64(0), p.Coeff(-1))
	require.Equal(t, int64(0), Zero(ints).Coeff(0))
}

func TestEqual(t *testing.T) {
	x := X(ints)
	p := NewFromInt64(ints, 1, 2, 3)
	require.True(t, p.Equal(One(ints).Add(x.MulScalar(2)).Add(x.Mul(x).MulScalar(3))))
	require.True(t, p.Equal(NewFromInt64(ints, 1, 2, 3, 0, 0)))
	require.False(t, p.Equal(NewFromInt64(ints, 1, 2)))
	require.False(t, p.Equal(Zero(ints)))
	require.True(t, Zero(ints).Equal(New(ints, 0)))
}

func TestDegree(t *testing.T) {
	require.Equal(t, "-inf", NegInf.String())
	require.Equal(t, "3", Degree(3).String())
	require.False(t, NegInf.IsFinite())
	require.True(t, Degree(0).IsFinite())
	require.Equal(t, Degree(5), Degree(2).Add(3))
	require.Equal(t, NegInf, NegInf.Add(3))
	require.Equal(t, NegInf, Degree(3).Add(NegInf))
	require.Equal(t, Degree(2), MaxDegree(NegInf, 2))
	require.Equal(t, Degree(0), MaxDegree(0, NegInf))
	require.Equal(t, NegInf, MaxDegree(NegInf, NegInf))
	require.True(t, NegInf < Degree(0))
}

func TestGoString(t *testing.T) {
	require.Equal(t, "Polynomial([1, 2, 3])", NewFromInt64(ints, 1, 2, 3).GoString())
	require.Equal(t, "Polynomial([])", Zero(ints).GoString())
	require.Equal(t, "Polynomial([1/2, -1])", fmt.Sprintf("%#v", New(rats, big.NewRat(1, 2), big.NewRat(-1, 1))))
}

func TestCoerce(t *testing.T) {

	r := NewRing(ints)

	valid := []struct {
		operand  any
		expected string
	}{
		{nil, "0"},
		{int64(5), "5"},
		{7, "7"},
		{[]int64{1, 2, 3}, "1+2x+3x^2"},
		{[]int{0, -1}, "-x"},
		{[]int{0, 0}, "0"},
		{NewFromInt64(ints, 2, 1), "2+x"},
	}

	for _, tc := range valid {
		t.Run(fmt.Sprintf("Valid/%T", tc.operand), func(t *testing.T) {
			p, err := r.Coerce(tc.operand)
			require.NoError(t, err)
			require.Equal(t, tc.expected, p.String())
		})
	}

	for _, operand := range []any{"1+x", 1.5, map[int]int{0: 1}, []string{"1"}, NewFromInt64(float64s, 1)} {
		t.Run(fmt.Sprintf("Invalid/%T", operand), func(t *testing.T) {
			_, err := r.Coerce(operand)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidOperand))
		})
	}

	t.Run("Coefficient", func(t *testing.T) {
		rr := NewRing(rats)

		p, err := rr.Coerce(big.NewRat(1, 3))
		require.NoError(t, err)
		require.Equal(t, "1/3", p.String())

		p, err = rr.Coerce([]*big.Rat{big.NewRat(0, 1), big.NewRat(-2, 3)})
		require.NoError(t, err)
		require.Equal(t, "-2/3x", p.String())

		p, err = rr.Coerce(2)
		require.NoError(t, err)
		require.Equal(t, "2", p.String())

		rf := NewRing(float64s)
		pf, err := rf.Coerce(1.5)
		require.NoError(t, err)
		require.Equal(t, "1.5", pf.String())
	})

	t.Run("Coeffs", func(t *testing.T) {
		p, err := r.Coerce([]int{3, 0, 1, 0})
		require.NoError(t, err)
		if diff := cmp.Diff([]int64{3, 0, 1}, p.Coeffs()); diff != "" {
			t.Fatalf("unexpected coefficients (-want +got):\n%s", diff)
		}
	})
}
