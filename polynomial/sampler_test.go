package polynomial

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tiwo/polynomials/ring"
	"github.com/tiwo/polynomials/utils/sampling"
)

func TestSampler(t *testing.T) {

	t.Run("InvalidBound", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)
		_, err = NewSampler(prng, ints, 0)
		require.Error(t, err)
	})

	t.Run("Degree", func(t *testing.T) {
		tc := newTestContext(t, ints)
		for d := -2; d < 16; d++ {
			p := tc.sampler.ReadNew(d)
			if d < 0 {
				require.True(t, p.IsZero())
				continue
			}
			require.Equal(t, Degree(d), p.Degree())
			for _, c := range p.Coeffs() {
				require.LessOrEqual(t, c, int64(10))
				require.GreaterOrEqual(t, c, int64(-10))
			}
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		tc0 := newTestContext(t, bigints)
		tc1 := newTestContext(t, bigints)
		for i := 0; i < 8; i++ {
			require.True(t, tc0.sampler.ReadNew(i).Equal(tc1.sampler.ReadNew(i)))
		}

		tc0.prng.Reset()
		p := tc0.sampler.ReadNew(5)
		tc1.prng.Reset()
		require.True(t, p.Equal(tc1.sampler.ReadNew(5)))
	})

	t.Run("SystemRandomness", func(t *testing.T) {
		prng, err := sampling.NewPRNG()
		require.NoError(t, err)
		sampler, err := NewSampler(prng, rats, 1<<20)
		require.NoError(t, err)
		for d := 0; d < 8; d++ {
			require.Equal(t, Degree(d), sampler.ReadNew(d).Degree())
		}
	})

	t.Run("SmallModulus", func(t *testing.T) {
		// about half the samples in [-10, 10] vanish mod 2, the leading one never does
		z2, err := ring.NewModular(big.NewInt(2))
		require.NoError(t, err)
		tc := newTestContext[*big.Int](t, z2)
		for i := 0; i < testIterations; i++ {
			require.Equal(t, Degree(7), tc.sampler.ReadNew(7).Degree())
		}
	})
}
