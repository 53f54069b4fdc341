// Package sampling implements the sampling of random bytes and bounded integers.
package sampling

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// RandUint64 returns a uniform value in [0, 0xFFFFFFFFFFFFFFFF] read from prng.
func RandUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandUint64N returns a uniform value in [0, n-1] read from prng.
// Values falling into the biased tail of the 64-bit range are rejected.
func RandUint64N(prng PRNG, n uint64) uint64 {

	if n == 0 {
		panic("cannot RandUint64N: n must be positive")
	}

	if n&(n-1) == 0 {
		return RandUint64(prng) & (n - 1)
	}

	// 2^64 mod n
	limit := -n % n
	for {
		hi, lo := bits.Mul64(RandUint64(prng), n)
		if lo >= limit {
			return hi
		}
	}
}

// RandInt64 returns a uniform value in [-bound, bound] read from prng.
func RandInt64(prng PRNG, bound int64) int64 {
	if bound < 0 {
		panic(fmt.Sprintf("cannot RandInt64: bound must be non-negative but is %d", bound))
	}
	return int64(RandUint64N(prng, 2*uint64(bound)+1)) - bound
}
