package polynomial

import (
	"encoding/binary"
	"io"

	"github.com/zeebo/blake3"
)

// Digest returns the blake3 hash of the canonical coefficients of p.
// Equal polynomials over the same ring have equal digests, which makes the
// digest usable as a map key for polynomials.
func (p Polynomial[T]) Digest() (digest [32]byte) {
	hasher := blake3.New()

	writeLength(hasher, len(p.coeffs))
	for _, c := range p.coeffs {
		literal := p.r.Literal(c)
		writeLength(hasher, len(literal))
		io.WriteString(hasher, literal)
	}

	copy(digest[:], hasher.Sum(nil))
	return
}

// writeLength writes n as a big-endian uint64. Writes to a hasher never fail.
func writeLength(hasher *blake3.Hasher, n int) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(n))
	hasher.Write(b[:])
}
