package sampling

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG reads from the system's secure randomness source.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read reads bytes from the system randomness source on sum.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG is the blake2b XOF stream of a key. Samplers sharing a key draw
// the same sequence of polynomials, so randomized tests and benchmarks are
// reproducible.
type KeyedPRNG struct {
	mutex sync.Mutex
	xof   blake2b.XOF
}

// NewKeyedPRNG returns the stream of key, at most 64 bytes. A nil key is the
// empty key.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, fmt.Errorf("cannot NewKeyedPRNG: %w", err)
	}
	return &KeyedPRNG{xof: xof}, nil
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset rewinds the stream to its first byte.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
