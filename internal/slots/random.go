package slots

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// RandomSource supplies uniform integers in [0, n)
type RandomSource interface {
	Intn(n int) int
}

// RandomFunc adapts a plain function to RandomSource
type RandomFunc func(n int) int

// Intn implements RandomSource
func (f RandomFunc) Intn(n int) int {
	return f(n)
}

// lockedSource is a ChaCha8 stream seeded from crypto/rand, safe for concurrent spins
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSecureSource returns the default random source used by the service
func NewSecureSource() RandomSource {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand only fails on a broken platform; fall back to the runtime generator
		binary.LittleEndian.PutUint64(seed[:], rand.Uint64())
	}
	return &lockedSource{rng: rand.New(rand.NewChaCha8(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
