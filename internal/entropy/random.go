// Package entropy provides the single seeded random source that drives every
// stochastic draw in a patient episode. A fixed seed reproduces a trajectory
// bit for bit; seed 0 means "pick one" from crypto/rand.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"

	"github.com/google/uuid"
)

// Source wraps a seeded *rand.Rand. It is not safe for concurrent use.
type Source struct {
	seed int64
	rng  *mrand.Rand
}

// NewSource creates a source for seed. A zero seed is replaced by a random one.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = CryptoSeed()
	}
	return &Source{
		seed: seed,
		rng:  mrand.New(mrand.NewSource(seed)),
	}
}

// Seed returns the seed the source was built from.
func (s *Source) Seed() int64 {
	return s.seed
}

// Intn returns a random int in [0, n). n <= 0 yields 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Chance returns true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Weighted picks an index with probability proportional to its weight.
// Negative weights count as zero. If every weight is zero the last index is
// returned, so a caller passing (0, 1) always gets 1.
func (s *Source) Weighted(weights ...float64) int {
	if len(weights) == 0 {
		return 0
	}
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return len(weights) - 1
	}

	r := s.rng.Float64() * total
	cum := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cum += w
		if r < cum {
			return i
		}
	}
	return len(weights) - 1
}

// NewID returns a v4 UUID whose bytes come from the seeded stream, so IDs
// replay with the rest of the trajectory.
func (s *Source) NewID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// CryptoSeed returns a non-zero seed from crypto/rand.
func CryptoSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// This should never happen; any non-zero seed will do.
		return 1
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if seed == 0 {
		return 1
	}
	return seed
}
