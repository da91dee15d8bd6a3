package board

import "math/rand"

// Sampler selects k distinct coordinates from a candidate pool, uniformly at
// random. The board checks k against the pool size before calling; a Sampler
// may assume k <= len(pool). Implementations must not mutate the pool.
type Sampler interface {
	Sample(pool []Coord, k int) []Coord
}

// randSampler draws samples from a seeded math/rand source.
type randSampler struct {
	rng *rand.Rand
}

// NewRandSampler returns a Sampler backed by a rand.Rand seeded with seed.
// The same seed over the same pool yields the same selection, which is how
// tests and the simulate command reproduce mine layouts.
func NewRandSampler(seed int64) Sampler {
	return &randSampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample performs a partial Fisher-Yates shuffle over a copy of the pool and
// returns the first k elements.
func (s *randSampler) Sample(pool []Coord, k int) []Coord {
	if k > len(pool) {
		k = len(pool)
	}
	picked := make([]Coord, len(pool))
	copy(picked, pool)
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(len(picked)-i)
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked[:k]
}
