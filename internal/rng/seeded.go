package rng

import "math/rand"

// Seeded is a Generator backed by math/rand with a fixed seed.
// Intended for tests and for replaying a hand deterministically.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a Seeded generator for the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}

// Float64 returns a random number in [0.0, 1.0)
func (s *Seeded) Float64() float64 {
	return s.r.Float64()
}
