package domain

import "math/rand"

// Random is the only source of non-determinism in the simulation.
type Random interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}
