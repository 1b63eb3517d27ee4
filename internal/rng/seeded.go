package rng

import "math/rand"

// Seeded returns a Generator backed by math/rand with the given seed.
// Two generators with the same seed produce the same sequence, which lets
// tests reproduce specific shuffles.
func Seeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed))
}
