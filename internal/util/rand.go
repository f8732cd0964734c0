package util

import "math/rand"

// New returns a deterministic RNG for the given seed, so the same seed
// replays the same picks and pairings. Seed 0 is remapped to keep the
// flag zero value usable.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// PickRandom returns a uniformly chosen element of items. The boolean
// reports whether a pick was possible; an empty slice yields the zero
// value and false.
func PickRandom[T any](rng *rand.Rand, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[rng.Intn(len(items))], true
}
