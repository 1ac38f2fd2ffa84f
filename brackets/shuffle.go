package brackets

import "math/rand"

// Shuffle returns a shuffled copy of items. Seeding order is the caller's
// concern: production wiring seeds from the clock, tests pass a fixed seed so
// pairings are reproducible.
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
