package order

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// NewRand returns a PCG-backed generator fully determined by seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SeedFromString derives a generator seed from arbitrary text, so that a seed
// can be given as a memorable phrase in configuration.
func SeedFromString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Shuffle permutes s uniformly at random using rng.
func Shuffle[S ~[]E, E any](s S, rng *rand.Rand) {
	rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
