// Package tests provides deterministic randomness helpers for property
// tests. Seeds are derived from the test name, so a failing run reproduces
// exactly while distinct tests still exercise distinct inputs.
//
// Example usage:
//
//	func TestSortRandom(t *testing.T) {
//	    rng := tests.SeededRand(t)
//	    xs := rng.Perm(1000)
//	    // ... sort xs and assert properties
//	}
package tests

import (
	"math/rand/v2"
	"testing"

	"github.com/zeebo/xxh3"
)

// SeededRand returns a pseudo-random source seeded from the test's full name
// (including subtest path). Two runs of the same test see the same sequence.
func SeededRand(t *testing.T) *rand.Rand {
	t.Helper()

	seed := xxh3.HashString(t.Name())

	return rand.New(rand.NewPCG(seed, seed))
}

// Perm returns a deterministic pseudo-random permutation of [0, n) for the
// current test.
func Perm(t *testing.T, n int) []int {
	t.Helper()

	return SeededRand(t).Perm(n)
}

// Shuffle reorders xs deterministically for the current test.
func Shuffle[T any](t *testing.T, xs []T) {
	t.Helper()

	SeededRand(t).Shuffle(len(xs), func(i, j int) {
		xs[i], xs[j] = xs[j], xs[i]
	})
}
