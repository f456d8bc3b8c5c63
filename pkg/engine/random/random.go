// Package random provides seedable draws from fixed value pools.
// Every generator takes a Source so that a fixed seed reproduces the same mystery.
package random

import (
	"math/rand"
	"time"
)

// Source is the random number source used by all generators.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Read(p []byte) (n int, err error)
}

// New returns a Source seeded with seed. A zero seed uses the current time.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Pick returns a uniformly chosen element of pool.
// Panics if pool is empty: the pools are fixed tables, so an empty one is a programming error.
func Pick[T any](src Source, pool []T) T {
	if len(pool) == 0 {
		panic("random: pick from empty pool")
	}
	return pool[src.Intn(len(pool))]
}

// PickExcept returns a uniformly chosen element of pool that is not in exclude.
// Returns false if every element is excluded.
func PickExcept[T comparable](src Source, pool []T, exclude ...T) (T, bool) {
	candidates := make([]T, 0, len(pool))
	for _, v := range pool {
		if !contains(exclude, v) {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		var zero T
		return zero, false
	}
	return candidates[src.Intn(len(candidates))], true
}

// Range returns a uniform integer in [lo, hi).
func Range(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo)
}

func contains[T comparable](s []T, v T) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
