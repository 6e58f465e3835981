package gen

import "github.com/qcheck-go/qcheck/rng"

// Uint64 draws an unsigned 64-bit int uniformly from [0, size].
func Uint64(override ...uint64) Generator[uint64] {
	return From(func(g rng.Gen) (uint64, Shrinker[uint64]) {
		m := unsignedEffectiveSize(g, override)
		v := uint64(g.GenRange(0, int64(m)+1))
		return unsignedShrinkInit(v, uint64(0), m)
	})
}

// Uint64Range generates uint64 uniformly in the range [min, max] (inclusive).
func Uint64Range(min, max uint64) Generator[uint64] {
	if min > max {
		min, max = max, min
	}
	return From(func(g rng.Gen) (uint64, Shrinker[uint64]) {
		v := min + uint64(g.GenRange(0, int64(max-min)+1))
		return unsignedShrinkInit(v, min, max)
	})
}
