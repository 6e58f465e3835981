package gen

import "github.com/qcheck-go/qcheck/rng"

// Uint draws an unsigned int uniformly from [0, size].
func Uint(override ...uint) Generator[uint] {
	return From(func(g rng.Gen) (uint, Shrinker[uint]) {
		m := unsignedEffectiveSize(g, override)
		v := uint(g.GenRange(0, int64(m)+1))
		return unsignedShrinkInit(v, uint(0), m)
	})
}

// UintRange generates uint uniformly in the range [min, max] (inclusive).
func UintRange(min, max uint) Generator[uint] {
	if min > max {
		min, max = max, min
	}
	return From(func(g rng.Gen) (uint, Shrinker[uint]) {
		v := min + uint(g.GenRange(0, int64(max-min)+1))
		return unsignedShrinkInit(v, min, max)
	})
}
