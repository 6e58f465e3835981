package gen

import (
	"math"

	"github.com/qcheck-go/qcheck/rng"
)

// Float64 generates floats with automatic range based on the generator's
// size parameter. Default: [-100, 100]. Does not include NaN/Inf.
func Float64(override ...float64) Generator[float64] {
	return From(func(g rng.Gen) (float64, Shrinker[float64]) {
		m := floatEffectiveSize64(g, override)
		v := uniformF64(g, -m, m)
		return float64ShrinkInit(v, -m, m, false, false)
	})
}

// Float64Range generates floats uniformly in [min, max] (inclusive on
// finite bounds). includeNaN/includeInf allow injecting special cases.
func Float64Range(min, max float64, includeNaN, includeInf bool) Generator[float64] {
	if min > max {
		min, max = max, min
	}
	return From(func(g rng.Gen) (float64, Shrinker[float64]) {
		v := uniformF64(g, min, max)
		if includeNaN && g.GenRange(0, 50) == 0 {
			v = math.NaN()
		} else if includeInf && g.GenRange(0, 50) == 1 {
			if g.GenRange(0, 2) == 0 {
				v = math.Inf(+1)
			} else {
				v = math.Inf(-1)
			}
		}
		return float64ShrinkInit(v, min, max, includeNaN, includeInf)
	})
}

// ---------------- implementation / shrinking ----------------

func float64ShrinkInit(start, min, max float64, allowNaN, allowInf bool) (float64, Shrinker[float64]) {
	cur := clampF64(start, min, max)
	last := cur

	queue := make([]float64, 0, 32)
	seen := map[uint64]struct{}{f64key(cur): {}}

	push := func(x float64) {
		if math.IsNaN(x) && !allowNaN {
			return
		}
		if math.IsInf(x, 0) && !allowInf {
			return
		}
		if isFinite(x) && isFinite(min) && isFinite(max) {
			if x < min || x > max {
				return
			}
		}
		k := f64key(x)
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		queue = append(queue, x)
	}

	grow := func(base float64) {
		queue = queue[:0]

		// NaN and infinities shrink straight to 0.
		if math.IsNaN(base) || math.IsInf(base, 0) {
			push(0)
			return
		}

		target := float64Target(min, max)
		if base != target {
			push(target)
		}

		if trunc := math.Trunc(base); trunc != base {
			push(trunc)
		}

		if base != target {
			next := midpointTowardsF64(base, target)
			if next != base {
				push(next)
			}
			series := next
			for i := 0; i < 8 && series != target; i++ {
				series = midpointTowardsF64(series, target)
				if series != base {
					push(series)
				}
			}
		}

		if target == 0 && base != 0 {
			push(-base)
		}

		if isFinite(min) && base != min {
			push(min)
		}
		if isFinite(max) && base != max {
			push(max)
		}
	}

	grow(cur)

	return cur, func(accept bool) (float64, bool) {
		if accept && f64key(last) != f64key(cur) {
			cur = last
			grow(cur)
		}
		var (
			nxt float64
			ok  bool
		)
		nxt, queue, ok = popQueue(queue)
		if !ok {
			return 0, false
		}
		last = nxt
		return nxt, true
	}
}

// ---------- helpers float64 ----------

// isFinite checks if a float64 value is finite (not NaN or Inf).
func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// f64key creates a unique key for a float64 value using its bit representation.
func f64key(x float64) uint64 { return math.Float64bits(x) }

// clampF64 constrains a float64 value to be within the given bounds.
func clampF64(x, min, max float64) float64 {
	if !isFinite(x) {
		return x
	}
	if isFinite(min) && x < min {
		return min
	}
	if isFinite(max) && x > max {
		return max
	}
	return x
}

// floatEffectiveSize64 resolves an optional explicit magnitude override
// against the generator's size parameter, defaulting to 100.
func floatEffectiveSize64(g rng.Gen, override []float64) float64 {
	m := float64(absInt(g.Size()))
	for _, o := range override {
		a := o
		if a < 0 {
			a = -a
		}
		if a > m {
			m = a
		}
	}
	if m == 0 {
		m = 100
	}
	return m
}

// uniformF64 generates a uniform random float64 in the given range.
func uniformF64(g rng.Gen, min, max float64) float64 {
	if isFinite(min) && isFinite(max) && max >= min {
		if min == max {
			return min
		}
		return min + g.NextFloat64()*(max-min)
	}
	return -100 + g.NextFloat64()*200
}

// float64Target returns the "natural" target to shrink towards for float64:
// - 0 if 0 ∈ [min,max]; otherwise, the bound closest to 0.
func float64Target(min, max float64) float64 {
	if isFinite(min) && isFinite(max) && min <= 0 && 0 <= max {
		return 0
	}
	if !isFinite(min) && !isFinite(max) {
		return 0
	}
	amin := math.Abs(min)
	amax := math.Abs(max)
	if amin < amax {
		return min
	}
	return max
}

// midpointTowardsF64 gives a "bisection step" from a towards b for float64.
func midpointTowardsF64(a, b float64) float64 {
	if a == b {
		return a
	}
	return a + (b-a)/2
}
