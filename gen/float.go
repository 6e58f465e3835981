package gen

import (
	"math"

	"github.com/qcheck-go/qcheck/rng"
)

// Float32 generates float32 values with automatic range based on the
// generator's size parameter. Default: [-100, 100]. Does not include
// NaN/Inf.
func Float32(override ...float32) Generator[float32] {
	return From(func(g rng.Gen) (float32, Shrinker[float32]) {
		m := floatEffectiveSize32(g, override)
		v := uniformF32(g, -m, m)
		return float32ShrinkInit(v, -m, m, false, false)
	})
}

// Float32Range generates float32 in [min, max]; can optionally produce NaN/±Inf.
func Float32Range(min, max float32, includeNaN, includeInf bool) Generator[float32] {
	if min > max {
		min, max = max, min
	}
	return From(func(g rng.Gen) (float32, Shrinker[float32]) {
		v := uniformF32(g, min, max)
		if includeNaN && g.GenRange(0, 50) == 0 {
			v = float32(math.NaN())
		} else if includeInf && g.GenRange(0, 50) == 1 {
			if g.GenRange(0, 2) == 0 {
				v = float32(math.Inf(+1))
			} else {
				v = float32(math.Inf(-1))
			}
		}
		return float32ShrinkInit(v, min, max, includeNaN, includeInf)
	})
}

// -------------- implementation / shrinking (float32) --------------

// float32ShrinkInit initializes the shrinking process for a float32 value.
// It returns the initial value and a shrinker function that can generate
// progressively smaller candidates.
func float32ShrinkInit(start, min, max float32, allowNaN, allowInf bool) (float32, Shrinker[float32]) {
	cur := clampF32(start, min, max)
	last := cur

	queue := make([]float32, 0, 32)
	seen := map[uint32]struct{}{f32key(cur): {}}

	push := func(x float32) {
		if float32IsNaN(x) && !allowNaN {
			return
		}
		if float32IsInf(x) && !allowInf {
			return
		}
		if float32IsFinite(x) && float32IsFinite(min) && float32IsFinite(max) {
			if x < min || x > max {
				return
			}
		}
		k := f32key(x)
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		queue = append(queue, x)
	}

	grow := func(base float32) {
		queue = queue[:0]

		// NaN and infinities shrink straight to 0.
		if float32IsNaN(base) || float32IsInf(base) {
			push(0)
			return
		}

		target := float32Target(min, max)
		if base != target {
			push(target)
		}

		// truncated integer part
		if trunc := float32(math.Trunc(float64(base))); trunc != base {
			push(trunc)
		}

		if base != target {
			next := midpointTowardsF32(base, target)
			if next != base {
				push(next)
			}
			series := next
			for i := 0; i < 8 && series != target; i++ {
				series = midpointTowardsF32(series, target)
				if series != base {
					push(series)
				}
			}
		}

		if target == 0 && base != 0 {
			push(-base)
		}

		if float32IsFinite(min) && base != min {
			push(min)
		}
		if float32IsFinite(max) && base != max {
			push(max)
		}
	}

	grow(cur)

	return cur, func(accept bool) (float32, bool) {
		if accept && f32key(last) != f32key(cur) {
			cur = last
			grow(cur)
		}
		var (
			nxt float32
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

// ---------- helpers float32 ----------

// float32IsFinite checks if a float32 value is finite (not NaN or Inf).
func float32IsFinite(x float32) bool { return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0) }

// float32IsNaN checks if a float32 value is NaN.
func float32IsNaN(x float32) bool { return math.IsNaN(float64(x)) }

// float32IsInf checks if a float32 value is infinite.
func float32IsInf(x float32) bool { return math.IsInf(float64(x), 0) }

// f32key creates a unique key for a float32 value using its bit representation.
func f32key(x float32) uint32 { return math.Float32bits(x) }

// clampF32 constrains a float32 value to be within the given bounds.
func clampF32(x, min, max float32) float32 {
	if !float32IsFinite(x) {
		return x
	}
	if float32IsFinite(min) && x < min {
		return min
	}
	if float32IsFinite(max) && x > max {
		return max
	}
	return x
}

// floatEffectiveSize32 resolves an optional explicit magnitude override
// against the generator's size parameter, defaulting to 100.
func floatEffectiveSize32(g rng.Gen, override []float32) float32 {
	m := float32(absInt(g.Size()))
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

// uniformF32 generates a uniform random float32 in the given range.
func uniformF32(g rng.Gen, min, max float32) float32 {
	if float32IsFinite(min) && float32IsFinite(max) && max >= min {
		if min == max {
			return min
		}
		return min + float32(g.NextFloat64())*(max-min)
	}
	return -100 + float32(g.NextFloat64())*200
}

// float32Target returns the "natural" target to shrink towards for float32:
// - 0 if 0 ∈ [min,max]; otherwise, the bound closest to 0.
func float32Target(min, max float32) float32 {
	if float32IsFinite(min) && float32IsFinite(max) && min <= 0 && 0 <= max {
		return 0
	}
	if !float32IsFinite(min) && !float32IsFinite(max) {
		return 0
	}
	amin := float32(math.Abs(float64(min)))
	amax := float32(math.Abs(float64(max)))
	if amin < amax {
		return min
	}
	return max
}

// midpointTowardsF32 gives a "bisection step" from a towards b for float32.
func midpointTowardsF32(a, b float32) float32 {
	if a == b {
		return a
	}
	return a + (b-a)/2
}
