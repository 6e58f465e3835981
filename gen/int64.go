package gen

import "github.com/qcheck-go/qcheck/rng"

// Int64 draws a signed 64-bit int uniformly from [-size, size].
func Int64(override ...int) Generator[int64] {
	return From(func(g rng.Gen) (int64, Shrinker[int64]) {
		m := int64(effectiveSize(g, override))
		v := g.GenRange(-m, m+1)
		return int64ShrinkInit(v, -m, m)
	})
}

// Int64Range generates int64 uniformly in the range [min, max] (inclusive).
func Int64Range(min, max int64) Generator[int64] {
	if min > max {
		min, max = max, min
	}
	return From(func(g rng.Gen) (int64, Shrinker[int64]) {
		v := min + g.GenRange(0, max-min+1)
		return int64ShrinkInit(v, min, max)
	})
}

// ---------------- implementation / shrinking ----------------

func int64ShrinkInit(start, min, max int64) (int64, Shrinker[int64]) {
	cur, last := clamp64(start, min, max), clamp64(start, min, max)

	queue := make([]int64, 0, 16)
	seen := map[int64]struct{}{cur: {}}

	push := func(x int64) {
		if x < min || x > max {
			return
		}
		if _, ok := seen[x]; ok {
			return
		}
		seen[x] = struct{}{}
		queue = append(queue, x)
	}

	grow := func(base int64) {
		queue = queue[:0]

		if base < 0 {
			push(-base)
		}

		target := shrinkTarget64(min, max)
		if base != target {
			push(target)
		}
		if base != target {
			next := midpointTowards64(base, target)
			if next != base {
				push(next)
			}
			series := next
			for i := 0; i < 8 && series != target; i++ {
				series = midpointTowards64(series, target)
				if series != base {
					push(series)
				}
			}
		}
		if base != target {
			push(stepTowards64(base, target))
		}
		if base != min {
			push(min)
		}
		if base != max {
			push(max)
		}
	}
	grow(cur)

	return cur, func(accept bool) (int64, bool) {
		if accept && last != cur {
			cur = last
			grow(cur)
		}
		var (
			nxt int64
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

// shrinkTarget64 returns the "natural" target to shrink towards for int64.
func shrinkTarget64(min, max int64) int64 {
	if min <= 0 && 0 <= max {
		return 0
	}
	if min > 0 {
		return min
	}
	return max
}

// clamp64 constrains an int64 value to be within the given bounds.
func clamp64(x, min, max int64) int64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// midpointTowards64 gives a "bisection step" from a towards b for int64.
func midpointTowards64(a, b int64) int64 {
	if a == b {
		return a
	}
	d := b - a
	step := d / 2
	if step == 0 {
		if d > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	return a + step
}

// stepTowards64 moves one unit step from a towards b for int64.
func stepTowards64(a, b int64) int64 {
	if a == b {
		return a
	}
	if b > a {
		return a + 1
	}
	return a - 1
}
