// File: gen/int.go
package gen

import "github.com/qcheck-go/qcheck/rng"

// Int draws a signed int uniformly from [-size, size], where size is the
// generator's current size parameter (or an explicit override, when that
// is larger). shrink
// flips the sign first (when the value is negative) so the shrinker can
// reach the positive mirror, then descends toward zero by bisection.
func Int(override ...int) Generator[int] {
	return From(func(g rng.Gen) (int, Shrinker[int]) {
		m := effectiveSize(g, override)
		v := int(g.GenRange(int64(-m), int64(m)+1))
		return intShrinkInit(v, -m, m)
	})
}

// IntRange generates integers uniformly in the range [min, max] (inclusive),
// ignoring the generator's size parameter.
func IntRange(min, max int) Generator[int] {
	if min > max {
		min, max = max, min
	}
	return From(func(g rng.Gen) (int, Shrinker[int]) {
		v := min + int(g.GenRange(0, int64(max-min)+1))
		return intShrinkInit(v, min, max)
	})
}

// -------------------- implementation / shrinking --------------------

// intShrinkInit initializes the shrinking process for an integer value.
// It returns the initial value and a shrinker function that can generate
// progressively smaller candidates.
func intShrinkInit(start, min, max int) (int, Shrinker[int]) {
	cur := clamp(start, min, max)
	last := cur

	queue := make([]int, 0, 16)
	seen := map[int]struct{}{cur: {}}

	push := func(x int) {
		if x < min || x > max {
			return
		}
		if _, ok := seen[x]; ok {
			return
		}
		seen[x] = struct{}{}
		queue = append(queue, x)
	}

	// neighbor heuristics:
	//  0) flip sign, so a negative value can reach its positive mirror
	//  1) approach the target (0 if in range, otherwise closest bound)
	//  2) "halfway" towards the target (bisection)
	//  3) unit step towards the target (+/-1)
	growNeighbors := func(base int) {
		// Candidates queued for the previous base but never tried may be
		// proposed again for the new one.
		for _, x := range queue {
			delete(seen, x)
		}
		queue = queue[:0]

		if base < 0 {
			push(-base)
		}

		target := shrinkTarget(min, max)

		if base != target {
			push(target)
		}

		if base != target {
			next := midpointTowards(base, target)
			if next != base {
				push(next)
			}
			series := next
			for i := 0; i < 8; i++ {
				if series == target {
					break
				}
				series = midpointTowards(series, target)
				if series != base {
					push(series)
				}
			}
		}

		if base != target {
			step := stepTowards(base, target)
			if step != base {
				push(step)
			}
		}
	}

	growNeighbors(cur)

	return cur, func(accept bool) (int, bool) {
		if accept && last != cur {
			cur = last
			growNeighbors(cur)
		}
		var (
			nxt int
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

// shrinkTarget returns the "natural" target to shrink towards:
// - 0 if 0 ∈ [min,max]; otherwise, the bound closest to 0.
func shrinkTarget(min, max int) int {
	if min <= 0 && 0 <= max {
		return 0
	}
	if min > 0 {
		return min
	}
	return max
}

// midpointTowards gives a "bisection step" from a towards b,
// truncating the half-distance toward 'a' but always moving at least one
// unit, to guarantee progress.
func midpointTowards(a, b int) int {
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

// stepTowards moves one unit step from a towards b.
func stepTowards(a, b int) int {
	if a == b {
		return a
	}
	if b > a {
		return a + 1
	}
	return a - 1
}

// clamp constrains a value to be within the given bounds.
func clamp(x, min, max int) int {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// absInt returns the absolute value of an integer.
func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// effectiveSize resolves an optional explicit magnitude override against
// the generator's size parameter, defaulting to 100 when neither informs
// a bound.
func effectiveSize(g rng.Gen, override []int) int {
	m := absInt(g.Size())
	for _, o := range override {
		if a := absInt(o); a > m {
			m = a
		}
	}
	if m == 0 {
		m = 100
	}
	return m
}
