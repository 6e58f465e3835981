package gen

import "github.com/qcheck-go/qcheck/rng"

// unsignedShrinkInit is a generic implementation for unsigned integer
// shrinking. It works with any unsigned integer type that supports the
// required operations.
func unsignedShrinkInit[T ~uint | ~uint64](start, min, max T) (T, Shrinker[T]) {
	cur, last := clampUnsigned(start, min, max), clampUnsigned(start, min, max)

	queue := make([]T, 0, 16)
	seen := map[T]struct{}{cur: {}}

	push := func(x T) {
		if x < min || x > max {
			return
		}
		if _, ok := seen[x]; ok {
			return
		}
		seen[x] = struct{}{}
		queue = append(queue, x)
	}

	grow := func(base T) {
		queue = queue[:0]
		// (1) natural target for unsigned integers is 0
		if base != 0 {
			push(0)
		}
		// (2) bisections towards 0
		if base != 0 {
			next := base / 2
			if next != base {
				push(next)
			}
			series := next
			for i := 0; i < 8 && series > 0; i++ {
				series /= 2
				push(series)
			}
		}
		// (3) unit step towards 0
		if base > 0 {
			push(base - 1)
		}
		// (4) bounds
		if base != min {
			push(min)
		}
		if base != max {
			push(max)
		}
	}
	grow(cur)

	return cur, func(accept bool) (T, bool) {
		if accept && last != cur {
			cur = last
			grow(cur)
		}
		var (
			nxt T
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

// clampUnsigned constrains an unsigned integer value to be within the given bounds.
func clampUnsigned[T ~uint | ~uint64](x, min, max T) T {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// unsignedEffectiveSize resolves an optional explicit bound override against
// the generator's size parameter, defaulting to 100 when neither informs it.
func unsignedEffectiveSize[T ~uint | ~uint64](g rng.Gen, override []T) T {
	m := T(g.Size())
	for _, o := range override {
		if o > m {
			m = o
		}
	}
	if m == 0 {
		m = 100
	}
	return m
}
