package gen

import "github.com/qcheck-go/qcheck/rng"

// arrCand is a queued shrink candidate for ArrayOf: the position it
// replaced, so an acceptance can rebase that position's own shrinker
// in place instead of discarding every shrinker in the array.
type arrCand[T any] struct {
	value []T
	pos   int
}

// ArrayOf generates a slice of exact length n, using the element generator.
// It is "array-like": useful to simulate [N]T. Shrink cannot remove
// elements; it only tries a local shrink step at each position.
func ArrayOf[T any](elem Generator[T], n int) Generator[[]T] {
	return From(func(g rng.Gen) ([]T, Shrinker[[]T]) {
		if n < 0 {
			n = 0
		}

		cur := make([]T, n)
		elS := make([]Shrinker[T], n)
		for i := 0; i < n; i++ {
			v, s := elem.Generate(g)
			cur[i], elS[i] = v, s
		}

		queue := make([]arrCand[T], 0, 32)
		seen := map[string]struct{}{sig(cur): {}}
		var last arrCand[T]
		haveLast := false

		push := func(c arrCand[T]) {
			k := sig(c.value)
			if _, ok := seen[k]; ok {
				return
			}
			seen[k] = struct{}{}
			c.value = append(([]T)(nil), c.value...)
			queue = append(queue, c)
		}

		grow := func(base []T) {
			queue = queue[:0]
			L := len(base)
			for i := 0; i < L; i++ {
				if elS[i] == nil {
					continue
				}
				if nv, ok := elS[i](false); ok {
					cand := append(([]T)(nil), base...)
					cand[i] = nv
					push(arrCand[T]{value: cand, pos: i})
				}
			}
		}
		grow(cur)

		return cur, func(accept bool) ([]T, bool) {
			if accept && haveLast && sig(last.value) != sig(cur) {
				if last.pos >= 0 && last.pos < len(elS) && elS[last.pos] != nil {
					// Rebase just the touched position's shrinker; the
					// others are untouched and keep their own state.
					elS[last.pos](true)
				}
				cur = last.value
				grow(cur)
			}
			var (
				nxt arrCand[T]
				ok  bool
			)
			nxt, queue, ok = popQueue(queue)
			if !ok {
				return nil, false
			}
			last = nxt
			haveLast = true
			return nxt.value, true
		}
	})
}
