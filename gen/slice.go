package gen

import (
	"fmt"

	"github.com/qcheck-go/qcheck/rng"
)

// sliceCand is a queued shrink candidate for SliceOf, carrying enough
// provenance about how it was built that an acceptance can update the
// per-element shrinkers correctly instead of discarding them: a removal
// candidate's surviving elements keep their own shrinkers (just reindexed),
// and a replace candidate's one touched position has its shrinker rebased.
type sliceCand[T any] struct {
	value    []T
	isRemove bool
	loRemove int
	hiRemove int
	replace  int
}

// SliceOf generates []T from an element generator. The length is drawn in
// [0, g.Size()] unless an explicit [min, max] override is given.
//
// Shrink, in order:
//
//	(1) remove the whole sequence, then remove contiguous blocks shrinking
//	    by half, quarter, eighth, ... down to single elements
//	(2) replace one element by one of its own shrinks, scanning left to
//	    right
func SliceOf[T any](elem Generator[T], lengthRange ...int) Generator[[]T] {
	minLen, maxLen := 0, -1
	if len(lengthRange) >= 1 {
		minLen = lengthRange[0]
	}
	if len(lengthRange) >= 2 {
		maxLen = lengthRange[1]
	}
	return From(func(g rng.Gen) ([]T, Shrinker[[]T]) {
		lo, hi := minLen, maxLen
		if hi < lo {
			hi = lo + g.Size()
		}
		n := lo
		if hi > lo {
			n += int(g.GenRange(0, int64(hi-lo)+1))
		}

		vals := make([]T, n)
		shks := make([]Shrinker[T], n)
		for i := 0; i < n; i++ {
			v, s := elem.Generate(g)
			vals[i], shks[i] = v, s
		}
		cur := append(([]T)(nil), vals...)

		seen := map[string]struct{}{sig(cur): {}}
		queue := make([]sliceCand[T], 0, 64)
		var last sliceCand[T]
		haveLast := false

		push := func(c sliceCand[T]) {
			k := sig(c.value)
			if _, ok := seen[k]; ok {
				return
			}
			seen[k] = struct{}{}
			c.value = append(make([]T, 0, len(c.value)), c.value...)
			queue = append(queue, c)
		}

		rem := func(base []T, i, j int) []T {
			out := make([]T, 0, len(base)-(j-i))
			out = append(out, base[:i]...)
			out = append(out, base[j:]...)
			return out
		}

		growNeighbors := func(base []T) {
			queue = queue[:0]
			L := len(base)
			if L == 0 {
				return
			}
			// (1a) remove the whole sequence
			push(sliceCand[T]{value: rem(base, 0, L), isRemove: true, loRemove: 0, hiRemove: L})

			// (1b) remove contiguous blocks, halving the chunk size
			chunk := L / 2
			for chunk >= 1 {
				for i := 0; i+chunk <= L; i += chunk {
					push(sliceCand[T]{value: rem(base, i, i+chunk), isRemove: true, loRemove: i, hiRemove: i + chunk})
				}
				chunk /= 2
			}

			// (2) shrink elements locally, maintaining length, L->R
			for i := 0; i < L; i++ {
				if shks == nil || shks[i] == nil {
					continue
				}
				if nv, ok := shks[i](false); ok {
					cand := append(([]T)(nil), base...)
					cand[i] = nv
					push(sliceCand[T]{value: cand, replace: i})
				}
			}
		}
		growNeighbors(cur)

		return cur, func(accept bool) ([]T, bool) {
			if accept && haveLast && sig(last.value) != sig(cur) {
				if last.isRemove {
					// The surviving elements are unchanged, so their
					// shrinkers stay valid; just reindex them to match the
					// shortened slice.
					lo, hi := last.loRemove, last.hiRemove
					if hi > len(shks) {
						hi = len(shks)
					}
					if lo > hi {
						lo = hi
					}
					newShks := make([]Shrinker[T], 0, len(shks)-(hi-lo))
					newShks = append(newShks, shks[:lo]...)
					newShks = append(newShks, shks[hi:]...)
					shks = newShks
				} else if last.replace >= 0 && last.replace < len(shks) && shks[last.replace] != nil {
					// Tell the touched position's shrinker that its last
					// proposed value was accepted, so it rebases and keeps
					// offering strictly smaller candidates for that slot.
					shks[last.replace](true)
				}
				cur = last.value
				growNeighbors(cur)
			}
			var (
				nxt sliceCand[T]
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

// sig creates a simplified textual signature of a generic slice.
// For shrinking dedup purposes, this is sufficient.
func sig[T any](s []T) string { return fmt.Sprintf("%#v", s) }
