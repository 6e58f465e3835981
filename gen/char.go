package gen

import "github.com/qcheck-go/qcheck/rng"

// Rune draws a character from the ASCII printable range. Equivalent to
// RuneFrom(AlphabetASCII).
func Rune() Generator[rune] {
	return RuneFrom(AlphabetASCII)
}

// RuneFrom draws a character uniformly from the given alphabet. Its
// preorder treats alphabet[0] as simplest, the zero rune next (whether or
// not the alphabet contains it), then orders remaining runes by code-point distance
// from alphabet[0] — so shrink(alphabet[0]) is empty.
func RuneFrom(alphabet string) Generator[rune] {
	pool := []rune(alphabet)
	if len(pool) == 0 {
		pool = []rune(AlphabetASCII)
	}
	target := pool[0]
	return From(func(g rng.Gen) (rune, Shrinker[rune]) {
		v := pool[g.GenRange(0, int64(len(pool)))]
		return runeShrinkInit(v, target)
	})
}

func runeShrinkInit(start, target rune) (rune, Shrinker[rune]) {
	cur := start
	last := cur

	queue := make([]rune, 0, 8)
	seen := map[rune]struct{}{cur: {}}

	push := func(r rune) {
		if _, ok := seen[r]; ok {
			return
		}
		seen[r] = struct{}{}
		queue = append(queue, r)
	}

	grow := func(base rune) {
		queue = queue[:0]
		if base != target {
			push(target)
		}
		if base != 0 && base != target {
			push(0)
		}
		if base != target {
			next := midpointTowards(int(base), int(target))
			if rune(next) != base {
				push(rune(next))
			}
			series := next
			for i := 0; i < 6 && rune(series) != target; i++ {
				series = midpointTowards(series, int(target))
				if rune(series) != base {
					push(rune(series))
				}
			}
		}
	}
	grow(cur)

	return cur, func(accept bool) (rune, bool) {
		if accept && last != cur {
			cur = last
			grow(cur)
		}
		var (
			nxt rune
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
