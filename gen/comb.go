// File: gen/comb.go
package gen

import "github.com/qcheck-go/qcheck/rng"

// -------------------------
// Basic helpers
// -------------------------

// Const always returns the same value, with no shrinking.
func Const[T any](v T) Generator[T] {
	return From(func(_ rng.Gen) (T, Shrinker[T]) {
		return v, func(bool) (T, bool) { var z T; return z, false }
	})
}

// OneOf picks uniformly among the given generators.
func OneOf[T any](gs ...Generator[T]) Generator[T] {
	return Weighted(func(_ T) float64 { return 1.0 }, gs...)
}

// Weighted picks a generator; weight is reserved for callers wanting to
// bias selection by value but is not consulted by this uniform
// implementation. The shrinker first exhausts the chosen generator's own
// shrink sequence, then migrates to a neighboring generator.
func Weighted[T any](weight func(T) float64, gs ...Generator[T]) Generator[T] {
	if len(gs) == 0 {
		panic("gen.Weighted: requires at least one generator")
	}
	return From(func(g rng.Gen) (T, Shrinker[T]) {
		idx := int(g.GenRange(0, int64(len(gs))))
		val, shrink := gs[idx].Generate(g)

		neighbors := make([]int, 0, len(gs)-1)
		for i := range gs {
			if i != idx {
				neighbors = append(neighbors, i)
			}
		}

		return val, func(accept bool) (T, bool) {
			if accept {
				if next, ok := shrink(true); ok {
					return next, true
				}
				for len(neighbors) > 0 {
					j := neighbors[0]
					neighbors = neighbors[1:]
					nv, ns := gs[j].Generate(g)
					idx, val, shrink = j, nv, ns
					return val, true
				}
				var z T
				return z, false
			}
			if next, ok := shrink(false); ok {
				return next, true
			}
			for len(neighbors) > 0 {
				j := neighbors[0]
				neighbors = neighbors[1:]
				nv, ns := gs[j].Generate(g)
				idx, val, shrink = j, nv, ns
				return val, true
			}
			var z T
			return z, false
		}
	})
}

// -------------------------
// Combinators
// -------------------------

// Map applies f: A -> B, preserving shrinking (maps A's candidates).
func Map[A, B any](ga Generator[A], f func(A) B) Generator[B] {
	return From(func(g rng.Gen) (B, Shrinker[B]) {
		a, sa := ga.Generate(g)
		b := f(a)
		return b, func(accept bool) (B, bool) {
			na, ok := sa(accept)
			if !ok {
				var z B
				return z, false
			}
			return f(na), true
		}
	})
}

// Filter keeps only values that satisfy pred. On shrink, whenever a
// candidate is accepted it rebases and keeps proposing candidates until
// one also satisfies pred.
func Filter[T any](ga Generator[T], pred func(T) bool, maxTries int) Generator[T] {
	if maxTries <= 0 {
		maxTries = 1000
	}
	return From(func(g rng.Gen) (T, Shrinker[T]) {
		var v T
		var s Shrinker[T]
		okv := false
		for tries := 0; tries < maxTries; tries++ {
			v, s = ga.Generate(g)
			if pred(v) {
				okv = true
				break
			}
		}
		if !okv {
			var z T
			return z, func(bool) (T, bool) { return z, false }
		}

		return v, func(accept bool) (T, bool) {
			for {
				nv, ok := s(accept)
				if !ok {
					var z T
					return z, false
				}
				if pred(nv) {
					return nv, true
				}
				accept = false
			}
		}
	})
}

// Bind (flatMap): the output generator depends on the value generated for
// A. Shrinking first tries to shrink B; once exhausted, it shrinks A and
// regenerates B from the new A.
func Bind[A, B any](ga Generator[A], f func(A) Generator[B]) Generator[B] {
	return From(func(g rng.Gen) (B, Shrinker[B]) {
		a, sa := ga.Generate(g)
		gb := f(a)
		b, sb := gb.Generate(g)

		state := 0 // 0 => shrink B; 1 => shrink A (and regenerate B)

		return b, func(accept bool) (B, bool) {
			switch state {
			case 0:
				if nb, ok := sb(accept); ok {
					return nb, true
				}
				state = 1
				accept = false
				fallthrough
			case 1:
				na, ok := sa(accept)
				if !ok {
					var z B
					return z, false
				}
				a = na
				gb = f(a)
				b, sb = gb.Generate(g)
				return b, true
			default:
				var z B
				return z, false
			}
		}
	})
}
