package gen

import "github.com/qcheck-go/qcheck/rng"

// Pair is a fixed-arity 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a fixed-arity 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad is a fixed-arity 4-tuple.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Tuple2 draws each component independently. Shrink replaces exactly one
// component by one of its own shrinks, scanning left to right: the first
// component is shrunk to exhaustion before the second is touched.
func Tuple2[A, B any](ga Generator[A], gb Generator[B]) Generator[Pair[A, B]] {
	return From(func(g rng.Gen) (Pair[A, B], Shrinker[Pair[A, B]]) {
		a, sa := ga.Generate(g)
		b, sb := gb.Generate(g)
		cur := Pair[A, B]{a, b}
		last := cur
		state := 0

		return cur, func(accept bool) (Pair[A, B], bool) {
			if accept {
				cur = last
			}
			for {
				switch state {
				case 0:
					if na, ok := sa(accept); ok {
						last = cur
						last.First = na
						return last, true
					}
					state, accept = 1, false
				case 1:
					if nb, ok := sb(accept); ok {
						last = cur
						last.Second = nb
						return last, true
					}
					return cur, false
				}
			}
		}
	})
}

// Tuple3 is Tuple2 extended with a third, left-to-right component.
func Tuple3[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[Triple[A, B, C]] {
	return From(func(g rng.Gen) (Triple[A, B, C], Shrinker[Triple[A, B, C]]) {
		a, sa := ga.Generate(g)
		b, sb := gb.Generate(g)
		c, sc := gc.Generate(g)
		cur := Triple[A, B, C]{a, b, c}
		last := cur
		state := 0

		return cur, func(accept bool) (Triple[A, B, C], bool) {
			if accept {
				cur = last
			}
			for {
				switch state {
				case 0:
					if na, ok := sa(accept); ok {
						last = cur
						last.First = na
						return last, true
					}
					state, accept = 1, false
				case 1:
					if nb, ok := sb(accept); ok {
						last = cur
						last.Second = nb
						return last, true
					}
					state, accept = 2, false
				case 2:
					if nc, ok := sc(accept); ok {
						last = cur
						last.Third = nc
						return last, true
					}
					return cur, false
				}
			}
		}
	})
}

// Tuple4 is Tuple2 extended with third and fourth, left-to-right components.
func Tuple4[A, B, C, D any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D]) Generator[Quad[A, B, C, D]] {
	return From(func(g rng.Gen) (Quad[A, B, C, D], Shrinker[Quad[A, B, C, D]]) {
		a, sa := ga.Generate(g)
		b, sb := gb.Generate(g)
		c, sc := gc.Generate(g)
		d, sd := gd.Generate(g)
		cur := Quad[A, B, C, D]{a, b, c, d}
		last := cur
		state := 0

		return cur, func(accept bool) (Quad[A, B, C, D], bool) {
			if accept {
				cur = last
			}
			for {
				switch state {
				case 0:
					if na, ok := sa(accept); ok {
						last = cur
						last.First = na
						return last, true
					}
					state, accept = 1, false
				case 1:
					if nb, ok := sb(accept); ok {
						last = cur
						last.Second = nb
						return last, true
					}
					state, accept = 2, false
				case 2:
					if nc, ok := sc(accept); ok {
						last = cur
						last.Third = nc
						return last, true
					}
					state, accept = 3, false
				case 3:
					if nd, ok := sd(accept); ok {
						last = cur
						last.Fourth = nd
						return last, true
					}
					return cur, false
				}
			}
		}
	})
}
