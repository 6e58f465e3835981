package gen

import "github.com/qcheck-go/qcheck/rng"

// Either is a two-variant disjoint union: exactly one of Left/Right is
// populated, selected by IsLeft.
type Either[L, R any] struct {
	IsLeft bool
	Left   L
	Right  R
}

// MakeLeft constructs a left-tagged Either.
func MakeLeft[L, R any](v L) Either[L, R] { return Either[L, R]{IsLeft: true, Left: v} }

// MakeRight constructs a right-tagged Either.
func MakeRight[L, R any](v R) Either[L, R] { return Either[L, R]{Right: v} }

// EitherOf picks one side with equal probability. shrink never crosses the
// variant boundary: a left value only ever shrinks to smaller left values,
// and symmetrically for right.
func EitherOf[L, R any](left Generator[L], right Generator[R]) Generator[Either[L, R]] {
	return From(func(g rng.Gen) (Either[L, R], Shrinker[Either[L, R]]) {
		if g.GenRange(0, 2) == 0 {
			v, sv := left.Generate(g)
			return MakeLeft[L, R](v), func(accept bool) (Either[L, R], bool) {
				nv, ok := sv(accept)
				if !ok {
					return Either[L, R]{}, false
				}
				return MakeLeft[L, R](nv), true
			}
		}
		v, sv := right.Generate(g)
		return MakeRight[L, R](v), func(accept bool) (Either[L, R], bool) {
			nv, ok := sv(accept)
			if !ok {
				return Either[L, R]{}, false
			}
			return MakeRight[L, R](nv), true
		}
	})
}
