package gen

import "github.com/qcheck-go/qcheck/rng"

// Option represents a value that is either present (Valid, holding Value)
// or absent (None).
type Option[T any] struct {
	Valid bool
	Value T
}

// None constructs an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// Some constructs a present Option.
func Some[T any](v T) Option[T] { return Option[T]{Valid: true, Value: v} }

// OptionOf generates an Option[T]: None with probability ~= 1/(size+1),
// otherwise Some(T). shrink(None) = []; shrink(Some(v)) tries None first,
// then v's own shrinks.
func OptionOf[T any](elem Generator[T]) Generator[Option[T]] {
	return From(func(g rng.Gen) (Option[T], Shrinker[Option[T]]) {
		size := g.Size()
		isNone := g.GenRange(0, int64(size)+1) == 0

		if isNone {
			return None[T](), func(bool) (Option[T], bool) { return Option[T]{}, false }
		}

		v, sv := elem.Generate(g)
		proposedNone := false
		noneAccepted := false
		elemProposed := false

		return Some(v), func(accept bool) (Option[T], bool) {
			if noneAccepted {
				return Option[T]{}, false
			}
			if !proposedNone {
				proposedNone = true
				return None[T](), true
			}
			if !elemProposed {
				// accept here reports on the None candidate.
				if accept {
					noneAccepted = true
					return Option[T]{}, false
				}
				elemProposed = true
			}
			nv, ok := sv(accept)
			if !ok {
				return Option[T]{}, false
			}
			return Some(nv), true
		}
	})
}
