package gen

import "github.com/qcheck-go/qcheck/rng"

// Bool generates boolean values uniformly. false is the leaf of the
// preorder: shrink(true) yields [false]; shrink(false) yields [].
func Bool() Generator[bool] {
	return From(func(g rng.Gen) (bool, Shrinker[bool]) {
		v := g.GenRange(0, 2) == 0

		proposed := false
		return v, func(accept bool) (bool, bool) {
			// the only candidate is `false`, proposed once for `true`;
			// whatever its fate, there is nothing smaller left to propose.
			if proposed || !v {
				return false, false
			}
			proposed = true
			return false, true
		}
	})
}
