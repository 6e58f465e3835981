// Package gen is the arbitrary catalog: for every supported value type it
// bundles a sampler (draw a value bounded by the current size) and a
// shrinker (propose strictly simpler replacements for a failing value).
package gen

import "github.com/qcheck-go/qcheck/rng"

// Shrinker proposes progressively simpler candidates during shrinking.
// The accept parameter reports whether the PREVIOUS candidate it returned
// was itself accepted (i.e. it reproduced the failure). This lets the
// shrinker rebase: once a smaller failing value is known, it regenerates
// neighbors around that new minimum instead of the original value.
//
// A Shrinker is a pull-based iterator: calling it materializes exactly one
// further candidate (or reports exhaustion), so shrink trees are never
// built eagerly in memory.
type Shrinker[T any] func(accept bool) (next T, ok bool)

// Generator is the contract every catalog entry implements: given a
// randomness handle, produce a value and the shrinker that will minimize
// it if it turns out to cause a failure.
type Generator[T any] interface {
	Generate(g rng.Gen) (value T, shrink Shrinker[T])
}

// Shrinking strategy constants control the order in which a Shrinker's
// queued neighbors are popped.
const (
	ShrinkStrategyBFS = "bfs" // breadth-first: smallest proposed change first
	ShrinkStrategyDFS = "dfs" // depth-first: descend greedily along one branch
)

// shrinkStrategy holds the process-wide shrinking strategy. It is read by
// every built-in shrinker's pop step.
var shrinkStrategy = ShrinkStrategyBFS

// SetShrinkStrategy sets the shrinking strategy used by all generators.
// Any value other than ShrinkStrategyDFS is treated as BFS.
func SetShrinkStrategy(s string) {
	if s == ShrinkStrategyDFS {
		shrinkStrategy = ShrinkStrategyDFS
	} else {
		shrinkStrategy = ShrinkStrategyBFS
	}
}

// GetShrinkStrategy returns the current shrinking strategy.
func GetShrinkStrategy() string {
	return shrinkStrategy
}

// GenFunc adapts a plain function into a Generator.
type GenFunc[T any] struct {
	fn func(g rng.Gen) (T, Shrinker[T])
}

// Generate implements the Generator interface for GenFunc.
func (g GenFunc[T]) Generate(r rng.Gen) (T, Shrinker[T]) {
	return g.fn(r)
}

// From creates a Generator from a sampling function. This is the escape
// hatch by which a user type joins the catalog without hand-writing a
// named type that implements Generator.
func From[T any](fn func(g rng.Gen) (T, Shrinker[T])) Generator[T] {
	return GenFunc[T]{fn: fn}
}

// popQueue pops the next queued candidate according to the active shrink
// strategy: FIFO under BFS, LIFO under DFS. Shared by every built-in
// shrinker's pop step.
func popQueue[T any](queue []T) (T, []T, bool) {
	var zero T
	if len(queue) == 0 {
		return zero, queue, false
	}
	if shrinkStrategy == ShrinkStrategyDFS {
		v := queue[len(queue)-1]
		return v, queue[:len(queue)-1], true
	}
	v := queue[0]
	return v, queue[1:], true
}
