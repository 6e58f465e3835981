// Package prop is a thin testing.T integration built directly on the gen
// generators: it drives a single-argument property through t.Run subtests
// and shrinks a failing value itself, without going through the
// quickcheck/testable driver.
package prop

import (
	"flag"
	"fmt"
	"testing"
	"time"

	"github.com/qcheck-go/qcheck/gen"
	"github.com/qcheck-go/qcheck/rng"
)

// Config holds the configuration for a ForAll run.
type Config struct {
	// Seed is the random seed used for test case generation. If zero, a
	// random seed is generated from the current time.
	Seed int64

	// Examples is the number of test cases to generate and run.
	Examples int

	// MaxShrink is the maximum number of shrinking steps to perform when a
	// counterexample is found.
	MaxShrink int

	// ShrinkStrat selects the shrinking strategy: "bfs" or "dfs".
	ShrinkStrat string

	// StopOnFirstFailure stops the run after the first failing test case.
	StopOnFirstFailure bool
}

var (
	flagSeed        = flag.Int64("qcheck.seed", 0, "Random seed for test case generation")
	flagExamples    = flag.Int("qcheck.examples", 100, "Number of test cases to generate")
	flagMaxShrink   = flag.Int("qcheck.maxshrink", 400, "Maximum number of shrinking steps")
	flagShrinkStrat = flag.String("qcheck.shrink.strategy", "bfs", "Shrinking strategy (bfs or dfs)")
)

// Default returns a Config with default values based on command-line flags.
func Default() Config {
	return Config{
		Seed:               *flagSeed,
		Examples:           *flagExamples,
		MaxShrink:          *flagMaxShrink,
		ShrinkStrat:        *flagShrinkStrat,
		StopOnFirstFailure: true,
	}
}

func (c Config) effectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// ForAll creates a property-based test that generates test cases using g and
// runs them against body as named subtests of t. On failure it shrinks the
// counterexample and reports the minimal one found.
//
// Example usage:
//
//	ForAll(t, prop.Default(), gen.Int())(func(t *testing.T, x int) {
//	    if x+0 != x {
//	        t.Errorf("addition identity failed for %d", x)
//	    }
//	})
func ForAll[T any](t *testing.T, cfg Config, g gen.Generator[T]) func(func(*testing.T, T)) {
	return func(body func(*testing.T, T)) {
		seed := cfg.effectiveSeed()
		gn := rng.New(seed, 100)
		gen.SetShrinkStrategy(cfg.ShrinkStrat)

		t.Logf("[qcheck] seed=%d examples=%d maxshrink=%d strategy=%s",
			seed, cfg.Examples, cfg.MaxShrink, cfg.ShrinkStrat)

		for i := 0; i < cfg.Examples; i++ {
			val, shrink := g.Generate(gn)
			name := fmt.Sprintf("ex#%d", i+1)

			passed := t.Run(name, func(st *testing.T) { body(st, val) })
			if passed {
				continue
			}

			min := val
			steps := 0
			acceptedPrev := true

			for steps < cfg.MaxShrink {
				next, ok := shrink(acceptedPrev)
				if !ok {
					break
				}
				steps++
				sname := fmt.Sprintf("%s/shrink#%d", name, steps)

				stillFails := !t.Run(sname, func(st *testing.T) { body(st, next) })
				if stillFails {
					min = next
					acceptedPrev = true
				} else {
					acceptedPrev = false
				}
			}

			full := fmt.Sprintf("^%s$/%s(/|$)", t.Name(), name)
			t.Errorf("[qcheck] property failed; seed=%d; examples_run=%d; shrunk_steps=%d\n"+
				"counterexample (min): %#v\nreplay: go test -run '%s' -qcheck.seed=%d",
				seed, i+1, steps, min, full, seed)

			if cfg.StopOnFirstFailure {
				return
			}
		}
	}
}
