// Package quickcheck is the run/shrink state machine: it schedules
// generation attempts against a testable.Testable, honors the
// pass/fail/discard trichotomy, and on failure performs greedy descent
// through the shrink space.
package quickcheck

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qcheck-go/qcheck/gen"
	"github.com/qcheck-go/qcheck/internal/telemetry"
	"github.com/qcheck-go/qcheck/rng"
	"github.com/qcheck-go/qcheck/testable"
)

// Config is process-local, immutable-per-run configuration for a check.
type Config struct {
	// Tests is the number of passing outcomes required to declare success.
	Tests int
	// MaxTests is the total number of outcomes, including discards, before
	// giving up.
	MaxTests int
	// Size is the initial size parameter handed to generators.
	Size int
	// MinTestsPassed is the minimum number of passes required even if
	// MaxTests is exhausted; otherwise the run reports Exhausted.
	MinTestsPassed int
	// Seed seeds the random source. Zero means derive one from the clock.
	Seed int64
	// ShrinkStrategy selects gen.ShrinkStrategyBFS or gen.ShrinkStrategyDFS.
	ShrinkStrategy string
	// Logger receives run-progress events. The zero value is
	// telemetry.Disabled: a run is silent unless the caller opts in, per
	// §6 ("the engine is agnostic to environment variables for its core
	// behavior").
	Logger telemetry.Logger
}

// Default returns the configuration named in the data model: 100 tests,
// 10000 max tests, size 100, no minimum passed floor.
func Default() Config {
	return Config{
		Tests:          100,
		MaxTests:       10_000,
		Size:           100,
		MinTestsPassed: 0,
		ShrinkStrategy: gen.ShrinkStrategyBFS,
	}
}

func (c Config) effectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Kind distinguishes the three possible shapes of a finished run.
type Kind int

const (
	Success Kind = iota
	Failure
	Exhausted
)

// RunResult is the outcome of a full quickcheck run.
type RunResult struct {
	Kind Kind

	// Passed/Discarded are always populated.
	Passed    int
	Discarded int

	// Failure fields, populated when Kind == Failure.
	Witness     []string
	Err         error
	ShrinkDepth int

	Seed int64

	// RunID uniquely identifies this run for correlation with Logger
	// output; it carries no semantic weight for pass/fail/discard.
	RunID string
}

// String renders the result the way the engine is required to: on success,
// the number of passing outcomes; on failure, the word identifying the
// failure, the witness, and any captured error message.
func (r RunResult) String() string {
	switch r.Kind {
	case Success:
		return fmt.Sprintf("OK, passed %d tests", r.Passed)
	case Exhausted:
		return fmt.Sprintf("Exhausted after %d passed, %d discarded", r.Passed, r.Discarded)
	default:
		msg := fmt.Sprintf("Falsified after %d passed, %d discarded; witness=(%s)",
			r.Passed, r.Discarded, joinWitness(r.Witness))
		if r.Err != nil {
			msg += fmt.Sprintf("; error: %s", r.Err)
		}
		return msg
	}
}

func joinWitness(ws []string) string {
	out := ""
	for i, w := range ws {
		if i > 0 {
			out += ", "
		}
		out += w
	}
	return out
}

// Check runs t against Default().
func Check(t testable.Testable) RunResult { return CheckWith(Default(), t) }

// CheckWith runs t under the given configuration, per §4.4: a generation
// phase counting passes and discards, and — on first failure — a greedy
// shrink phase.
func CheckWith(cfg Config, t testable.Testable) RunResult {
	seed := cfg.effectiveSeed()
	if cfg.ShrinkStrategy != "" {
		gen.SetShrinkStrategy(cfg.ShrinkStrategy)
	}
	g := rng.New(seed, cfg.Size)
	runID := uuid.New().String()
	cfg.Logger.RunStart(runID, seed, cfg.Size, cfg.Tests, cfg.MaxTests)

	passed, discarded := 0, 0

	for passed+discarded < cfg.MaxTests {
		checked := t.Check(g)
		switch checked.Outcome.Status {
		case testable.Passed:
			passed++
			if passed >= cfg.Tests {
				cfg.Logger.RunEnd(runID, "Success", passed, discarded, 0)
				return RunResult{Kind: Success, Passed: passed, Discarded: discarded, Seed: seed, RunID: runID}
			}
		case testable.Discarded:
			discarded++
			cfg.Logger.Discarded(runID, discarded)
		case testable.Failed:
			cfg.Logger.FailureFound(runID, checked.Witness, checked.Outcome.Err)
			result := shrinkPhase(g, checked, passed, discarded, seed, cfg.Logger, runID)
			cfg.Logger.RunEnd(runID, "Failure", result.Passed, result.Discarded, result.ShrinkDepth)
			return result
		}
	}

	if passed >= cfg.MinTestsPassed {
		cfg.Logger.RunEnd(runID, "Success", passed, discarded, 0)
		return RunResult{Kind: Success, Passed: passed, Discarded: discarded, Seed: seed, RunID: runID}
	}
	cfg.Logger.RunEnd(runID, "Exhausted", passed, discarded, 0)
	return RunResult{Kind: Exhausted, Passed: passed, Discarded: discarded, Seed: seed, RunID: runID}
}

// shrinkPhase performs the greedy first-failure descent described in §4.4:
// at every step, the first shrink candidate that still fails is accepted
// and becomes the new baseline; the loop stops at the first local minimum.
func shrinkPhase(g rng.Gen, failing testable.Checked, passed, discarded int, seed int64, logger telemetry.Logger, runID string) RunResult {
	current := failing
	accept := true // first pull: the queue is already primed, value is moot
	depth := 0

	for {
		nextT, ok := current.Next(accept)
		if !ok {
			break
		}
		candidate := nextT.Check(g)
		if candidate.Outcome.Status == testable.Failed {
			current = candidate
			accept = true
			depth++
			logger.ShrinkStep(runID, depth, current.Witness)
			continue
		}
		// Rejected: current stays put, and the next call pops the
		// following queued neighbor instead of rebasing around this one.
		accept = false
	}

	return RunResult{
		Kind:        Failure,
		Passed:      passed,
		Discarded:   discarded,
		Witness:     current.Witness,
		Err:         current.Outcome.Err,
		ShrinkDepth: depth,
		Seed:        seed,
		RunID:       runID,
	}
}
