// Package telemetry is the engine's sole logging surface: a thin wrapper
// over zerolog that every package reporting run progress (the driver, the
// CLI demo) logs through, so that enabling it never changes correctness —
// only what gets printed.
package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger gated by a level. Its zero value is
// nil-safe and logs nothing, so a bare Config{} literal (no Logger set)
// stays silent — matching §6's "agnostic to environment variables for its
// core behavior".
type Logger struct {
	z *zerolog.Logger
}

// Disabled is a Logger that discards everything; it is the default used
// by the driver when the caller supplies no Config.Logger.
var Disabled = Logger{}

// New builds a Logger at the given zerolog.Level, writing to w (os.Stderr
// if nil) in medusa-style unstructured console form.
func New(level zerolog.Level, w io.Writer) Logger {
	if level == zerolog.Disabled {
		return Disabled
	}
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	z := zerolog.New(console).Level(level).With().Timestamp().Logger()
	return Logger{z: &z}
}

// FromEnv builds a Logger from the named environment variable, whose value
// is a zerolog level name ("debug", "info", "warn", ...). An unset or
// unrecognized value yields Disabled, so a property test run stays silent
// unless the caller opts in.
func FromEnv(envVar string) Logger {
	raw := os.Getenv(envVar)
	if raw == "" {
		return Disabled
	}
	lvl, err := zerolog.ParseLevel(raw)
	if err != nil {
		return Disabled
	}
	return New(lvl, os.Stderr)
}

// RunStart logs the configuration a run is about to execute under.
func (l Logger) RunStart(runID string, seed int64, size, tests, maxTests int) {
	if l.z == nil {
		return
	}
	l.z.Info().Str("run_id", runID).Int64("seed", seed).Int("size", size).
		Int("tests", tests).Int("max_tests", maxTests).Msg("quickcheck run starting")
}

// Discarded logs a single discarded outcome at debug level; discards are
// frequent enough that info level would drown out everything else.
func (l Logger) Discarded(runID string, count int) {
	if l.z == nil {
		return
	}
	l.z.Debug().Str("run_id", runID).Int("discarded", count).Msg("outcome discarded")
}

// FailureFound logs the first failing outcome, before shrinking begins.
func (l Logger) FailureFound(runID string, witness []string, err error) {
	if l.z == nil {
		return
	}
	ev := l.z.Warn().Str("run_id", runID).Strs("witness", witness)
	if err != nil {
		ev = ev.Str("error", err.Error())
	}
	ev.Msg("property falsified, entering shrink phase")
}

// ShrinkStep logs one accepted shrink candidate.
func (l Logger) ShrinkStep(runID string, depth int, witness []string) {
	if l.z == nil {
		return
	}
	l.z.Debug().Str("run_id", runID).Int("depth", depth).Strs("witness", witness).
		Msg("shrink candidate accepted")
}

// RunEnd logs the final classification of a run.
func (l Logger) RunEnd(runID string, kind string, passed, discarded, shrinkDepth int) {
	if l.z == nil {
		return
	}
	l.z.Info().Str("run_id", runID).Str("result", kind).Int("passed", passed).
		Int("discarded", discarded).Int("shrink_depth", shrinkDepth).Msg("quickcheck run finished")
}
