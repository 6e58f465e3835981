package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/qcheck-go/qcheck/gen"
	"github.com/qcheck-go/qcheck/internal/telemetry"
	"github.com/qcheck-go/qcheck/quickcheck"
	"github.com/qcheck-go/qcheck/testable"
)

var (
	flagProperty string
	flagTests    int
	flagMaxTests int
	flagSize     int
	flagSeed     int64
	flagStrategy string
	flagLogLevel string
)

// runCmd drives one of the built-in demonstration properties through the
// quickcheck driver and reports the result.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a built-in demonstration property",
	Long: `Run one of the built-in demonstration properties through the
quickcheck driver.

Available properties:
  reverse  reverse(reverse(xs)) == xs for a correct reverse (passes)
  sieve    sieve-of-Eratosthenes primality against an off-by-one sieve (fails, shrinks to 4)
  panic    a predicate that unconditionally panics (fails, captures the message)`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&flagProperty, "property", "p", "reverse", "property to run (reverse|sieve|panic)")
	runCmd.Flags().IntVar(&flagTests, "tests", 100, "number of passing outcomes required to declare success")
	runCmd.Flags().IntVar(&flagMaxTests, "max-tests", 10_000, "total outcomes, including discards, before giving up")
	runCmd.Flags().IntVar(&flagSize, "size", 100, "initial size parameter handed to generators")
	runCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed (0 derives one from the clock)")
	runCmd.Flags().StringVar(&flagStrategy, "shrink-strategy", gen.ShrinkStrategyBFS, "shrink strategy (bfs|dfs)")
	runCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "zerolog level for run-progress logging (debug, info, warn); empty disables logging")
}

func runRun(cmd *cobra.Command, args []string) error {
	prop, err := demoProperty(flagProperty)
	if err != nil {
		return err
	}

	logger := telemetry.Disabled
	if flagLogLevel != "" {
		lvl, err := zerolog.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = telemetry.New(lvl, cmd.ErrOrStderr())
	}

	cfg := quickcheck.Config{
		Tests:          flagTests,
		MaxTests:       flagMaxTests,
		Size:           flagSize,
		Seed:           flagSeed,
		ShrinkStrategy: flagStrategy,
		Logger:         logger,
	}

	res := quickcheck.CheckWith(cfg, prop)
	fmt.Fprintf(cmd.OutOrStdout(), "run %s: %s\n", res.RunID, res)
	fmt.Fprintf(cmd.OutOrStdout(), "passed=%s discarded=%s\n",
		humanize.Comma(int64(res.Passed)), humanize.Comma(int64(res.Discarded)))

	if res.Kind == quickcheck.Failure {
		return fmt.Errorf("property %q falsified", flagProperty)
	}
	return nil
}

func demoProperty(name string) (testable.Testable, error) {
	switch name {
	case "reverse":
		return testable.Func1Bool(gen.SliceOf(gen.Int64()), func(xs []int64) bool {
			return int64SlicesEqual(xs, reverseInt64(reverseInt64(xs)))
		}), nil
	case "sieve":
		return testable.Func1Bool(gen.IntRange(0, 64), func(n int) bool {
			for _, p := range buggySieve(n) {
				if !isPrime(p) {
					return false
				}
			}
			return true
		}), nil
	case "panic":
		return testable.Func1Bool(gen.Int(), func(int) bool {
			panic("boom")
		}), nil
	default:
		return nil, fmt.Errorf("unknown property %q (want reverse, sieve, or panic)", name)
	}
}

func reverseInt64(xs []int64) []int64 {
	out := make([]int64, len(xs))
	for i, v := range xs {
		out[len(xs)-1-i] = v
	}
	return out
}

func int64SlicesEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// buggySieve off-by-ones its inner loop stop, never marking n itself as
// composite, so every composite n >= 4 is reported prime; 4 is the least.
func buggySieve(n int) []int {
	if n < 2 {
		return nil
	}
	isComposite := make([]bool, n+2)
	var primes []int
	for i := 2; i <= n; i++ {
		if !isComposite[i] {
			primes = append(primes, i)
			for j := i * i; j < n; j += i {
				isComposite[j] = true
			}
		}
	}
	var out []int
	for _, p := range primes {
		if p <= n {
			out = append(out, p)
		}
	}
	return out
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
