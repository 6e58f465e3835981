// Command qcheck is a demonstration CLI: it runs one of the engine's
// built-in example properties through the driver and prints the outcome.
// It is surface-syntax convenience over the core — the kind of build
// integration the core itself does not concern itself with.
package main

import (
	"fmt"
	"os"

	"github.com/qcheck-go/qcheck/cmd/qcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
