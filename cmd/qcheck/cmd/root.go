package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd is the base command all subcommands hang off of.
var rootCmd = &cobra.Command{
	Use:   "qcheck",
	Short: "Run built-in property-based testing demonstrations",
	Long: `qcheck is a demonstration CLI around the qcheck property-based
testing engine. It exposes a handful of built-in example properties so the
run/shrink driver can be exercised without writing Go code.`,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	return rootCmd.Execute()
}
