package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// versionCmd prints the CLI's own version; it has nothing to do with the
// engine's correctness and is purely operator convenience.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the qcheck CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
