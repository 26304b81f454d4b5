package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "umbrella",
	Short: "Umbrella header generator",
	Long: asciiLogo + `

umbrella generates a single umbrella header for a native library distribution.
It scans the shipped headers, verifies they match the curated static include
list, and substitutes the list into a template.

The static list is the source of truth: it carries the dependency order the
includes need to compile. The scan only detects drift — when the two disagree,
umbrella fails and tells you exactly which entries to add or remove.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or unreadable input
  20 - Static list and scanned headers diverged
  21 - Resolved include content is empty`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
