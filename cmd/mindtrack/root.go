// Package mindtrack implements the mindtrack command line interface.
package mindtrack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mindtrack",
	Short: "Workplace well-being analysis",
	Long: `MindTrack analyzes workplace well-being signals: sentiment in
Portuguese text, workplace environment photos, and mood/sprint history.

Analysis runs locally with no external services.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(versionCmd)
}
