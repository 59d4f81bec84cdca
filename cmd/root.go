// Package cmd implements the CLI commands for GlossWalk using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "glosswalk",
	Short: "Step through glossary definitions for a list of terms",
	Long: `GlossWalk reads a vocabulary list (one term per line), looks each term up
on an online psychology glossary and shows up to four definitions per term,
waiting for Enter before moving to the next one.

Usage:
  glosswalk walk <terms-file> [start] [flags]`,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newWalkCmd())
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
