// Package cmd implements the CLI commands for blockhead using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blockhead",
	Short: "blockhead — render saved block-editor documents",
	Long: `blockhead renders saved block-editor documents (header blocks)
into HTML, Markdown, PDF, or a structural outline.

Usage:
  blockhead render <file-or-url> [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
