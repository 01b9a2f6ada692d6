// Package cli provides the Cobra command structure for mdblock.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdblock/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdblock command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdblock",
		Short: "Classify Markdown lines into blanks, rules, and fenced code",
		Long: `mdblock classifies every line of a Markdown document as blank, thematic
break, fence opener, fenced code, fence closer, or plain text.

It follows CommonMark's rules for the four line-level constructs it knows
about, reports the fenced code blocks it finds (with their languages), and
can cross-check its answers against the goldmark parser.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newVerifyCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
