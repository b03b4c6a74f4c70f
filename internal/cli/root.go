// Package cli provides the Cobra command structure for unigrid.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/unigrid/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root unigrid command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "unigrid",
		Short: "Show how text breaks down into characters, scalars, UTF-16 and UTF-8",
		Long: `unigrid lays text out as an aligned grid: one column per cell, with the
user-perceived character on top and its Unicode scalars, UTF-16 code units
and UTF-8 bytes underneath. Cells of the same character share a color so
grapheme clusters, surrogate pairs and multi-byte sequences stand out.`,
		Example: `unigrid inspect "crème brûlée"   # Decompose text
unigrid config paths             # Show which config files apply`,
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

	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	installHelp(rootCmd)

	return rootCmd
}
