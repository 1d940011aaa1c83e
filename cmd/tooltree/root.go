// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the tooltree CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/invowk/tooltree/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

type (
	// rootFlagValues holds the persistent flags shared by every subcommand.
	rootFlagValues struct {
		configPath  string
		paths       []string
		configPaths []string
		verbose     bool
	}
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlagValues{}

	rootCmd := &cobra.Command{
		Use:   "tooltree",
		Short: "Find tools across layered definition roots",
		Long: TitleStyle.Render("tooltree") + SubtitleStyle.Render(" - Find tools across layered definition roots") + `

tooltree resolves space-separated words to tool definitions stored in
prioritized roots. Directory roots map one directory per namespace level;
single-file roots keep a whole tree in one file. Definitions are read
lazily: only the files on the path of a lookup are loaded.

` + SubtitleStyle.Render("Roots (highest priority first):") + `
  ./.tooltree and ./tooltree.<ext> in the current directory
  --path / --config-path flags, last one wins
  paths / config_paths from the config file

` + SubtitleStyle.Render("Examples:") + `
  tooltree which db migrate --dry-run   Resolve a tool and show its help card
  tooltree list --recursive             List every tool
  tooltree roots                        Show the search order`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/tooltree/config.cue)")
	rootCmd.PersistentFlags().StringArrayVar(&flags.paths, "path", nil, "add a directory root (repeatable, later wins)")
	rootCmd.PersistentFlags().StringArrayVar(&flags.configPaths, "config-path", nil, "add a single-file root (repeatable, later wins)")

	rootCmd.AddCommand(
		newWhichCommand(app, flags),
		newListCommand(app, flags),
		newRootsCommand(app, flags),
		newConfigCommand(app, flags),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI with production dependencies. It is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}

	rootCmd := NewRootCommand(app)

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
			fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		}),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors use their own Format, which shows the cause chain when verbose.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
