// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/invowk/tooltree/internal/issue"

	"github.com/spf13/cobra"
)

func newRootsCommand(app *App, flags *rootFlagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "roots",
		Short: "Show the definition roots in search order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoots(cmd.Context(), app, flags)
		},
	}
}

func runRoots(ctx context.Context, app *App, flags *rootFlagValues) error {
	s, err := app.openSession(ctx, flags)
	if err != nil {
		return err
	}

	roots := s.resolver.Registry().Roots()
	if len(roots) == 0 {
		app.renderIssue(issue.NoRootsId, s.cfg.UI.ColorScheme)
		return nil
	}

	fmt.Fprintln(app.stdout, TitleStyle.Render("Roots (highest priority first)"))
	for i, root := range roots {
		line := fmt.Sprintf("  %d. %-9s %s", i+1, root.Kind, root.Path)
		if _, err := os.Stat(root.Path); err != nil {
			line += " " + SubtitleStyle.Render("(missing)")
		}
		fmt.Fprintln(app.stdout, line)
	}
	if s.verbose && s.cfgSource != "" {
		fmt.Fprintln(app.stdout, VerboseStyle.Render("config: "+s.cfgSource))
	}
	return nil
}
