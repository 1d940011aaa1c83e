// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/invowk/tooltree/internal/issue"
	"github.com/invowk/tooltree/internal/lookup"
	"github.com/invowk/tooltree/pkg/namepath"
	"github.com/invowk/tooltree/pkg/tooldef"

	"github.com/spf13/cobra"
)

// maxSuggestions bounds the "did you mean" list.
const maxSuggestions = 3

// ErrToolNotFound is returned when the typed words name no tool.
var ErrToolNotFound = errors.New("tool not found")

func newWhichCommand(app *App, flags *rootFlagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "which [words...]",
		Short: "Resolve words to a tool and show its help card",
		Long: `Resolve words to a tool and show its help card.

The longest prefix of the words that names a tool, collection or alias is
matched; the remaining words are shown as the tool's arguments. Put words
that look like flags after '--'.`,
		Example: `  tooltree which db migrate
  tooltree which db migrate -- --dry-run up`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhich(cmd.Context(), app, flags, args)
		},
	}
}

func runWhich(ctx context.Context, app *App, flags *rootFlagValues, words []string) error {
	s, err := app.openSession(ctx, flags)
	if err != nil {
		return err
	}

	query := namepath.New(words...)
	res, err := s.resolver.Lookup(query)
	if err != nil {
		return app.fail(s, "resolve tool", query.String(), err)
	}
	if unmatched(res) {
		return app.notFound(s, res)
	}

	fmt.Fprint(app.stdout, renderEntryCard(res))
	return nil
}

// unmatched reports whether the words went past the deepest match without
// reaching a tool. Collections take no arguments, so leftover words after
// one are an unknown name.
func unmatched(res *lookup.LookupResult) bool {
	_, isCollection := res.Entry.(*tooldef.Collection)
	return isCollection && len(res.Remaining) > 0
}

// notFound prints close matches for the first unmatched word and returns an
// ExitError with ExitNotFound.
func (a *App) notFound(s *session, res *lookup.LookupResult) error {
	missing := res.Entry.FullName().Child(res.Remaining[0])

	suggestions, err := s.resolver.Suggest(missing, maxSuggestions)
	if err != nil {
		s.logger.Warn("failed to compute suggestions", "error", err)
	}
	if len(suggestions) > 0 {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Did you mean?"))
		for _, p := range suggestions {
			fmt.Fprintln(a.stderr, "  "+CmdStyle.Render(p.String()))
		}
	}
	if s.verbose {
		a.renderIssue(issue.ToolNotFoundId, s.cfg.UI.ColorScheme)
	}

	return &ExitError{Code: ExitNotFound, Err: fmt.Errorf("%w: %s", ErrToolNotFound, missing.String())}
}
