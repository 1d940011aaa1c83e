// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/invowk/tooltree/pkg/namepath"
	"github.com/invowk/tooltree/pkg/tooldef"

	"github.com/spf13/cobra"
)

type listFlagValues struct {
	recursive bool
	all       bool
}

func newListCommand(app *App, flags *rootFlagValues) *cobra.Command {
	listFlags := &listFlagValues{}

	listCmd := &cobra.Command{
		Use:     "list [words...]",
		Aliases: []string{"ls"},
		Short:   "List the tools below a collection",
		Long: `List the tools below a collection, or below the root when no words are given.

Names defined in several roots are listed once, from the highest-priority
root that defines them.`,
		Example: `  tooltree list
  tooltree list db --recursive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), app, flags, listFlags, args)
		},
	}

	listCmd.Flags().BoolVarP(&listFlags.recursive, "recursive", "r", false, "list every descendant, not only direct children")
	listCmd.Flags().BoolVarP(&listFlags.all, "all", "a", false, "include implicit collections (directories without definitions)")

	return listCmd
}

func runList(ctx context.Context, app *App, flags *rootFlagValues, listFlags *listFlagValues, words []string) error {
	s, err := app.openSession(ctx, flags)
	if err != nil {
		return err
	}

	path := namepath.FromWords(words)
	res, err := s.resolver.Lookup(path)
	if err != nil {
		return app.fail(s, "list tools", path.String(), err)
	}

	target := path
	if len(res.Aliases) > 0 && len(res.Remaining) == 0 {
		target = res.Entry.FullName()
	}
	if !target.IsRoot() && !s.resolver.ToolDefined(target) {
		return app.notFound(s, res)
	}

	entries, err := s.resolver.ListSubtools(target, listFlags.recursive)
	if err != nil {
		return app.fail(s, "list tools", target.String(), err)
	}

	rows := make([][2]string, 0, len(entries))
	for _, entry := range entries {
		if !listFlags.all && !tooldef.IsExplicit(entry) {
			continue
		}
		rows = append(rows, [2]string{CmdStyle.Render(listName(entry)), entry.ShortDesc()})
	}

	if len(rows) == 0 {
		fmt.Fprintln(app.stdout, SubtitleStyle.Render("(no tools)"))
		return nil
	}
	for _, line := range alignRows(rows) {
		fmt.Fprintln(app.stdout, "  "+line)
	}
	return nil
}

// listName renders an entry name with a marker for its kind: collections end
// in "/" and aliases point at their target.
func listName(entry tooldef.Entry) string {
	name := entry.FullName().String()
	switch e := entry.(type) {
	case *tooldef.Collection:
		return name + "/"
	case *tooldef.Alias:
		return name + " -> " + e.Target.String()
	default:
		return name
	}
}
