// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/invowk/tooltree/internal/lookup"
	"github.com/invowk/tooltree/pkg/namepath"
	"github.com/invowk/tooltree/pkg/tooldef"

	"github.com/charmbracelet/lipgloss"
)

// displayName renders a path the way it is typed, or "(root)" for the root.
func displayName(p namepath.Path) string {
	if p.IsRoot() {
		return "(root)"
	}
	return p.String()
}

// renderEntryCard renders the help card printed by `tooltree which`.
func renderEntryCard(res *lookup.LookupResult) string {
	var sb strings.Builder
	entry := res.Entry
	name := entry.FullName()

	sb.WriteString(cardKindStyle.Render(entry.Kind().String()) + " " + cardNameStyle.Render(displayName(name)) + "\n")
	if desc := entry.ShortDesc(); desc != "" {
		sb.WriteString(desc + "\n")
	}
	if long := entry.LongDesc(); len(long) > 0 {
		sb.WriteString("\n" + strings.Join(long, "\n") + "\n")
	}

	if tool, ok := entry.(*tooldef.Tool); ok {
		writeToolSections(&sb, tool)
	}

	if len(res.Aliases) > 0 {
		chain := make([]string, 0, len(res.Aliases)+1)
		for _, a := range res.Aliases {
			chain = append(chain, a.String())
		}
		chain = append(chain, displayName(name))
		writeSection(&sb, "Alias chain", []string{strings.Join(chain, " -> ")})
	}
	if len(res.Remaining) > 0 {
		writeSection(&sb, "Arguments given", []string{strings.Join(res.Remaining, " ")})
	}

	var origin []string
	if src := entry.SourcePath(); src != "" {
		origin = append(origin, "source: "+src)
	}
	if root := entry.RootPath(); root != "" {
		origin = append(origin, "root:   "+root)
	}
	if len(origin) > 0 {
		writeSection(&sb, "Defined in", origin)
	}

	if entry.Kind() == tooldef.KindCollection {
		sb.WriteString(cardHintStyle.Render(fmt.Sprintf("Run 'tooltree list %s' to see its tools.", name.String())) + "\n")
	}
	return sb.String()
}

func writeToolSections(sb *strings.Builder, tool *tooldef.Tool) {
	usage := []string{tool.FullName().String()}
	if len(tool.Flags) > 0 {
		usage = append(usage, "[flags]")
	}
	for i := range tool.Args {
		usage = append(usage, tool.Args[i].Usage())
	}
	writeSection(sb, "Usage", []string{strings.Join(usage, " ")})

	if len(tool.Flags) > 0 {
		rows := make([][2]string, 0, len(tool.Flags))
		for i := range tool.Flags {
			f := &tool.Flags[i]
			rows = append(rows, [2]string{f.Usage(), describe(f.Description, f.Default, f.Required)})
		}
		writeSection(sb, "Flags", alignRows(rows))
	}
	if len(tool.Args) > 0 {
		rows := make([][2]string, 0, len(tool.Args))
		for i := range tool.Args {
			a := &tool.Args[i]
			rows = append(rows, [2]string{a.Usage(), describe(a.Description, a.Default, a.Required)})
		}
		writeSection(sb, "Arguments", alignRows(rows))
	}
	if tool.Run != "" {
		writeSection(sb, "Runs", []string{tool.Run})
	}
}

func describe(desc, def string, required bool) string {
	if def != "" {
		desc += fmt.Sprintf(" (default: %s)", def)
	}
	if required {
		desc += " (required)"
	}
	return strings.TrimSpace(desc)
}

func writeSection(sb *strings.Builder, label string, lines []string) {
	sb.WriteString(cardLabelStyle.Render(label+":") + "\n")
	for _, line := range lines {
		sb.WriteString("  " + cardValueStyle.Render(line) + "\n")
	}
}

// alignRows pads the first column so the second one lines up. Widths are
// measured with lipgloss so styled text pads correctly.
func alignRows(rows [][2]string) []string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r[0]))
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if r[1] == "" {
			out = append(out, r[0])
			continue
		}
		out = append(out, r[0]+strings.Repeat(" ", width-lipgloss.Width(r[0])+3)+r[1])
	}
	return out
}
