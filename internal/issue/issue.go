// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	DefinitionFileInvalidId Id = iota + 1
	DuplicateDefinitionId
	AliasCycleId
	ToolNotFoundId
	ConfigLoadFailedId
	NoRootsId
)

type (
	Id int

	MarkdownMsg string

	Issue struct {
		id    Id          // ID used to lookup the issue
		mdMsg MarkdownMsg // Markdown text that will be rendered
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue page with the glamour style at stylePath
// ("dark", "light", "auto" or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(strings.TrimSpace(string(i.mdMsg))+"\n", stylePath)
}

var (
	render = glamour.Render

	definitionFileInvalidIssue = &Issue{
		id: DefinitionFileInvalidId,
		mdMsg: `
# A definition file could not be loaded!

One of your tool definition files failed to parse or validate. Lookups that
need this file stop here: tooltree does not silently fall back to a
lower-priority root, because that would run a different tool than the one
you defined.

## Things you can try:
- Fix the file reported above; the error names the line when it can
- Check the file extension matches its content (.cue, .toml, .yaml/.yml, .hcl)
- Make sure every flag and argument has a valid type (string, bool, int, float)
- Only the last argument of a tool may be variadic`,
	}

	duplicateDefinitionIssue = &Issue{
		id: DuplicateDefinitionId,
		mdMsg: `
# A tool is defined twice!

Inside one root, every path may be declared only once. This usually happens
when a directory index declares a tool inline and a leaf file with the same
name sits next to it:

~~~
tools/
  tools.yaml        # declares "deploy" inline
  deploy.yaml       # declares "deploy" again
~~~

## Things you can try:
- Remove one of the two declarations
- To override a tool from another root, define it in a higher-priority root instead`,
	}

	aliasCycleIssue = &Issue{
		id: AliasCycleId,
		mdMsg: `
# Alias cycle detected!

Following aliases led back to a path that was already visited, so the
lookup can never finish.

## Things you can try:
- Point one of the aliases in the reported chain at a real tool
- Use an absolute target ("/db migrate") when the alias lives in a nested collection
- Run 'tooltree which <alias>' after the fix to see where it resolves`,
	}

	toolNotFoundIssue = &Issue{
		id: ToolNotFoundId,
		mdMsg: `
# Tool not found!

No root defines the words you typed. tooltree matched the longest prefix it
knows and treated the rest as arguments.

## Things you can try:
- List what is available:
~~~
$ tooltree list --recursive
~~~
- Check which roots are searched, highest priority first:
~~~
$ tooltree roots
~~~
- Add a root with --path (directory tree) or --config-path (single file)`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your tooltree configuration file has errors.

## Things you can try:
- Check the CUE syntax of your config file
- Compare it with a freshly generated one:
~~~
$ tooltree config init --force
~~~
- Unset TOOLTREE_* environment variables to rule out overrides
- Point at another file with --config`,
	}

	noRootsIssue = &Issue{
		id: NoRootsId,
		mdMsg: `
# No roots configured!

tooltree has nowhere to look for tools.

## Things you can try:
- Create a '.tooltree' directory or a 'tooltree.yaml' file in the current directory
- Add roots to your config file:
~~~cue
paths: ["~/tools"]
config_paths: ["~/team/tooltree.yaml"]
~~~`,
	}

	issues = map[Id]*Issue{
		definitionFileInvalidIssue.Id(): definitionFileInvalidIssue,
		duplicateDefinitionIssue.Id():   duplicateDefinitionIssue,
		aliasCycleIssue.Id():            aliasCycleIssue,
		toolNotFoundIssue.Id():          toolNotFoundIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		noRootsIssue.Id():               noRootsIssue,
	}
)

// Values returns every known issue ordered by id.
func Values() []*Issue {
	var out []*Issue
	for _, i := range maps.Values(issues) {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
