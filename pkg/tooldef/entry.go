// SPDX-License-Identifier: MPL-2.0

package tooldef

import (
	"slices"

	"github.com/invowk/tooltree/pkg/namepath"
)

const (
	// KindCollection is a non-invocable namespace node.
	KindCollection Kind = "collection"
	// KindTool is an invocable tool.
	KindTool Kind = "tool"
	// KindAlias redirects resolution to another path.
	KindAlias Kind = "alias"
)

type (
	// Kind identifies the entry variant.
	Kind string

	// Entry is implemented by *Tool, *Collection and *Alias.
	Entry interface {
		// Kind returns the entry variant.
		Kind() Kind
		// FullName returns a copy of the entry's namespace path.
		FullName() namepath.Path
		// ShortDesc returns the one-line description.
		ShortDesc() string
		// LongDesc returns a copy of the long description lines.
		LongDesc() []string
		// SourcePath returns the definition file that declared the entry,
		// or "" for synthesized entries.
		SourcePath() string
		// RootPath returns the filesystem root the entry was loaded from,
		// or "" for synthesized entries.
		RootPath() string
	}

	// Info holds the descriptive fields shared by every entry variant.
	Info struct {
		Name            namepath.Path
		Description     string
		LongDescription []string
		Source          string
		Root            string
	}

	// Tool is an invocable entry.
	Tool struct {
		Info
		Flags []Flag
		Args  []Argument
		// Run is the invocation handle passed to an execution engine.
		Run string
	}

	// Collection groups subordinate entries. Implicit collections are
	// materialized for namespace directories that carry no index file.
	Collection struct {
		Info
		Implicit bool
	}

	// Alias redirects resolution to Target.
	Alias struct {
		Info
		Target namepath.Path
	}

	// ToolSpec is the registration payload for a tool.
	ToolSpec struct {
		Description     string
		LongDescription []string
		Flags           []Flag
		Args            []Argument
		Run             string
		Source          string
	}

	// CollectionSpec is the registration payload for a collection.
	CollectionSpec struct {
		Description     string
		LongDescription []string
		Source          string
	}
)

var (
	_ Entry = (*Tool)(nil)
	_ Entry = (*Collection)(nil)
	_ Entry = (*Alias)(nil)
)

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// FullName returns a copy of the entry's namespace path.
func (i *Info) FullName() namepath.Path { return namepath.New(i.Name...) }

// ShortDesc returns the one-line description.
func (i *Info) ShortDesc() string { return i.Description }

// LongDesc returns a copy of the long description lines.
func (i *Info) LongDesc() []string { return slices.Clone(i.LongDescription) }

// SourcePath returns the declaring file.
func (i *Info) SourcePath() string { return i.Source }

// RootPath returns the owning root path.
func (i *Info) RootPath() string { return i.Root }

// Kind returns KindTool.
func (t *Tool) Kind() Kind { return KindTool }

// Kind returns KindCollection.
func (c *Collection) Kind() Kind { return KindCollection }

// Kind returns KindAlias.
func (a *Alias) Kind() Kind { return KindAlias }

// NewTool builds a Tool at name from spec. Slices are copied.
func NewTool(name namepath.Path, root string, spec ToolSpec) *Tool {
	return &Tool{
		Info: Info{
			Name:            namepath.New(name...),
			Description:     spec.Description,
			LongDescription: slices.Clone(spec.LongDescription),
			Source:          spec.Source,
			Root:            root,
		},
		Flags: slices.Clone(spec.Flags),
		Args:  slices.Clone(spec.Args),
		Run:   spec.Run,
	}
}

// NewCollection builds an explicit Collection at name from spec.
func NewCollection(name namepath.Path, root string, spec CollectionSpec) *Collection {
	return &Collection{
		Info: Info{
			Name:            namepath.New(name...),
			Description:     spec.Description,
			LongDescription: slices.Clone(spec.LongDescription),
			Source:          spec.Source,
			Root:            root,
		},
	}
}

// NewImplicitCollection builds the placeholder collection for a namespace
// node that exists without an explicit declaration.
func NewImplicitCollection(name namepath.Path, root string) *Collection {
	return &Collection{
		Info:     Info{Name: namepath.New(name...), Root: root},
		Implicit: true,
	}
}

// NewAlias builds an Alias at name pointing at target.
func NewAlias(name, target namepath.Path, root, source, desc string) *Alias {
	return &Alias{
		Info: Info{
			Name:        namepath.New(name...),
			Description: desc,
			Source:      source,
			Root:        root,
		},
		Target: namepath.New(target...),
	}
}

// RootCollection returns the synthetic empty root collection returned when
// nothing in any root matches a lookup.
func RootCollection() *Collection {
	return NewImplicitCollection(namepath.Path{}, "")
}

// IsExplicit reports whether e is a real declaration, as opposed to an
// implicit namespace placeholder.
func IsExplicit(e Entry) bool {
	if e == nil {
		return false
	}
	if c, ok := e.(*Collection); ok {
		return !c.Implicit
	}
	return true
}
