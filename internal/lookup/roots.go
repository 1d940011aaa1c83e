// SPDX-License-Identifier: MPL-2.0

package lookup

import (
	"fmt"
	"path/filepath"
	"slices"
)

const (
	// RootKindIndexedHierarchy is a directory tree mirroring the namespace,
	// with an optional index file per directory.
	RootKindIndexedHierarchy RootKind = iota + 1
	// RootKindSingleFile is one definition file describing a whole subtree.
	RootKindSingleFile
)

type (
	// RootKind selects how a root's filesystem layout maps to the namespace.
	RootKind int

	// Root is one registered source of definitions. Roots are values and
	// never change once registered.
	Root struct {
		Path string
		Kind RootKind
	}

	// Registry is the ordered list of roots. Index 0 has the highest priority.
	Registry struct {
		roots []Root
	}
)

// String returns a human-readable kind name.
func (k RootKind) String() string {
	switch k {
	case RootKindIndexedHierarchy:
		return "hierarchy"
	case RootKindSingleFile:
		return "file"
	default:
		return "unknown"
	}
}

// String returns "<kind>:<path>".
func (r Root) String() string {
	return r.Kind.String() + ":" + r.Path
}

// key identifies the root in cache maps.
func (r Root) key() string {
	return r.String()
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Prepend makes root the highest-priority root. The path is made absolute.
// Registering an existing root again moves it to the front.
func (r *Registry) Prepend(root Root) error {
	if root.Path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidRoot)
	}
	if root.Kind != RootKindIndexedHierarchy && root.Kind != RootKindSingleFile {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidRoot, root.Kind)
	}
	abs, err := filepath.Abs(root.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}
	root.Path = abs

	r.roots = slices.DeleteFunc(r.roots, func(existing Root) bool { return existing == root })
	r.roots = slices.Insert(r.roots, 0, root)
	return nil
}

// PrependPaths registers a directory hierarchy root at the highest priority.
func (r *Registry) PrependPaths(fsPath string) error {
	return r.Prepend(Root{Path: fsPath, Kind: RootKindIndexedHierarchy})
}

// PrependConfigPaths registers a single-file root at the highest priority.
// fsPath may be the file itself or a directory holding the config file.
func (r *Registry) PrependConfigPaths(fsPath string) error {
	return r.Prepend(Root{Path: fsPath, Kind: RootKindSingleFile})
}

// Roots returns a copy of the roots in priority order.
func (r *Registry) Roots() []Root {
	return slices.Clone(r.roots)
}

// Len returns the number of registered roots.
func (r *Registry) Len() int {
	return len(r.roots)
}
