// SPDX-License-Identifier: MPL-2.0

package lookup

import (
	"fmt"

	"github.com/invowk/tooltree/pkg/namepath"
	"github.com/invowk/tooltree/pkg/tooldef"
)

// stagingSink buffers the registrations of one load. Nothing reaches the
// cache until commit, so a failed load leaves no partial state behind.
type stagingSink struct {
	cache  *Cache
	root   Root
	source string

	pending map[string]tooldef.Entry
	order   []string
}

func newStagingSink(c *Cache, root Root, source string) *stagingSink {
	return &stagingSink{
		cache:   c,
		root:    root,
		source:  source,
		pending: make(map[string]tooldef.Entry),
	}
}

// RegisterTool implements toolfile.Sink.
func (s *stagingSink) RegisterTool(path namepath.Path, spec tooldef.ToolSpec) error {
	if path.IsRoot() {
		return fmt.Errorf("%s: a tool cannot be declared at the namespace root", s.source)
	}
	if spec.Source == "" {
		spec.Source = s.source
	}
	return s.stage(path, tooldef.NewTool(path, s.root.Path, spec))
}

// RegisterCollection implements toolfile.Sink.
func (s *stagingSink) RegisterCollection(path namepath.Path, spec tooldef.CollectionSpec) error {
	if spec.Source == "" {
		spec.Source = s.source
	}
	return s.stage(path, tooldef.NewCollection(path, s.root.Path, spec))
}

// RegisterAlias implements toolfile.Sink.
func (s *stagingSink) RegisterAlias(path, target namepath.Path, desc string) error {
	if path.IsRoot() {
		return fmt.Errorf("%s: an alias cannot be declared at the namespace root", s.source)
	}
	if err := target.Validate(); err != nil {
		return fmt.Errorf("%s: alias '%s': %w", s.source, path, err)
	}
	return s.stage(path, tooldef.NewAlias(path, target, s.root.Path, s.source, desc))
}

// stageImplicit records the placeholder collection for a namespace directory
// that declared nothing at its own level.
func (s *stagingSink) stageImplicit(path namepath.Path) {
	if s.has(path) {
		return
	}
	key := path.Key()
	s.pending[key] = tooldef.NewImplicitCollection(path, s.root.Path)
	s.order = append(s.order, key)
}

func (s *stagingSink) has(path namepath.Path) bool {
	if _, ok := s.pending[path.Key()]; ok {
		return true
	}
	return s.cache.Get(s.root, path) != nil
}

func (s *stagingSink) stage(path namepath.Path, entry tooldef.Entry) error {
	if err := path.Validate(); err != nil {
		return fmt.Errorf("%s: %w", s.source, err)
	}

	key := path.Key()
	if existing, ok := s.pending[key]; ok {
		if tooldef.IsExplicit(existing) {
			return s.duplicate(path, existing, entry)
		}
		s.pending[key] = entry
		return nil
	}
	if existing := s.cache.Get(s.root, path); tooldef.IsExplicit(existing) {
		return s.duplicate(path, existing, entry)
	}

	s.pending[key] = entry
	s.order = append(s.order, key)
	return nil
}

func (s *stagingSink) duplicate(path namepath.Path, first, second tooldef.Entry) error {
	return &DuplicateDefinitionError{
		Root:         s.root.Path,
		Path:         namepath.New(path...),
		FirstSource:  first.SourcePath(),
		SecondSource: second.SourcePath(),
	}
}

// commit hands every staged entry to the cache in registration order.
// It returns the number of entries committed.
func (s *stagingSink) commit() (int, error) {
	entries := make([]tooldef.Entry, 0, len(s.order))
	for _, key := range s.order {
		entry := s.pending[key]
		if existing := s.cache.Get(s.root, entry.FullName()); tooldef.IsExplicit(existing) {
			return 0, s.duplicate(entry.FullName(), existing, entry)
		}
		entries = append(entries, entry)
	}
	for _, entry := range entries {
		if err := s.cache.register(s.root, entry.FullName(), entry); err != nil {
			return 0, err
		}
	}
	return len(entries), nil
}
