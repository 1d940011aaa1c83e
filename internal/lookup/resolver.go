// SPDX-License-Identifier: MPL-2.0

package lookup

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/agnivade/levenshtein"

	"github.com/invowk/tooltree/pkg/namepath"
	"github.com/invowk/tooltree/pkg/tooldef"
	"github.com/invowk/tooltree/pkg/toolfile"
)

const (
	// DefaultIndexName is the basename of the per-directory index file in
	// hierarchical roots.
	DefaultIndexName = "tools"
	// DefaultConfigName is the basename looked up when a single-file root
	// names a directory.
	DefaultConfigName = "tooltree"
)

type (
	// Evaluator turns one definition file into sink registrations rooted at base.
	Evaluator interface {
		Evaluate(file string, base namepath.Path, sink toolfile.Sink) error
	}

	// LookupResult is the outcome of a Lookup.
	LookupResult struct {
		// Entry is the matched entry, with aliases already followed.
		Entry tooldef.Entry
		// Remaining holds the words of the query that were not consumed by
		// the match, usually positional arguments.
		Remaining []string
		// Aliases lists the alias paths followed to reach Entry, in order.
		Aliases []namepath.Path
	}

	// Resolver answers lookups against the roots of a Registry. It owns the
	// definition cache for the lifetime of one session.
	Resolver struct {
		registry   *Registry
		cache      *Cache
		evaluator  Evaluator
		indexName  string
		configName string
		logger     *slog.Logger
	}

	// Option configures a Resolver during construction.
	Option func(*Resolver)
)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithEvaluator replaces the definition file evaluator.
func WithEvaluator(e Evaluator) Option {
	return func(r *Resolver) {
		r.evaluator = e
	}
}

// WithIndexName overrides the index file basename (default "tools").
func WithIndexName(name string) Option {
	return func(r *Resolver) {
		if name != "" {
			r.indexName = name
		}
	}
}

// WithConfigName overrides the single-file basename (default "tooltree").
func WithConfigName(name string) Option {
	return func(r *Resolver) {
		if name != "" {
			r.configName = name
		}
	}
}

// NewResolver creates a Resolver over registry. Roots should all be
// registered before the first lookup.
func NewResolver(registry *Registry, opts ...Option) *Resolver {
	r := &Resolver{
		registry:   registry,
		indexName:  DefaultIndexName,
		configName: DefaultConfigName,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = NewRegistry()
	}
	if r.evaluator == nil {
		r.evaluator = toolfile.NewInterpreter()
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	r.cache = newCache(r.evaluator, r.indexName, r.configName, r.logger)
	return r
}

// Registry returns the resolver's root registry.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// LoadCount returns how many definition files have been evaluated so far.
func (r *Resolver) LoadCount() int {
	return r.cache.LoadCount()
}

// Lookup finds the entry for the longest defined prefix of path. For each
// prefix length, roots are consulted in priority order and the first root
// defining that exact prefix wins. Aliases are followed. An undefined path
// resolves to the root collection.
//
// Load failures abort the lookup; they never let a lower-priority root
// answer instead.
func (r *Resolver) Lookup(path namepath.Path) (*LookupResult, error) {
	result := &LookupResult{}
	visited := []namepath.Path{path}
	query := path

	for {
		entry, k, err := r.lookupOnce(query)
		if err != nil {
			return nil, err
		}
		result.Remaining = append(slices.Clone(query[k:]), result.Remaining...)

		alias, ok := entry.(*tooldef.Alias)
		if !ok {
			result.Entry = entry
			return result, nil
		}

		result.Aliases = append(result.Aliases, alias.FullName())
		target := alias.Target
		visited = append(visited, target)
		if slices.ContainsFunc(visited[:len(visited)-1], target.Equal) {
			return nil, &AliasCycleError{Chain: visited}
		}
		r.logger.Debug("following alias", "alias", alias.FullName().String(), "target", target.String())
		query = target
	}
}

// lookupOnce returns the entry for the longest defined prefix of path and
// that prefix's length. At each length an explicit declaration from any
// root wins; otherwise the highest-priority implicit collection answers.
func (r *Resolver) lookupOnce(path namepath.Path) (tooldef.Entry, int, error) {
	roots := r.registry.Roots()

	for k := len(path); k >= 0; k-- {
		prefix := path.Prefix(k)
		var implicit tooldef.Entry
		for _, root := range roots {
			ok, err := r.cache.HasEntry(root, prefix)
			if err != nil {
				return nil, 0, err
			}
			if !ok {
				continue
			}
			entry := r.cache.Get(root, prefix)
			if tooldef.IsExplicit(entry) {
				return entry, k, nil
			}
			if implicit == nil {
				implicit = entry
			}
		}
		if implicit != nil {
			return implicit, k, nil
		}
	}
	return tooldef.RootCollection(), 0, nil
}

// ToolDefined reports whether any root has already registered an entry at
// path. It never loads anything.
func (r *Resolver) ToolDefined(path namepath.Path) bool {
	for _, root := range r.registry.Roots() {
		if r.cache.Get(root, path) != nil {
			return true
		}
	}
	return false
}

// ListSubtools returns the entries below path, one per full name, sorted.
// For a name defined in several roots the highest-priority explicit entry
// wins; implicit collections are listed only when nothing defines the name.
func (r *Resolver) ListSubtools(path namepath.Path, recursive bool) ([]tooldef.Entry, error) {
	chosen := make(map[string]tooldef.Entry)
	for _, root := range r.registry.Roots() {
		children, err := r.cache.ListChildren(root, path, recursive)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			entry := r.cache.Get(root, child)
			existing, ok := chosen[child.Key()]
			if !ok || (!tooldef.IsExplicit(existing) && tooldef.IsExplicit(entry)) {
				chosen[child.Key()] = entry
			}
		}
	}

	entries := make([]tooldef.Entry, 0, len(chosen))
	for _, entry := range chosen {
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, func(a, b tooldef.Entry) int {
		return namepath.Compare(a.FullName(), b.FullName())
	})
	return entries, nil
}

// Suggest returns up to limit siblings of path whose names are close to the
// last word of path, nearest first.
func (r *Resolver) Suggest(path namepath.Path, limit int) ([]namepath.Path, error) {
	if path.IsRoot() || limit <= 0 {
		return nil, nil
	}
	siblings, err := r.ListSubtools(path.Parent(), false)
	if err != nil {
		return nil, err
	}

	word := path.Name()
	maxDistance := max(2, len(word)/3)

	type candidate struct {
		path     namepath.Path
		distance int
	}
	var candidates []candidate
	for _, entry := range siblings {
		name := entry.FullName()
		d := levenshtein.ComputeDistance(word, name.Name())
		if d == 0 || d > maxDistance {
			continue
		}
		candidates = append(candidates, candidate{path: name, distance: d})
	}
	slices.SortFunc(candidates, func(a, b candidate) int {
		if c := cmp.Compare(a.distance, b.distance); c != 0 {
			return c
		}
		return namepath.Compare(a.path, b.path)
	})

	out := make([]namepath.Path, 0, min(limit, len(candidates)))
	for _, c := range candidates[:min(limit, len(candidates))] {
		out = append(out, c.path)
	}
	return out, nil
}
