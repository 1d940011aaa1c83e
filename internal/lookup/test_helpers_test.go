// SPDX-License-Identifier: MPL-2.0

package lookup

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/invowk/tooltree/internal/testutil"
	"github.com/invowk/tooltree/pkg/namepath"
	"github.com/invowk/tooltree/pkg/tooldef"
	"github.com/invowk/tooltree/pkg/toolfile"
)

// standardTree is the hierarchical fixture used by most resolver tests.
var standardTree = map[string]string{
	"tools.yaml":                      "description: Root A\n",
	"tool-1.yaml":                     "description: Tool 1 from A\nrun: echo 1\n",
	"collection-1/tools.yaml":         "description: Collection 1 from A\n",
	"collection-1/tool-1-1.yaml":      "description: Tool 1-1 from A\nrun: echo 1-1\n",
	"collection-1/tool-1-2.yaml":      "description: Tool 1-2 from A\nrun: echo 1-2\n",
	"collection-1/tool-1-3.yaml":      "description: Tool 1-3 from A\nrun: echo 1-3\n",
	"collection-1/.hidden/tools.yaml": "tools:\n  - name: secret\n    run: echo secret\n",
}

type (
	// countingEvaluator records every file it evaluates.
	countingEvaluator struct {
		inner Evaluator
		files []string
	}

	// failingEvaluator registers a tool and then fails for files named fail.
	failingEvaluator struct {
		inner Evaluator
		fail  string
	}

	// claimingEvaluator registers an explicit collection straight into the
	// cache instead of evaluating files named claim, so the staged entries of
	// the same load collide at commit.
	claimingEvaluator struct {
		inner Evaluator
		cache *Cache
		root  Root
		claim string
	}

	// reentrantEvaluator looks a path up again while a load is in progress.
	reentrantEvaluator struct {
		resolver *Resolver
		path     namepath.Path
	}
)

func (e *countingEvaluator) Evaluate(file string, base namepath.Path, sink toolfile.Sink) error {
	e.files = append(e.files, file)
	return e.inner.Evaluate(file, base, sink)
}

func (e *failingEvaluator) Evaluate(file string, base namepath.Path, sink toolfile.Sink) error {
	if filepath.Base(file) != e.fail {
		return e.inner.Evaluate(file, base, sink)
	}
	if err := sink.RegisterTool(base.Child("partial"), tooldef.ToolSpec{Description: "never committed"}); err != nil {
		return err
	}
	return errors.New("boom")
}

func (e *claimingEvaluator) Evaluate(file string, base namepath.Path, sink toolfile.Sink) error {
	if filepath.Base(file) != e.claim {
		return e.inner.Evaluate(file, base, sink)
	}
	return e.cache.register(e.root, base, tooldef.NewCollection(base, e.root.Path, tooldef.CollectionSpec{Source: "elsewhere.yaml"}))
}

func (e *reentrantEvaluator) Evaluate(string, namepath.Path, toolfile.Sink) error {
	_, err := e.resolver.Lookup(e.path)
	return err
}

// writeRoot materializes files in a fresh temp dir and returns its path.
func writeRoot(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteTree(t, dir, files)
	return dir
}

// newTestResolver registers dirs as hierarchical roots in order, so the last
// dir has the highest priority.
func newTestResolver(t *testing.T, dirs []string, opts ...Option) *Resolver {
	t.Helper()
	registry := NewRegistry()
	for _, dir := range dirs {
		if err := registry.PrependPaths(dir); err != nil {
			t.Fatalf("PrependPaths(%s) error: %v", dir, err)
		}
	}
	return NewResolver(registry, opts...)
}

func mustLookup(t *testing.T, r *Resolver, words ...string) *LookupResult {
	t.Helper()
	result, err := r.Lookup(namepath.New(words...))
	if err != nil {
		t.Fatalf("Lookup(%v) error: %v", words, err)
	}
	return result
}

func fullNames(entries []tooldef.Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.FullName().Dotted()
	}
	return names
}
