// SPDX-License-Identifier: MPL-2.0

package lookup

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/invowk/tooltree/pkg/namepath"
	"github.com/invowk/tooltree/pkg/tooldef"
	"github.com/invowk/tooltree/pkg/toolfile"
)

const (
	stateUnloaded loadState = iota
	stateLoading
	stateLoaded
)

type (
	loadState int

	// loadRecord tracks one load action. A failed load is recorded as loaded
	// and keeps its error, so it is reported again instead of retried.
	loadRecord struct {
		state   loadState
		descend bool
		err     error
	}

	// Cache stores the entries loaded from each root, keyed by namespace path,
	// and remembers which load actions have run.
	Cache struct {
		evaluator  Evaluator
		indexName  string
		configName string
		logger     *slog.Logger

		entries   map[string]map[string]tooldef.Entry
		loads     map[string]*loadRecord
		loadCount int
	}
)

func newCache(evaluator Evaluator, indexName, configName string, logger *slog.Logger) *Cache {
	return &Cache{
		evaluator:  evaluator,
		indexName:  indexName,
		configName: configName,
		logger:     logger,
		entries:    make(map[string]map[string]tooldef.Entry),
		loads:      make(map[string]*loadRecord),
	}
}

// HasEntry loads whatever is needed to decide whether root defines path,
// then reports whether an entry (explicit or implicit) exists there.
func (c *Cache) HasEntry(root Root, path namepath.Path) (bool, error) {
	if _, err := c.ensurePath(root, path); err != nil {
		return false, err
	}
	return c.Get(root, path) != nil, nil
}

// Get returns the entry root registered at path, or nil. It never loads.
func (c *Cache) Get(root Root, path namepath.Path) tooldef.Entry {
	byPath, ok := c.entries[root.key()]
	if !ok {
		return nil
	}
	return byPath[path.Key()]
}

// ListChildren loads the subtree below path and returns the paths of its
// descendants in root, sorted. Without recursive only direct children are
// returned.
func (c *Cache) ListChildren(root Root, path namepath.Path, recursive bool) ([]namepath.Path, error) {
	last, err := c.ensurePath(root, path)
	if err != nil {
		return nil, err
	}
	if last != nil && last.base.Equal(path) {
		if err := c.ensureBelow(*last, recursive); err != nil {
			return nil, err
		}
	}

	var children []namepath.Path
	for _, entry := range c.entries[root.key()] {
		name := entry.FullName()
		if len(name) <= len(path) || !name.HasPrefix(path) {
			continue
		}
		if !recursive && len(name) != len(path)+1 {
			continue
		}
		children = append(children, name)
	}
	slices.SortFunc(children, namepath.Compare)
	return children, nil
}

// LoadCount returns how many definition files have been evaluated.
func (c *Cache) LoadCount() int {
	return c.loadCount
}

// register stores entry at (root, path). An implicit collection may be
// replaced by an explicit entry; anything else already present is a
// duplicate.
func (c *Cache) register(root Root, path namepath.Path, entry tooldef.Entry) error {
	byPath, ok := c.entries[root.key()]
	if !ok {
		byPath = make(map[string]tooldef.Entry)
		c.entries[root.key()] = byPath
	}
	key := path.Key()
	if existing, ok := byPath[key]; ok && (tooldef.IsExplicit(existing) || !tooldef.IsExplicit(entry)) {
		return &DuplicateDefinitionError{
			Root:         root.Path,
			Path:         namepath.New(path...),
			FirstSource:  existing.SourcePath(),
			SecondSource: entry.SourcePath(),
		}
	}
	byPath[key] = entry
	return nil
}

// ensurePath runs the load actions for path in order, stopping where the
// namespace has no directory to descend into. It returns the deepest action
// whose directory exists.
func (c *Cache) ensurePath(root Root, path namepath.Path) (*loadAction, error) {
	var last *loadAction
	for _, action := range translate(root, path) {
		rec, err := c.load(action)
		if err != nil {
			return nil, err
		}
		if !rec.descend {
			break
		}
		last = &action
	}
	return last, nil
}

// ensureBelow runs the load actions for the children of parent.
func (c *Cache) ensureBelow(parent loadAction, recursive bool) error {
	actions, err := translateBelow(parent, c.indexName)
	if err != nil {
		return &LoadError{Root: parent.root, File: parent.dir, Cause: err}
	}
	for _, action := range actions {
		rec, err := c.load(action)
		if err != nil {
			return err
		}
		if recursive && rec.descend {
			if err := c.ensureBelow(action, true); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Cache) load(action loadAction) (*loadRecord, error) {
	key := action.key()
	rec, ok := c.loads[key]
	if !ok {
		rec = &loadRecord{}
		c.loads[key] = rec
	}

	switch rec.state {
	case stateLoaded:
		return rec, rec.err
	case stateLoading:
		return nil, &LoadError{Root: action.root, File: action.dir, Cause: ErrReentrantLoad}
	}

	rec.state = stateLoading
	rec.descend, rec.err = c.perform(action)
	rec.state = stateLoaded
	return rec, rec.err
}

// perform executes one load action: it evaluates the node's definition
// files into a staging sink and commits the result. descend reports whether
// the node is a directory that deeper paths may live in.
func (c *Cache) perform(action loadAction) (descend bool, err error) {
	files, descend, err := c.locate(action)
	if err != nil {
		return false, err
	}
	if len(files) == 0 && !descend {
		return false, nil
	}

	sink := newStagingSink(c, action.root, "")
	for _, file := range files {
		sink.source = file
		c.loadCount++
		if err := c.evaluator.Evaluate(file, action.base, sink); err != nil {
			c.logger.Warn("failed to load definition file", "root", action.root.Path, "file", file, "error", err)
			return false, &LoadError{Root: action.root, File: file, Cause: err}
		}
	}
	if descend {
		sink.stageImplicit(action.base)
	}

	n, err := sink.commit()
	if err != nil {
		c.logger.Warn("failed to register definitions", "root", action.root.Path, "path", action.base.String(), "error", err)
		file := sink.source
		var dup *DuplicateDefinitionError
		if errors.As(err, &dup) && dup.SecondSource != "" {
			file = dup.SecondSource
		}
		return false, &LoadError{Root: action.root, File: file, Cause: err}
	}
	for _, file := range files {
		c.logger.Debug("loaded definition file", "root", action.root.Path, "file", file, "entries", n)
	}
	return descend, nil
}

// locate returns the definition files for an action, leaf file first, and
// whether the action names an existing namespace directory.
func (c *Cache) locate(action loadAction) (files []string, descend bool, err error) {
	if action.root.Kind == RootKindSingleFile {
		file, err := c.locateSingle(action)
		if err != nil || file == "" {
			return nil, false, err
		}
		return []string{file}, false, nil
	}

	if leafDir := action.leafDir(); leafDir != "" && action.base.Name() != c.indexName {
		leaf, err := toolfile.Find(leafDir, action.base.Name())
		if err != nil {
			return nil, false, &LoadError{Root: action.root, File: leafDir, Cause: err}
		}
		if leaf != "" {
			files = append(files, leaf)
		}
	}

	info, err := os.Stat(action.dir)
	switch {
	case err == nil && info.IsDir():
		descend = true
	case err == nil, errors.Is(err, fs.ErrNotExist):
		return files, false, nil
	default:
		return nil, false, &LoadError{Root: action.root, File: action.dir, Cause: err}
	}

	index, err := toolfile.Find(action.dir, c.indexName)
	if err != nil {
		return nil, false, &LoadError{Root: action.root, File: action.dir, Cause: fmt.Errorf("failed to find index file: %w", err)}
	}
	if index != "" {
		files = append(files, index)
	}
	return files, descend, nil
}

// locateSingle resolves a single-file root to its file. A root naming a
// directory uses the config file inside it. A missing root yields "".
func (c *Cache) locateSingle(action loadAction) (string, error) {
	info, err := os.Stat(action.root.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", &LoadError{Root: action.root, Cause: err}
	}
	if !info.IsDir() {
		return action.root.Path, nil
	}
	file, err := toolfile.Find(action.root.Path, c.configName)
	if err != nil {
		return "", &LoadError{Root: action.root, Cause: err}
	}
	return file, nil
}
