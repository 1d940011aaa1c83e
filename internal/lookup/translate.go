// SPDX-License-Identifier: MPL-2.0

package lookup

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/invowk/tooltree/pkg/namepath"
	"github.com/invowk/tooltree/pkg/toolfile"
)

// loadAction is one unit of lazy loading: one namespace node of a
// hierarchical root, or the whole of a single-file root.
//
// In a hierarchical root the node at base may come from a leaf file
// "<name>.<ext>" next to dir, from dir's index file, or from both.
type loadAction struct {
	root Root
	// dir is the directory mirroring base. Empty for single-file roots.
	dir string
	// base is the namespace path the action's definitions are rooted at.
	base namepath.Path
}

// key identifies the action in the cache's load-state table.
func (a loadAction) key() string {
	return a.root.key() + "\x00" + a.base.Key()
}

// leafDir returns the directory holding the action's leaf file, or "" when
// the action has none (the namespace root, or single-file roots).
func (a loadAction) leafDir() string {
	if a.dir == "" || a.base.IsRoot() {
		return ""
	}
	return filepath.Dir(a.dir)
}

// translate returns the load actions that may define path or any of its
// ancestors, ordered root-first. For hierarchical roots only nodes on the
// way to path are named, never siblings; a segment that cannot be a file
// or directory name ends the list.
func translate(root Root, path namepath.Path) []loadAction {
	if root.Kind == RootKindSingleFile {
		return []loadAction{{root: root, base: namepath.Path{}}}
	}

	actions := []loadAction{{root: root, dir: root.Path, base: namepath.Path{}}}
	dir := root.Path
	for i, seg := range path {
		if !isNamespaceName(seg) {
			break
		}
		dir = filepath.Join(dir, seg)
		actions = append(actions, loadAction{root: root, dir: dir, base: path.Prefix(i + 1)})
	}
	return actions
}

// translateBelow returns the load actions for the direct children of a loaded
// hierarchical node: its subdirectories and its leaf files, excluding the
// index file itself. Single-file roots have none.
func translateBelow(parent loadAction, indexName string) ([]loadAction, error) {
	if parent.root.Kind == RootKindSingleFile || parent.dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(parent.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() {
			if _, ferr := toolfile.FormatOf(name); ferr != nil {
				continue
			}
			name = strings.TrimSuffix(name, filepath.Ext(name))
			if name == indexName {
				continue
			}
		}
		if isNamespaceName(name) && !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	actions := make([]loadAction, 0, len(names))
	for _, name := range names {
		actions = append(actions, loadAction{
			root: parent.root,
			dir:  filepath.Join(parent.dir, name),
			base: parent.base.Child(name),
		})
	}
	return actions, nil
}

// isNamespaceName reports whether a file or directory name can stand for a
// namespace segment. Hidden entries never can.
func isNamespaceName(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return namepath.New(name).Validate() == nil
}
