// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// WriteTree creates files below root. Keys are slash-separated paths relative
// to root; values are file contents. A key ending in "/" creates an empty
// directory. Parent directories are created as needed.
//
// Usage:
//
//	testutil.WriteTree(t, dir, map[string]string{
//	    "tools.yaml":      "description: Root tools\n",
//	    "db/migrate.yaml": "run: migrate up\n",
//	    "empty/":          "",
//	})
func WriteTree(t testing.TB, root string, files map[string]string) {
	t.Helper()

	for _, rel := range slices.Sorted(maps.Keys(files)) {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("failed to create directory %s: %v", full, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("failed to create directory %s: %v", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, []byte(files[rel]), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", full, err)
		}
	}
}
