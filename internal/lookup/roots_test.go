// SPDX-License-Identifier: MPL-2.0

package lookup

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestRegistry_PrependOrder(t *testing.T) {
	t.Parallel()

	a, b := t.TempDir(), t.TempDir()
	r := NewRegistry()
	if err := r.PrependPaths(a); err != nil {
		t.Fatal(err)
	}
	if err := r.PrependConfigPaths(b); err != nil {
		t.Fatal(err)
	}

	roots := r.Roots()
	want := []Root{
		{Path: b, Kind: RootKindSingleFile},
		{Path: a, Kind: RootKindIndexedHierarchy},
	}
	if len(roots) != len(want) {
		t.Fatalf("Roots() = %v, want %v", roots, want)
	}
	for i := range want {
		if roots[i] != want[i] {
			t.Errorf("Roots()[%d] = %v, want %v", i, roots[i], want[i])
		}
	}
}

func TestRegistry_ReRegisterMovesToFront(t *testing.T) {
	t.Parallel()

	a, b := t.TempDir(), t.TempDir()
	r := NewRegistry()
	for _, dir := range []string{a, b, a} {
		if err := r.PrependPaths(dir); err != nil {
			t.Fatal(err)
		}
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	if got := r.Roots()[0].Path; got != a {
		t.Errorf("front root = %q, want %q", got, a)
	}

	// Same path with a different kind is a distinct root.
	if err := r.PrependConfigPaths(a); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestRegistry_MakesPathsAbsolute(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if err := r.PrependPaths("relative/dir"); err != nil {
		t.Fatal(err)
	}
	got := r.Roots()[0].Path
	if !filepath.IsAbs(got) {
		t.Errorf("root path %q is not absolute", got)
	}
	want, _ := filepath.Abs("relative/dir")
	if got != want {
		t.Errorf("root path = %q, want %q", got, want)
	}
}

func TestRegistry_RootsIsACopy(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if err := r.PrependPaths(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	roots := r.Roots()
	roots[0].Path = "/tampered"
	if r.Roots()[0].Path == "/tampered" {
		t.Error("mutating Roots() result changed the registry")
	}
}

func TestRegistry_InvalidRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		root Root
	}{
		{"empty path", Root{Kind: RootKindIndexedHierarchy}},
		{"unknown kind", Root{Path: "/tmp/x"}},
	}
	for _, tt := range tests {
		r := NewRegistry()
		if err := r.Prepend(tt.root); !errors.Is(err, ErrInvalidRoot) {
			t.Errorf("%s: Prepend() error = %v, want ErrInvalidRoot", tt.name, err)
		}
		if r.Len() != 0 {
			t.Errorf("%s: invalid root was registered", tt.name)
		}
	}
}
