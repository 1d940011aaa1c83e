// SPDX-License-Identifier: MPL-2.0

package namepath

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Path
	}{
		{"", Path{}},
		{"tool-1", Path{"tool-1"}},
		{"a.b c", Path{"a", "b", "c"}},
		{"  a   b ", Path{"a", "b"}},
		{"a..b", Path{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := Parse(tt.in); !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromWords(t *testing.T) {
	t.Parallel()

	got := FromWords([]string{"db.migrate", "up"})
	if want := (Path{"db", "migrate", "up"}); !got.Equal(want) {
		t.Errorf("FromWords() = %v, want %v", got, want)
	}
}

func TestPath_Validate(t *testing.T) {
	t.Parallel()

	if err := New("collection-1", "tool_2").Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	err := New("ok", "-bad").Validate()
	if !errors.Is(err, ErrInvalidSegment) {
		t.Fatalf("Validate() error = %v, want ErrInvalidSegment", err)
	}
	var segErr *InvalidSegmentError
	if !errors.As(err, &segErr) || segErr.Index != 1 {
		t.Errorf("Validate() error = %#v, want index 1", err)
	}
}

func TestPath_HasPrefix(t *testing.T) {
	t.Parallel()

	p := New("a", "b", "c")
	tests := []struct {
		prefix Path
		want   bool
	}{
		{Path{}, true},
		{New("a"), true},
		{New("a", "b", "c"), true},
		{New("b"), false},
		{New("a", "b", "c", "d"), false},
	}
	for _, tt := range tests {
		if got := p.HasPrefix(tt.prefix); got != tt.want {
			t.Errorf("HasPrefix(%v) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestPath_ChildDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := make(Path, 1, 4)
	base[0] = "a"
	x := base.Child("x")
	y := base.Child("y")
	if x.Name() != "x" || y.Name() != "y" {
		t.Errorf("Child() shared backing array: x=%v y=%v", x, y)
	}
}

func TestPath_KeyRoundTrip(t *testing.T) {
	t.Parallel()

	for _, p := range []Path{{}, New("a"), New("a", "b-c", "d")} {
		if got := FromKey(p.Key()); !got.Equal(p) {
			t.Errorf("FromKey(Key(%v)) = %v", p, got)
		}
	}
}

func TestPath_ParentAndPrefix(t *testing.T) {
	t.Parallel()

	p := New("a", "b", "c")
	if got := p.Parent(); !got.Equal(New("a", "b")) {
		t.Errorf("Parent() = %v", got)
	}
	if got := (Path{}).Parent(); !got.IsRoot() {
		t.Errorf("root Parent() = %v, want root", got)
	}
	if got := p.Prefix(10); !got.Equal(p) {
		t.Errorf("Prefix(10) = %v, want %v", got, p)
	}
	if got := p.Prefix(-1); !got.IsRoot() {
		t.Errorf("Prefix(-1) = %v, want root", got)
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	if Compare(New("a"), New("a", "b")) >= 0 {
		t.Error("Compare: shorter path should sort first")
	}
	if Compare(New("b"), New("a", "z")) <= 0 {
		t.Error("Compare: segment order should dominate length")
	}
	if Compare(New("a", "b"), New("a", "b")) != 0 {
		t.Error("Compare: equal paths should compare 0")
	}
}

func TestPath_Formatting(t *testing.T) {
	t.Parallel()

	p := New("collection-1", "tool-1-3")
	if got := p.String(); got != "collection-1 tool-1-3" {
		t.Errorf("String() = %q", got)
	}
	if got := p.Dotted(); got != "collection-1.tool-1-3" {
		t.Errorf("Dotted() = %q", got)
	}
}
