// SPDX-License-Identifier: MPL-2.0

package tooldef

import (
	"errors"
	"testing"

	"github.com/invowk/tooltree/pkg/namepath"
)

func TestNewTool_CopiesInputs(t *testing.T) {
	t.Parallel()

	name := namepath.New("a", "b")
	spec := ToolSpec{
		Description:     "desc",
		LongDescription: []string{"line 1"},
		Flags:           []Flag{{Name: "force", Type: FlagTypeBool}},
	}
	tool := NewTool(name, "/root", spec)

	name[0] = "mutated"
	spec.LongDescription[0] = "mutated"
	spec.Flags[0].Name = "mutated"

	if got := tool.FullName(); !got.Equal(namepath.New("a", "b")) {
		t.Errorf("FullName() = %v, want [a b]", got)
	}
	if tool.LongDesc()[0] != "line 1" {
		t.Errorf("LongDesc() shares storage with the ToolSpec")
	}
	if tool.Flags[0].Name != "force" {
		t.Errorf("Flags share storage with the ToolSpec")
	}
	if tool.Kind() != KindTool || tool.RootPath() != "/root" {
		t.Errorf("unexpected kind/root: %s %s", tool.Kind(), tool.RootPath())
	}
}

func TestIsExplicit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{"nil", nil, false},
		{"tool", NewTool(namepath.New("t"), "", ToolSpec{}), true},
		{"alias", NewAlias(namepath.New("a"), namepath.New("t"), "", "", ""), true},
		{"explicit collection", NewCollection(namepath.New("c"), "", CollectionSpec{}), true},
		{"implicit collection", NewImplicitCollection(namepath.New("c"), ""), false},
		{"root collection", RootCollection(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsExplicit(tt.entry); got != tt.want {
				t.Errorf("IsExplicit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRootCollection(t *testing.T) {
	t.Parallel()

	root := RootCollection()
	if !root.FullName().IsRoot() {
		t.Errorf("RootCollection().FullName() = %v, want empty", root.FullName())
	}
	if root.Kind() != KindCollection {
		t.Errorf("RootCollection().Kind() = %s", root.Kind())
	}
}

func TestValidateToolSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    ToolSpec
		wantErr bool
	}{
		{"empty", ToolSpec{}, false},
		{"valid flags and args", ToolSpec{
			Flags: []Flag{{Name: "output", Short: "o"}, {Name: "count", Type: FlagTypeInt, Default: "3"}},
			Args:  []Argument{{Name: "src", Required: true}, {Name: "rest", Variadic: true}},
		}, false},
		{"bad flag name", ToolSpec{Flags: []Flag{{Name: "-x"}}}, true},
		{"reserved flag", ToolSpec{Flags: []Flag{{Name: "help"}}}, true},
		{"duplicate flag", ToolSpec{Flags: []Flag{{Name: "x"}, {Name: "x"}}}, true},
		{"reserved short", ToolSpec{Flags: []Flag{{Name: "host", Short: "h"}}}, true},
		{"bad flag type", ToolSpec{Flags: []Flag{{Name: "x", Type: "duration"}}}, true},
		{"bad default", ToolSpec{Flags: []Flag{{Name: "n", Type: FlagTypeInt, Default: "many"}}}, true},
		{"variadic not last", ToolSpec{Args: []Argument{{Name: "a", Variadic: true}, {Name: "b"}}}, true},
		{"required after optional", ToolSpec{Args: []Argument{{Name: "a"}, {Name: "b", Required: true}}}, true},
		{"bad arg type", ToolSpec{Args: []Argument{{Name: "a", Type: ArgumentType("bool")}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateToolSpec("demo", tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToolSpec() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTool) {
				t.Errorf("ValidateToolSpec() error does not wrap ErrInvalidTool: %v", err)
			}
		})
	}
}

func TestArgumentAndFlagUsage(t *testing.T) {
	t.Parallel()

	if got := (&Argument{Name: "files", Variadic: true}).Usage(); got != "[FILES...]" {
		t.Errorf("Argument.Usage() = %q", got)
	}
	if got := (&Argument{Name: "src", Required: true}).Usage(); got != "SRC" {
		t.Errorf("Argument.Usage() = %q", got)
	}
	if got := (&Flag{Name: "force", Short: "f", Type: FlagTypeBool}).Usage(); got != "-f, --force" {
		t.Errorf("Flag.Usage() = %q", got)
	}
	if got := (&Flag{Name: "count", Type: FlagTypeInt}).Usage(); got != "--count int" {
		t.Errorf("Flag.Usage() = %q", got)
	}
}
