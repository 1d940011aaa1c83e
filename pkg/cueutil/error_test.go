// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	if err := FormatError(nil, "tools.cue"); err != nil {
		t.Errorf("FormatError(nil) = %v, want nil", err)
	}

	plain := errors.New("permission denied")
	err := FormatError(plain, "tools.cue")
	if got, want := err.Error(), "tools.cue: permission denied"; got != want {
		t.Errorf("FormatError(plain) = %q, want %q", got, want)
	}
	if !errors.Is(err, plain) {
		t.Error("non-CUE errors should stay wrapped")
	}
}

func TestFormatError_CUEPaths(t *testing.T) {
	t.Parallel()

	schema, err := NewSchema(`
#Doc: {
	tools?: [...{name: string, run?: string}]
}
`, "#Doc")
	if err != nil {
		t.Fatalf("NewSchema() error: %v", err)
	}

	var out map[string]any
	err = schema.Decode([]byte(`tools: [{name: "a"}, {name: "b", run: 3}]`), &out, WithFilename("db/tools.cue"))
	if err == nil {
		t.Fatal("Decode() expected a type error")
	}
	if msg := err.Error(); !strings.HasPrefix(msg, "db/tools.cue: ") || !strings.Contains(msg, "tools[1].run") {
		t.Errorf("Decode() error = %q, want file prefix and tools[1].run", msg)
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"description"}, "description"},
		{[]string{"tools", "run"}, "tools.run"},
		{[]string{"tools", "0", "run"}, "tools[0].run"},
		{[]string{"collections", "0", "tools", "2", "flags"}, "collections[0].tools[2].flags"},
		{[]string{"0", "name"}, "0.name"},
		{[]string{"aliases", "0", "target", "1"}, "aliases[0].target[1]"},
	}
	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty", 0, false},
		{"below limit", 11, false},
		{"at limit", 100, false},
		{"above limit", 101, true},
	}
	for _, tt := range tests {
		err := CheckFileSize(make([]byte, tt.size), 100, "tooltree.cue")
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: CheckFileSize() error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if err != nil && !strings.Contains(err.Error(), "tooltree.cue: file size 101 bytes exceeds maximum 100 bytes") {
			t.Errorf("%s: CheckFileSize() error = %q", tt.name, err)
		}
	}
}
