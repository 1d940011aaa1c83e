// SPDX-License-Identifier: MPL-2.0

package toolfile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/invowk/tooltree/pkg/namepath"
	"github.com/invowk/tooltree/pkg/tooldef"
)

// Each fixture below declares the same namespace in a different format.
const (
	cueFixture = `
description: "Project tools"
tools: [{
	name:        "build"
	description: "Build everything"
	run:         "go build ./..."
	flags: [{name: "race", short: "r", type: "bool"}]
	args: [{name: "pkg", required: true}]
}]
collections: [{
	name:        "db"
	description: "Database tools"
	tools: [{name: "migrate", description: "Run migrations"}]
	aliases: [{name: "m", target: "migrate"}]
}]
aliases: [{name: "b", target: "build", description: "short for build"}]
`

	tomlFixture = `
description = "Project tools"

[[tools]]
name = "build"
description = "Build everything"
run = "go build ./..."

[[tools.flags]]
name = "race"
short = "r"
type = "bool"

[[tools.args]]
name = "pkg"
required = true

[[collections]]
name = "db"
description = "Database tools"

[[collections.tools]]
name = "migrate"
description = "Run migrations"

[[collections.aliases]]
name = "m"
target = "migrate"

[[aliases]]
name = "b"
target = "build"
description = "short for build"
`

	yamlFixture = `
description: Project tools
tools:
  - name: build
    description: Build everything
    run: go build ./...
    flags:
      - {name: race, short: r, type: bool}
    args:
      - {name: pkg, required: true}
collections:
  - name: db
    description: Database tools
    tools:
      - {name: migrate, description: Run migrations}
    aliases:
      - {name: m, target: migrate}
aliases:
  - {name: b, target: build, description: short for build}
`

	hclFixture = `
description = "Project tools"

tool "build" {
  description = "Build everything"
  run         = "go build ./..."
  flag "race" {
    short = "r"
    type  = "bool"
  }
  arg "pkg" {
    required = true
  }
}

collection "db" {
  description = "Database tools"
  tool "migrate" {
    description = "Run migrations"
  }
  alias "m" {
    target = "migrate"
  }
}

alias "b" {
  target      = "build"
  description = "short for build"
}
`
)

type registration struct {
	Kind   string
	Path   string
	Desc   string
	Target string
	Flags  int
	Args   int
	Source string
}

type recordingSink struct {
	regs    []registration
	failAt  string
	failErr error
}

func (s *recordingSink) check(path namepath.Path) error {
	if s.failAt != "" && path.Dotted() == s.failAt {
		return s.failErr
	}
	return nil
}

func (s *recordingSink) RegisterTool(path namepath.Path, spec tooldef.ToolSpec) error {
	if err := s.check(path); err != nil {
		return err
	}
	s.regs = append(s.regs, registration{Kind: "tool", Path: path.Dotted(), Desc: spec.Description, Flags: len(spec.Flags), Args: len(spec.Args), Source: spec.Source})
	return nil
}

func (s *recordingSink) RegisterCollection(path namepath.Path, spec tooldef.CollectionSpec) error {
	if err := s.check(path); err != nil {
		return err
	}
	s.regs = append(s.regs, registration{Kind: "collection", Path: path.Dotted(), Desc: spec.Description, Source: spec.Source})
	return nil
}

func (s *recordingSink) RegisterAlias(path, target namepath.Path, desc string) error {
	if err := s.check(path); err != nil {
		return err
	}
	s.regs = append(s.regs, registration{Kind: "alias", Path: path.Dotted(), Desc: desc, Target: target.Dotted()})
	return nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestEvaluate_AllFormatsAgree(t *testing.T) {
	t.Parallel()

	fixtures := map[string]string{
		"tools.cue":  cueFixture,
		"tools.toml": tomlFixture,
		"tools.yaml": yamlFixture,
		"tools.hcl":  hclFixture,
	}

	var reference []registration
	for _, name := range []string{"tools.cue", "tools.toml", "tools.yaml", "tools.hcl"} {
		dir := t.TempDir()
		path := writeFile(t, dir, name, fixtures[name])

		sink := &recordingSink{}
		if err := NewInterpreter().Evaluate(path, namepath.New("proj"), sink); err != nil {
			t.Fatalf("Evaluate(%s) error: %v", name, err)
		}

		// Normalize the source path so results are comparable across formats.
		for i := range sink.regs {
			if sink.regs[i].Source != "" {
				if sink.regs[i].Source != path {
					t.Errorf("%s: source = %q, want %q", name, sink.regs[i].Source, path)
				}
				sink.regs[i].Source = "<file>"
			}
		}

		if reference == nil {
			reference = sink.regs
			continue
		}
		if !reflect.DeepEqual(sink.regs, reference) {
			t.Errorf("%s registrations differ from tools.cue:\n got  %+v\n want %+v", name, sink.regs, reference)
		}
	}

	want := []registration{
		{Kind: "collection", Path: "proj", Desc: "Project tools", Source: "<file>"},
		{Kind: "tool", Path: "proj.build", Desc: "Build everything", Flags: 1, Args: 1, Source: "<file>"},
		{Kind: "alias", Path: "proj.b", Desc: "short for build", Target: "proj.build"},
		{Kind: "collection", Path: "proj.db", Desc: "Database tools", Source: "<file>"},
		{Kind: "tool", Path: "proj.db.migrate", Desc: "Run migrations", Source: "<file>"},
		{Kind: "alias", Path: "proj.db.m", Target: "proj.db.migrate"},
	}
	if !reflect.DeepEqual(reference, want) {
		t.Errorf("registrations = %+v, want %+v", reference, want)
	}
}

func TestEvaluate_SinkErrorStops(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tools.cue", cueFixture)

	boom := errors.New("boom")
	sink := &recordingSink{failAt: "build", failErr: boom}
	err := NewInterpreter().Evaluate(path, namepath.Path{}, sink)
	if !errors.Is(err, boom) {
		t.Fatalf("Evaluate() error = %v, want boom", err)
	}
	if len(sink.regs) != 1 {
		t.Errorf("Evaluate() continued after sink error: %+v", sink.regs)
	}
}

func TestEvaluate_ToolDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"cue", "deploy.cue", "description: \"Ship it\"\nrun: \"make deploy\"\nflags: [{name: \"dry-run\", type: \"bool\"}]\n"},
		{"toml", "deploy.toml", "description = \"Ship it\"\nrun = \"make deploy\"\n\n[[flags]]\nname = \"dry-run\"\ntype = \"bool\"\n"},
		{"yaml", "deploy.yaml", "description: Ship it\nrun: make deploy\nflags:\n  - name: dry-run\n    type: bool\n"},
		{"hcl", "deploy.hcl", "description = \"Ship it\"\nrun = \"make deploy\"\nflag \"dry-run\" {\n  type = \"bool\"\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			sink := &recordingSink{}
			if err := NewInterpreter().Evaluate(path, namepath.New("ops", "deploy"), sink); err != nil {
				t.Fatalf("Evaluate() error: %v", err)
			}
			want := []registration{{Kind: "tool", Path: "ops.deploy", Desc: "Ship it", Flags: 1, Source: path}}
			if !reflect.DeepEqual(sink.regs, want) {
				t.Errorf("registrations = %+v, want %+v", sink.regs, want)
			}
		})
	}
}

func TestParseFile_ToolDocumentWithNestedEntries(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "deploy.yaml", "run: make deploy\ntools:\n  - name: inner\n")
	_, err := NewInterpreter().ParseFile(path)
	if !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("ParseFile() error = %v, want ErrInvalidDocument", err)
	}
}

func TestParseFile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		wantSub string
	}{
		{"cue schema violation", "tools.cue", `tools: [{name: "build", flags: [{name: "x", type: "duration"}]}]`, "tools.cue"},
		{"cue unknown field", "tools.cue", `colour: "red"`, "colour"},
		{"toml unknown field", "tools.toml", "colour = \"red\"\n", "colour"},
		{"yaml unknown field", "tools.yaml", "colour: red\n", "colour"},
		{"hcl syntax", "tools.hcl", `tool "x" {`, "tools.hcl"},
		{"duplicate names", "tools.yaml", "tools:\n  - name: x\n  - name: x\n", "already declared"},
		{"tool vs collection clash", "tools.yaml", "tools:\n  - name: x\ncollections:\n  - name: x\n", "already declared"},
		{"bad name", "tools.toml", "[[tools]]\nname = \"-x\"\n", "invalid name segment"},
		{"variadic not last", "tools.yaml", "tools:\n  - name: x\n    args:\n      - {name: a, variadic: true}\n      - {name: b}\n", "variadic"},
		{"bad alias target", "tools.yaml", "aliases:\n  - {name: a, target: \"'unterminated\"}\n", "invalid alias target"},
		{"unknown extension", "tools.json", `{}`, "unknown definition file format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			_, err := NewInterpreter().ParseFile(path)
			if err == nil {
				t.Fatal("ParseFile() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("ParseFile() error = %v, want substring %q", err, tt.wantSub)
			}
		})
	}
}

func TestParseFile_EmptyDocuments(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"tools.cue", "tools.toml", "tools.yaml", "tools.hcl"} {
		path := writeFile(t, t.TempDir(), name, "")
		doc, err := NewInterpreter().ParseFile(path)
		if err != nil {
			t.Errorf("ParseFile(empty %s) error: %v", name, err)
			continue
		}
		if len(doc.Tools) != 0 || doc.Description != "" {
			t.Errorf("ParseFile(empty %s) = %+v", name, doc)
		}
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewInterpreter().ParseFile(filepath.Join(t.TempDir(), "tools.cue"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ParseFile() error = %v, want ErrNotExist", err)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if got, err := Find(dir, "tools"); err != nil || got != "" {
		t.Fatalf("Find(empty dir) = %q, %v", got, err)
	}

	writeFile(t, dir, "tools.yaml", "")
	if got, _ := Find(dir, "tools"); filepath.Base(got) != "tools.yaml" {
		t.Errorf("Find() = %q, want tools.yaml", got)
	}

	writeFile(t, dir, "tools.cue", "")
	if got, _ := Find(dir, "tools"); filepath.Base(got) != "tools.cue" {
		t.Errorf("Find() = %q, want tools.cue to take preference", got)
	}

	if got, err := Find(filepath.Join(dir, "missing"), "tools"); err != nil || got != "" {
		t.Errorf("Find(missing dir) = %q, %v", got, err)
	}
	if got, err := Find(filepath.Join(dir, "tools.cue"), "tools"); err != nil || got != "" {
		t.Errorf("Find(file as dir) = %q, %v", got, err)
	}

	// A directory with the index name is not a definition file.
	sub := t.TempDir()
	if err := os.Mkdir(filepath.Join(sub, "tools.cue"), 0o755); err != nil {
		t.Fatal(err)
	}
	if got, err := Find(sub, "tools"); err != nil || got != "" {
		t.Errorf("Find(dir named tools.cue) = %q, %v", got, err)
	}
}

func TestParseAliasTarget(t *testing.T) {
	t.Parallel()

	parent := namepath.New("db")
	tests := []struct {
		target  string
		want    namepath.Path
		wantErr bool
	}{
		{"migrate", namepath.New("db", "migrate"), false},
		{"migrate up", namepath.New("db", "migrate", "up"), false},
		{"migrate.up", namepath.New("db", "migrate", "up"), false},
		{"/build", namepath.New("build"), false},
		{"'/build' test", namepath.New("build", "test"), false},
		{`"migrate" "up"`, namepath.New("db", "migrate", "up"), false},
		{"", nil, true},
		{"/", nil, true},
		{"'open", nil, true},
		{"bad!name", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()
			got, err := ParseAliasTarget(tt.target, parent)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAliasTarget(%q) error = %v, wantErr %v", tt.target, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidAliasTarget) {
					t.Errorf("error does not wrap ErrInvalidAliasTarget: %v", err)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseAliasTarget(%q) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestFormatOf(t *testing.T) {
	t.Parallel()

	tests := map[string]Format{
		"a/tools.cue":  FormatCUE,
		"tools.TOML":   FormatTOML,
		"x.yml":        FormatYAML,
		"x.yaml":       FormatYAML,
		"tooltree.hcl": FormatHCL,
	}
	for path, want := range tests {
		if got, err := FormatOf(path); err != nil || got != want {
			t.Errorf("FormatOf(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
	if _, err := FormatOf("tools.json"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("FormatOf(json) error = %v, want ErrUnknownFormat", err)
	}
}
