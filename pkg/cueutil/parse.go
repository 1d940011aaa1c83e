// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Schema is a compiled CUE schema definition that user documents are
// unified with. Compiling once lets many definition files share the work.
//
// A Schema owns its CUE context; methods serialize access to it.
type Schema struct {
	mu   sync.Mutex
	ctx  *cue.Context
	root cue.Value
	path string
}

// NewSchema compiles src and looks up the definition at defPath (e.g. "#Toolfile").
func NewSchema(src, defPath string) (*Schema, error) {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(src)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	root := schemaValue.LookupPath(cue.ParsePath(defPath))
	if root.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", defPath, root.Err())
	}

	return &Schema{ctx: ctx, root: root, path: defPath}, nil
}

// MustSchema is like NewSchema but panics on error. Use it only for
// schemas embedded in the binary.
func MustSchema(src, defPath string) *Schema {
	s, err := NewSchema(src, defPath)
	if err != nil {
		panic(err)
	}
	return s
}

// Decode compiles data, unifies it with the schema, validates it and decodes
// the result into out (a pointer to a struct or map).
func (s *Schema) Decode(data []byte, out any, opts ...Option) error {
	options := newDecodeConfig(opts)

	if err := CheckFileSize(data, options.maxFileSize, options.filename); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userValue := s.ctx.CompileBytes(data, cue.Filename(options.filename))
	if userValue.Err() != nil {
		return FormatError(userValue.Err(), options.filename)
	}

	unified := s.root.Unify(userValue)
	if err := unified.Validate(cue.Concrete(options.concrete)); err != nil {
		return FormatError(err, options.filename)
	}

	if err := unified.Decode(out); err != nil {
		return FormatError(err, options.filename)
	}
	return nil
}

// ParseAndDecode is the one-shot form of NewSchema followed by Decode.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*T, error) {
	s, err := NewSchema(string(schema), schemaPath)
	if err != nil {
		return nil, err
	}
	var result T
	if err := s.Decode(data, &result, opts...); err != nil {
		return nil, err
	}
	return &result, nil
}
