// SPDX-License-Identifier: MPL-2.0

package toolfile

import (
	"fmt"
	"os"

	"github.com/invowk/tooltree/pkg/namepath"
	"github.com/invowk/tooltree/pkg/tooldef"
)

// Interpreter evaluates definition files into Sink registrations.
// The zero value is ready to use.
type Interpreter struct{}

// NewInterpreter returns an Interpreter.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// ParseFile reads and decodes a definition file, choosing the format from
// its extension, and validates its structure.
func (in *Interpreter) ParseFile(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}
	doc, err := Decode(data, format, path)
	if err != nil {
		return nil, err
	}
	if err := Validate(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Evaluate parses path and registers everything it declares under base.
// The document itself declares the collection at base.
func (in *Interpreter) Evaluate(path string, base namepath.Path, sink Sink) error {
	doc, err := in.ParseFile(path)
	if err != nil {
		return err
	}
	return Register(doc, path, base, sink)
}

// Register walks doc and reports its definitions to sink. source is recorded
// as the source path of every entry.
func Register(doc *Document, source string, base namepath.Path, sink Sink) error {
	if doc.IsTool() {
		return sink.RegisterTool(base, toolSpec(doc.tool(base.Name()), source))
	}
	return registerBody(doc.body(), source, base, sink)
}

func registerBody(body CollectionDoc, source string, at namepath.Path, sink Sink) error {
	if err := sink.RegisterCollection(at, tooldef.CollectionSpec{
		Description:     body.Description,
		LongDescription: body.LongDescription,
		Source:          source,
	}); err != nil {
		return err
	}

	for _, t := range body.Tools {
		if err := sink.RegisterTool(at.Child(t.Name), toolSpec(t, source)); err != nil {
			return err
		}
	}

	for _, a := range body.Aliases {
		target, err := ParseAliasTarget(a.Target, at)
		if err != nil {
			return fmt.Errorf("%s: alias '%s': %w", source, at.Child(a.Name), err)
		}
		if err := sink.RegisterAlias(at.Child(a.Name), target, a.Description); err != nil {
			return err
		}
	}

	for _, c := range body.Collections {
		if err := registerBody(c, source, at.Child(c.Name), sink); err != nil {
			return err
		}
	}
	return nil
}

func toolSpec(t ToolDoc, source string) tooldef.ToolSpec {
	spec := tooldef.ToolSpec{
		Description:     t.Description,
		LongDescription: t.LongDescription,
		Run:             t.Run,
		Source:          source,
	}
	for _, f := range t.Flags {
		spec.Flags = append(spec.Flags, tooldef.Flag{
			Name:        f.Name,
			Short:       f.Short,
			Description: f.Description,
			Type:        tooldef.FlagType(f.Type),
			Default:     f.Default,
			Required:    f.Required,
		})
	}
	for _, a := range t.Args {
		spec.Args = append(spec.Args, tooldef.Argument{
			Name:        a.Name,
			Description: a.Description,
			Type:        tooldef.ArgumentType(a.Type),
			Required:    a.Required,
			Default:     a.Default,
			Variadic:    a.Variadic,
		})
	}
	return spec
}
