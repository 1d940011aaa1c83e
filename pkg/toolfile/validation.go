// SPDX-License-Identifier: MPL-2.0

package toolfile

import (
	"errors"
	"fmt"

	"github.com/invowk/tooltree/pkg/namepath"
	"github.com/invowk/tooltree/pkg/tooldef"
)

// ErrInvalidDocument is wrapped by structural validation failures.
var ErrInvalidDocument = errors.New("invalid definition document")

// Validate checks names, flag/argument definitions and duplicate names at
// each level. Schema-level checks for CUE files happen earlier; this runs for
// every format so TOML, YAML and HCL files get the same guarantees.
func Validate(doc *Document) error {
	var errs tooldef.ValidationErrors
	if doc.IsTool() {
		validateToolDocument(doc, &errs)
	} else {
		validateBody(doc.body(), namepath.Path{}, &errs)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateBody(body CollectionDoc, at namepath.Path, errs *tooldef.ValidationErrors) {
	add := func(format string, a ...any) {
		*errs = append(*errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, a...), ErrInvalidDocument))
	}

	seen := make(map[string]string)
	claim := func(name, kind string) bool {
		full := at.Child(name)
		if err := full.Validate(); err != nil {
			add("%s %q: %v", kind, full.Dotted(), err)
			return false
		}
		if prev, ok := seen[name]; ok {
			add("%s %q is already declared as a %s in this file", kind, full.Dotted(), prev)
			return false
		}
		seen[name] = kind
		return true
	}

	for _, t := range body.Tools {
		if !claim(t.Name, "tool") {
			continue
		}
		appendToolErrors(errs, tooldef.ValidateToolSpec(at.Child(t.Name).Dotted(), toolSpec(t, "")))
	}
	for _, a := range body.Aliases {
		if !claim(a.Name, "alias") {
			continue
		}
		if _, err := ParseAliasTarget(a.Target, at); err != nil {
			add("alias %q: %v", at.Child(a.Name).Dotted(), err)
		}
	}
	for _, c := range body.Collections {
		if !claim(c.Name, "collection") {
			continue
		}
		validateBody(c, at.Child(c.Name), errs)
	}
}

func validateToolDocument(doc *Document, errs *tooldef.ValidationErrors) {
	if len(doc.Tools) > 0 || len(doc.Collections) > 0 || len(doc.Aliases) > 0 {
		*errs = append(*errs, fmt.Errorf("a tool document cannot declare nested tools or collections: %w", ErrInvalidDocument))
	}
	appendToolErrors(errs, tooldef.ValidateToolSpec("(document)", toolSpec(doc.tool(""), "")))
}

func appendToolErrors(errs *tooldef.ValidationErrors, err error) {
	if err == nil {
		return
	}
	var verrs tooldef.ValidationErrors
	if errors.As(err, &verrs) {
		*errs = append(*errs, verrs...)
		return
	}
	*errs = append(*errs, err)
}
