// SPDX-License-Identifier: MPL-2.0

package tooldef

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// reservedFlagName is taken by the CLI's own help handling.
const reservedFlagName = "help"

var (
	// ErrInvalidTool is wrapped by every error ValidateToolSpec reports.
	ErrInvalidTool = errors.New("invalid tool definition")

	flagNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
	shortPattern    = regexp.MustCompile(`^[a-zA-Z]$`)
)

// ValidationErrors collects every problem found in one definition.
type ValidationErrors []error

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	if len(v) == 1 {
		return v[0].Error()
	}
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d problems:\n  %s", len(v), strings.Join(msgs, "\n  "))
}

// Unwrap exposes the individual errors to errors.Is/As.
func (v ValidationErrors) Unwrap() []error { return v }

// ValidateToolSpec checks flag and argument definitions of the tool named
// toolName. It returns nil when the payload is valid.
func ValidateToolSpec(toolName string, spec ToolSpec) error {
	var errs ValidationErrors
	add := func(format string, a ...any) {
		errs = append(errs, fmt.Errorf("tool '%s': %s: %w", toolName, fmt.Sprintf(format, a...), ErrInvalidTool))
	}

	seenNames := make(map[string]bool)
	seenShorts := make(map[string]bool)
	for _, f := range spec.Flags {
		switch {
		case !flagNamePattern.MatchString(f.Name):
			add("flag name %q must start with a letter and contain only letters, digits, '-' or '_'", f.Name)
		case f.Name == reservedFlagName:
			add("flag name %q is reserved", f.Name)
		case seenNames[f.Name]:
			add("duplicate flag %q", f.Name)
		}
		seenNames[f.Name] = true

		if f.Short != "" {
			switch {
			case !shortPattern.MatchString(f.Short):
				add("flag %q short name %q must be a single letter", f.Name, f.Short)
			case f.Short == "h":
				add("flag %q short name 'h' is reserved", f.Name)
			case seenShorts[f.Short]:
				add("duplicate short flag %q", f.Short)
			}
			seenShorts[f.Short] = true
		}
		if ok, typeErrs := f.Type.IsValid(); !ok {
			add("flag %q: %v", f.Name, typeErrs[0])
		} else if err := f.validateDefault(); err != nil {
			add("%v", err)
		}
	}

	seenArgs := make(map[string]bool)
	sawOptional := false
	for i, a := range spec.Args {
		switch {
		case !flagNamePattern.MatchString(a.Name):
			add("argument name %q must start with a letter and contain only letters, digits, '-' or '_'", a.Name)
		case seenArgs[a.Name]:
			add("duplicate argument %q", a.Name)
		}
		seenArgs[a.Name] = true

		if ok, typeErrs := a.Type.IsValid(); !ok {
			add("argument %q: %v", a.Name, typeErrs[0])
		} else if a.Default != "" {
			if err := validateValueType(a.Default, string(a.GetType())); err != nil {
				add("argument %q default value %q %v", a.Name, a.Default, err)
			}
		}
		if a.Variadic && i != len(spec.Args)-1 {
			add("argument %q is variadic but not last", a.Name)
		}
		if a.Required && sawOptional {
			add("required argument %q follows an optional argument", a.Name)
		}
		if !a.Required {
			sawOptional = true
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
