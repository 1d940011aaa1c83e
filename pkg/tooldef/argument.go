// SPDX-License-Identifier: MPL-2.0

package tooldef

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ArgumentTypeString is the default argument type for string values
	ArgumentTypeString ArgumentType = "string"
	// ArgumentTypeInt is for integer arguments
	ArgumentTypeInt ArgumentType = "int"
	// ArgumentTypeFloat is for floating-point arguments
	ArgumentTypeFloat ArgumentType = "float"
)

// ErrInvalidArgumentType is returned when an ArgumentType value is not one of the defined types.
var ErrInvalidArgumentType = errors.New("invalid argument type")

type (
	// ArgumentType represents the data type of an argument
	ArgumentType string

	// InvalidArgumentTypeError is returned when an ArgumentType value is not recognized.
	// It wraps ErrInvalidArgumentType for errors.Is() compatibility.
	InvalidArgumentTypeError struct {
		Value ArgumentType
	}

	// Argument describes a positional argument accepted by a tool.
	Argument struct {
		// Name is used in usage lines, upper-cased.
		Name string
		// Description provides help text for the argument.
		Description string
		// Type is the value type; "" means string.
		Type ArgumentType
		// Required marks arguments that must be provided.
		Required bool
		// Default is used when an optional argument is omitted.
		Default string
		// Variadic accepts the remaining words. Only the last argument may be variadic.
		Variadic bool
	}
)

// Error implements the error interface for InvalidArgumentTypeError.
func (e *InvalidArgumentTypeError) Error() string {
	return fmt.Sprintf("invalid argument type %q (valid: string, int, float)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidArgumentTypeError) Unwrap() error {
	return ErrInvalidArgumentType
}

// IsValid returns whether the ArgumentType is one of the defined argument types,
// and a list of validation errors if it is not.
// Note: the zero value ("") is valid, it is treated as "string" by GetType().
func (at ArgumentType) IsValid() (bool, []error) {
	switch at {
	case ArgumentTypeString, ArgumentTypeInt, ArgumentTypeFloat, "":
		return true, nil
	default:
		return false, []error{&InvalidArgumentTypeError{Value: at}}
	}
}

// GetType returns the effective type of the argument (defaults to "string" if not specified)
func (a *Argument) GetType() ArgumentType {
	if a.Type == "" {
		return ArgumentTypeString
	}
	return a.Type
}

// Usage returns the argument as it appears in a usage line:
// NAME for required, [NAME] for optional, with "..." when variadic.
func (a *Argument) Usage() string {
	s := strings.ToUpper(a.Name)
	if a.Variadic {
		s += "..."
	}
	if !a.Required {
		s = "[" + s + "]"
	}
	return s
}
