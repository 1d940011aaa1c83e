// SPDX-License-Identifier: MPL-2.0

package tooldef

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// FlagTypeString is the default flag type for string values
	FlagTypeString FlagType = "string"
	// FlagTypeBool is for boolean flags (true/false)
	FlagTypeBool FlagType = "bool"
	// FlagTypeInt is for integer flags
	FlagTypeInt FlagType = "int"
	// FlagTypeFloat is for floating-point flags
	FlagTypeFloat FlagType = "float"
)

// ErrInvalidFlagType is returned when a FlagType value is not one of the defined types.
var ErrInvalidFlagType = errors.New("invalid flag type")

type (
	// FlagType represents the data type of a flag
	FlagType string

	// InvalidFlagTypeError is returned when a FlagType value is not recognized.
	// It wraps ErrInvalidFlagType for errors.Is() compatibility.
	InvalidFlagTypeError struct {
		Value FlagType
	}

	// Flag describes a command-line flag accepted by a tool.
	Flag struct {
		// Name is the long flag name, without leading dashes.
		Name string
		// Short is an optional single-character alias.
		Short string
		// Description provides help text for the flag.
		Description string
		// Type is the value type; "" means string.
		Type FlagType
		// Default is the default value in string form.
		Default string
		// Required marks flags that must be provided.
		Required bool
	}
)

// Error implements the error interface for InvalidFlagTypeError.
func (e *InvalidFlagTypeError) Error() string {
	return fmt.Sprintf("invalid flag type %q (valid: string, bool, int, float)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidFlagTypeError) Unwrap() error {
	return ErrInvalidFlagType
}

// IsValid returns whether the FlagType is one of the defined flag types,
// and a list of validation errors if it is not.
// Note: the zero value ("") is valid and is treated as "string" by GetType().
func (ft FlagType) IsValid() (bool, []error) {
	switch ft {
	case FlagTypeString, FlagTypeBool, FlagTypeInt, FlagTypeFloat, "":
		return true, nil
	default:
		return false, []error{&InvalidFlagTypeError{Value: ft}}
	}
}

// GetType returns the effective type of the flag (defaults to "string" if not specified)
func (f *Flag) GetType() FlagType {
	if f.Type == "" {
		return FlagTypeString
	}
	return f.Type
}

// Usage returns the flag as it appears in help output, e.g. "-o, --output string".
func (f *Flag) Usage() string {
	s := "--" + f.Name
	if f.Short != "" {
		s = "-" + f.Short + ", " + s
	}
	if t := f.GetType(); t != FlagTypeBool {
		s += " " + string(t)
	}
	return s
}

// validateDefault checks that Default parses as the flag's type.
func (f *Flag) validateDefault() error {
	if f.Default == "" {
		return nil
	}
	if err := validateValueType(f.Default, string(f.GetType())); err != nil {
		return fmt.Errorf("flag '%s' default value '%s' is invalid: %w", f.Name, f.Default, err)
	}
	return nil
}

// validateValueType checks that value parses as typ (string, bool, int, float).
func validateValueType(value, typ string) error {
	switch typ {
	case string(FlagTypeBool):
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("must be true or false")
		}
	case string(FlagTypeInt):
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("must be an integer")
		}
	case string(FlagTypeFloat):
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("must be a number")
		}
	}
	return nil
}
