// SPDX-License-Identifier: MPL-2.0

package lookup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/tooltree/pkg/namepath"
)

var (
	// ErrDuplicateDefinition is the sentinel error wrapped by DuplicateDefinitionError.
	ErrDuplicateDefinition = errors.New("duplicate definition")
	// ErrAliasCycle is the sentinel error wrapped by AliasCycleError.
	ErrAliasCycle = errors.New("alias cycle")
	// ErrLoadFailed is the sentinel error wrapped by LoadError.
	ErrLoadFailed = errors.New("failed to load definition file")
	// ErrReentrantLoad is returned when a load is requested while the same
	// load is already in progress.
	ErrReentrantLoad = errors.New("reentrant load")
	// ErrInvalidRoot is returned when registering a root with an empty path
	// or an unknown kind.
	ErrInvalidRoot = errors.New("invalid root")
)

type (
	// DuplicateDefinitionError is returned when a root declares the same
	// path twice. Both sources may be the same file.
	DuplicateDefinitionError struct {
		Root         string
		Path         namepath.Path
		FirstSource  string
		SecondSource string
	}

	// AliasCycleError is returned when following aliases revisits a path.
	// Chain lists the visited paths in order, ending with the repeated one.
	AliasCycleError struct {
		Chain []namepath.Path
	}

	// LoadError is returned when a definition file cannot be evaluated.
	// None of the file's definitions are kept.
	LoadError struct {
		Root  Root
		File  string
		Cause error
	}
)

// Error implements the error interface.
func (e *DuplicateDefinitionError) Error() string {
	if e.FirstSource == e.SecondSource {
		return fmt.Sprintf("'%s' is defined more than once in %s", displayPath(e.Path), e.FirstSource)
	}
	return fmt.Sprintf("'%s' is defined in both %s and %s (root %s)", displayPath(e.Path), e.FirstSource, e.SecondSource, e.Root)
}

// Unwrap returns ErrDuplicateDefinition for errors.Is() compatibility.
func (e *DuplicateDefinitionError) Unwrap() error { return ErrDuplicateDefinition }

// Error implements the error interface.
func (e *AliasCycleError) Error() string {
	parts := make([]string, len(e.Chain))
	for i, p := range e.Chain {
		parts[i] = displayPath(p)
	}
	return "alias cycle: " + strings.Join(parts, " -> ")
}

// Unwrap returns ErrAliasCycle for errors.Is() compatibility.
func (e *AliasCycleError) Unwrap() error { return ErrAliasCycle }

// Error implements the error interface.
func (e *LoadError) Error() string {
	file := e.File
	if file == "" {
		file = e.Root.Path
	}
	return fmt.Sprintf("failed to load %s: %v", file, e.Cause)
}

// Unwrap exposes both ErrLoadFailed and the underlying cause.
func (e *LoadError) Unwrap() []error { return []error{ErrLoadFailed, e.Cause} }

func displayPath(p namepath.Path) string {
	if p.IsRoot() {
		return "(root)"
	}
	return p.String()
}
