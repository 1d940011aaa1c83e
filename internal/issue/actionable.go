// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError is a user-facing failure: the operation tooltree was
	// attempting, the tool path or file it concerned, hints for the user and
	// the issue page that explains the failure in depth.
	ActionableError struct {
		// Operation is a verb phrase such as "resolve tool".
		Operation string
		// Resource is the tool path, root or file involved, if any.
		Resource string
		// Suggestions are one-line hints printed under the message.
		Suggestions []string
		// Cause is the underlying error.
		Cause error
		// Issue links the failure to its page; zero means none.
		Issue Id
	}

	// ErrorContext accumulates the fields of an ActionableError.
	//
	//	return issue.NewErrorContext().
	//		WithOperation("resolve tool").
	//		WithResource("db migrate").
	//		WithIssue(issue.AliasCycleId).
	//		WithSuggestion("Point one of the aliases at a tool").
	//		Wrap(err).
	//		Err()
	ErrorContext struct {
		err ActionableError
	}
)

// NewErrorContext starts an empty ErrorContext.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error renders "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Page returns the issue page linked to the error, or nil.
func (e *ActionableError) Page() *Issue {
	return Get(e.Issue)
}

// Format renders the message followed by the suggestions as bullets. In
// verbose mode the numbered cause chain is appended.
func (e *ActionableError) Format(verbose bool) string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		sb.WriteString("\n")
		for _, s := range e.Suggestions {
			sb.WriteString("\n  • " + s)
		}
	}

	if !verbose || e.Cause == nil {
		return sb.String()
	}
	sb.WriteString("\n\nError chain:")
	for depth, err := 1, e.Cause; err != nil; depth, err = depth+1, unwrapCause(err) {
		fmt.Fprintf(&sb, "\n  %d. %s", depth, err)
	}
	return sb.String()
}

// unwrapCause steps one level down an error chain. For errors wrapping
// several errors it follows the last one, which by convention is the cause
// behind a leading sentinel.
func unwrapCause(err error) error {
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		errs := multi.Unwrap()
		if len(errs) == 0 {
			return nil
		}
		return errs[len(errs)-1]
	}
	return errors.Unwrap(err)
}

// WithOperation sets the operation, e.g. "list tools".
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.err.Operation = op
	return c
}

// WithResource sets the tool path, root or file involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.err.Resource = res
	return c
}

// WithSuggestion appends hints.
func (c *ErrorContext) WithSuggestion(hints ...string) *ErrorContext {
	c.err.Suggestions = append(c.err.Suggestions, hints...)
	return c
}

// WithIssue links the error to an issue page.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.err.Issue = id
	return c
}

// Wrap sets the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.err.Cause = err
	return c
}

// Build returns the ActionableError, or nil when no operation was set.
func (c *ErrorContext) Build() *ActionableError {
	if c.err.Operation == "" {
		return nil
	}
	built := c.err
	built.Suggestions = append([]string(nil), c.err.Suggestions...)
	return &built
}

// Err is Build returned as an error. It returns a nil interface, not a typed
// nil, when no operation was set.
func (c *ErrorContext) Err() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}
