// SPDX-License-Identifier: MPL-2.0

// Package namepath defines the Path value type that identifies a tool,
// collection, or alias in the command namespace.
//
// A Path is an ordered list of non-empty segments. The empty Path is the
// namespace root. Paths are compared structurally; Key returns a stable
// string form suitable for map keys.
package namepath

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// keySeparator joins segments in Key. It cannot appear in a valid segment.
const keySeparator = "\x00"

var (
	// ErrInvalidSegment is the sentinel error wrapped by InvalidSegmentError.
	ErrInvalidSegment = errors.New("invalid name segment")

	segmentPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
)

type (
	// Path is an ordered sequence of namespace segments.
	Path []string

	// InvalidSegmentError is returned when a segment is empty or contains
	// characters outside [A-Za-z0-9_-].
	InvalidSegmentError struct {
		Segment string
		Index   int
	}
)

// Error implements the error interface.
func (e *InvalidSegmentError) Error() string {
	return fmt.Sprintf("invalid name segment %q at position %d (must start with a letter or digit and contain only letters, digits, '-' or '_')", e.Segment, e.Index)
}

// Unwrap returns ErrInvalidSegment for errors.Is() compatibility.
func (e *InvalidSegmentError) Unwrap() error { return ErrInvalidSegment }

// New returns a Path built from the given segments.
func New(segments ...string) Path {
	if len(segments) == 0 {
		return Path{}
	}
	return Path(append([]string(nil), segments...))
}

// Parse splits s on dots and whitespace. Empty fields are dropped, so
// "a.b c" and " a b  c " both yield [a b c].
func Parse(s string) Path {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == ' ' || r == '\t' || r == '\n'
	})
	return New(fields...)
}

// FromWords parses each word with Parse and concatenates the results.
// It accepts both ["db", "migrate"] and ["db.migrate"].
func FromWords(words []string) Path {
	p := Path{}
	for _, w := range words {
		p = append(p, Parse(w)...)
	}
	return p
}

// Validate reports the first invalid segment, if any.
func (p Path) Validate() error {
	for i, seg := range p {
		if !segmentPattern.MatchString(seg) {
			return &InvalidSegmentError{Segment: seg, Index: i}
		}
	}
	return nil
}

// IsRoot reports whether p is the empty namespace root.
func (p Path) IsRoot() bool { return len(p) == 0 }

// Len returns the number of segments.
func (p Path) Len() int { return len(p) }

// Equal reports structural equality.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is a (not necessarily proper) prefix of p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	return p[:len(prefix)].Equal(prefix)
}

// Prefix returns a copy of the first k segments. k is clamped to [0, Len].
func (p Path) Prefix(k int) Path {
	k = max(0, min(k, len(p)))
	return New(p[:k]...)
}

// Parent returns the path without its last segment. The root is its own parent.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return p.Prefix(len(p) - 1)
}

// Child returns a new path with segs appended. p is never modified.
func (p Path) Child(segs ...string) Path {
	out := make(Path, 0, len(p)+len(segs))
	out = append(out, p...)
	return append(out, segs...)
}

// Name returns the last segment, or "" for the root.
func (p Path) Name() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Key returns a string that uniquely identifies p, for use as a map key.
func (p Path) Key() string {
	return strings.Join(p, keySeparator)
}

// FromKey is the inverse of Key.
func FromKey(key string) Path {
	if key == "" {
		return Path{}
	}
	return New(strings.Split(key, keySeparator)...)
}

// String returns the space-separated form used on the command line.
func (p Path) String() string {
	return strings.Join(p, " ")
}

// Dotted returns the dot-separated form used in listings.
func (p Path) Dotted() string {
	return strings.Join(p, ".")
}

// Compare orders paths segment by segment, shorter paths first on ties.
func Compare(a, b Path) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}
