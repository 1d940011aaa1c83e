// SPDX-License-Identifier: MPL-2.0

package toolfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/tooltree/pkg/namepath"

	"mvdan.cc/sh/v3/shell"
)

// ErrInvalidAliasTarget is returned for empty or malformed alias targets.
var ErrInvalidAliasTarget = errors.New("invalid alias target")

// ParseAliasTarget splits target into words using POSIX shell quoting rules
// and resolves it against the collection the alias is declared in. A leading
// "/" makes the target absolute. Words may also be dotted ("db.migrate").
// Parameter expansion is disabled: "$x" expands to nothing.
func ParseAliasTarget(target string, parent namepath.Path) (namepath.Path, error) {
	words, err := shell.Fields(target, func(string) string { return "" })
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidAliasTarget, target, err)
	}

	absolute := false
	if len(words) > 0 && strings.HasPrefix(words[0], "/") {
		absolute = true
		words[0] = strings.TrimPrefix(words[0], "/")
	}

	rel := namepath.FromWords(words)
	if rel.IsRoot() {
		return nil, fmt.Errorf("%w %q: no words", ErrInvalidAliasTarget, target)
	}
	if err := rel.Validate(); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidAliasTarget, target, err)
	}

	if absolute {
		return rel, nil
	}
	return parent.Child(rel...), nil
}
