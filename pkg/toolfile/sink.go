// SPDX-License-Identifier: MPL-2.0

package toolfile

import (
	"github.com/invowk/tooltree/pkg/namepath"
	"github.com/invowk/tooltree/pkg/tooldef"
)

// Sink receives the definitions found while evaluating one file.
// Paths are absolute namespace paths. A Sink may reject a registration,
// in which case Evaluate stops and returns that error.
type Sink interface {
	RegisterTool(path namepath.Path, spec tooldef.ToolSpec) error
	RegisterCollection(path namepath.Path, spec tooldef.CollectionSpec) error
	RegisterAlias(path, target namepath.Path, desc string) error
}
