// SPDX-License-Identifier: MPL-2.0

// Package lookup resolves command paths to tool definitions across a
// prioritized list of filesystem roots, loading definition files lazily.
//
// Precedence is decided per namespace path, not per root: a higher-priority
// root that leaves a path undefined lets a lower-priority root supply it,
// while any path the higher-priority root does define hides every lower
// definition of that same path. Entries from different roots are never merged.
//
// File organization:
//   - roots.go: Root, RootKind and the ordered Registry
//   - translate.go: mapping a namespace path to the load actions that may define it
//   - cache.go: the lazily populated (root, path) entry store and its load states
//   - sink.go: staged registrations, committed atomically per loaded file
//   - resolver.go: Lookup, ToolDefined, ListSubtools, Suggest
//   - errors.go: sentinel and typed errors
//
// A Resolver is single-threaded. Concurrent read-only use is safe only after
// every root is registered and no load is in flight.
package lookup
