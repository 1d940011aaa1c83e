// SPDX-License-Identifier: MPL-2.0

// Package tooldef defines the resolved entries of the tool namespace:
// tools, collections and aliases, together with the flag and positional
// argument definitions a tool declares.
//
// Entries are created by the lookup package when a definition file is loaded
// and are immutable afterwards. The Spec types (ToolSpec, CollectionSpec) are
// what a definition file interpreter hands to a registration sink; they carry
// no namespace position or root ownership, which the sink supplies.
package tooldef
