// SPDX-License-Identifier: MPL-2.0

// Package toolfile interprets tool definition files.
//
// A definition file describes one level of the tool namespace: its own
// description plus any number of tools, nested collections and aliases.
// Four formats are accepted and decode to the same Document:
//
//   - CUE  (.cue)           validated against the embedded toolfile_schema.cue
//   - TOML (.toml)          github.com/pelletier/go-toml/v2
//   - YAML (.yaml, .yml)    gopkg.in/yaml.v3
//   - HCL  (.hcl)           github.com/hashicorp/hcl/v2 labelled blocks
//
// The Interpreter never keeps state between files. Evaluate decodes one file
// and reports every definition it contains to a Sink; it is the only way the
// lookup engine learns about file content.
package toolfile
