// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// Definition files and the configuration file both follow the same flow:
//
//  1. Compile the embedded schema (once, see NewSchema)
//  2. Compile user data and unify with the schema definition
//  3. Validate and decode to a Go value
//
// # Usage
//
//	//go:embed toolfile_schema.cue
//	var schemaSrc string
//
//	schema, err := cueutil.NewSchema(schemaSrc, "#Toolfile")
//	...
//	var doc Document
//	if err := schema.Decode(data, &doc, cueutil.WithFilename(path)); err != nil {
//	    return err // error text includes the CUE path of the bad field
//	}
package cueutil
