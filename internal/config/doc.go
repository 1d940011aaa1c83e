// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/tooltree/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/tooltree/config.cue on macOS, %APPDATA%\tooltree\config.cue
// on Windows). It lists the lookup roots (hierarchical paths and single-file config paths),
// the definition file basenames and UI settings. TOOLTREE_* environment variables override
// file values.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
