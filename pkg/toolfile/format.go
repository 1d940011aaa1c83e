// SPDX-License-Identifier: MPL-2.0

package toolfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

const (
	// FormatCUE is the preferred definition format.
	FormatCUE Format = "cue"
	// FormatTOML decodes with go-toml.
	FormatTOML Format = "toml"
	// FormatYAML decodes with yaml.v3.
	FormatYAML Format = "yaml"
	// FormatHCL decodes labelled HCL blocks.
	FormatHCL Format = "hcl"
)

// ErrUnknownFormat is returned for files whose extension is not recognized.
var ErrUnknownFormat = errors.New("unknown definition file format")

type (
	// Format identifies a definition file syntax.
	Format string

	extension struct {
		suffix string
		format Format
	}
)

// extensions is in preference order: when a directory holds tools.cue and
// tools.yaml, only tools.cue is used.
var extensions = []extension{
	{".cue", FormatCUE},
	{".toml", FormatTOML},
	{".yaml", FormatYAML},
	{".yml", FormatYAML},
	{".hcl", FormatHCL},
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// FormatOf returns the format implied by path's extension.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if e.suffix == ext {
			return e.format, nil
		}
	}
	return "", fmt.Errorf("%s: %w (expected one of %s)", path, ErrUnknownFormat, strings.Join(Extensions(), ", "))
}

// Extensions returns the recognized file extensions in preference order.
func Extensions() []string {
	out := make([]string, len(extensions))
	for i, e := range extensions {
		out[i] = e.suffix
	}
	return out
}

// Find returns the first regular file named basename+ext in dir, trying
// extensions in preference order. It returns "" when none exists; a missing
// dir is not an error.
func Find(dir, basename string) (string, error) {
	for _, e := range extensions {
		path := filepath.Join(dir, basename+e.suffix)
		info, err := os.Stat(path)
		switch {
		case err == nil && info.Mode().IsRegular():
			return path, nil
		case err == nil, errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
			continue
		default:
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}
	return "", nil
}
