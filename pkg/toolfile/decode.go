// SPDX-License-Identifier: MPL-2.0

package toolfile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/invowk/tooltree/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed toolfile_schema.cue
	toolfileSchema string

	schemaOnce sync.Once
	schema     *cueutil.Schema
)

// cueSchema compiles the embedded schema on first use.
func cueSchema() *cueutil.Schema {
	schemaOnce.Do(func() {
		schema = cueutil.MustSchema(toolfileSchema, "#Toolfile")
	})
	return schema
}

// Decode parses data in the given format. filename is used in error messages.
func Decode(data []byte, format Format, filename string) (*Document, error) {
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, filename); err != nil {
		return nil, err
	}

	var (
		doc Document
		err error
	)
	switch format {
	case FormatCUE:
		err = cueSchema().Decode(data, &doc, cueutil.WithFilename(filename))
	case FormatTOML:
		err = decodeTOML(data, &doc)
	case FormatYAML:
		err = decodeYAML(data, &doc)
	case FormatHCL:
		var d *Document
		d, err = decodeHCL(data, filename)
		if d != nil {
			doc = *d
		}
	default:
		return nil, fmt.Errorf("%s: %w %q", filename, ErrUnknownFormat, format)
	}
	if err != nil {
		if format == FormatCUE {
			// already prefixed with the file name by cueutil.FormatError
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &doc, nil
}

func decodeTOML(data []byte, doc *Document) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return fmt.Errorf("%w:\n%s", err, serr.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return err
	}
	return nil
}

func decodeYAML(data []byte, doc *Document) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
