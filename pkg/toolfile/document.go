// SPDX-License-Identifier: MPL-2.0

package toolfile

type (
	// Document is the decoded form of one definition file. A document that
	// sets run, flags or args declares a tool at its own path; any other
	// document declares a collection.
	Document struct {
		Description     string          `json:"description,omitempty" toml:"description" yaml:"description"`
		LongDescription []string        `json:"long_description,omitempty" toml:"long_description" yaml:"long_description"`
		Tools           []ToolDoc       `json:"tools,omitempty" toml:"tools" yaml:"tools"`
		Collections     []CollectionDoc `json:"collections,omitempty" toml:"collections" yaml:"collections"`
		Aliases         []AliasDoc      `json:"aliases,omitempty" toml:"aliases" yaml:"aliases"`
		Flags           []FlagDoc       `json:"flags,omitempty" toml:"flags" yaml:"flags"`
		Args            []ArgDoc        `json:"args,omitempty" toml:"args" yaml:"args"`
		Run             string          `json:"run,omitempty" toml:"run" yaml:"run"`
	}

	// CollectionDoc is a nested namespace declared inline.
	CollectionDoc struct {
		Name            string          `json:"name" toml:"name" yaml:"name"`
		Description     string          `json:"description,omitempty" toml:"description" yaml:"description"`
		LongDescription []string        `json:"long_description,omitempty" toml:"long_description" yaml:"long_description"`
		Tools           []ToolDoc       `json:"tools,omitempty" toml:"tools" yaml:"tools"`
		Collections     []CollectionDoc `json:"collections,omitempty" toml:"collections" yaml:"collections"`
		Aliases         []AliasDoc      `json:"aliases,omitempty" toml:"aliases" yaml:"aliases"`
	}

	// ToolDoc declares one tool.
	ToolDoc struct {
		Name            string    `json:"name" toml:"name" yaml:"name"`
		Description     string    `json:"description,omitempty" toml:"description" yaml:"description"`
		LongDescription []string  `json:"long_description,omitempty" toml:"long_description" yaml:"long_description"`
		Flags           []FlagDoc `json:"flags,omitempty" toml:"flags" yaml:"flags"`
		Args            []ArgDoc  `json:"args,omitempty" toml:"args" yaml:"args"`
		Run             string    `json:"run,omitempty" toml:"run" yaml:"run"`
	}

	// FlagDoc declares a tool flag.
	FlagDoc struct {
		Name        string `json:"name" toml:"name" yaml:"name"`
		Short       string `json:"short,omitempty" toml:"short" yaml:"short"`
		Description string `json:"description,omitempty" toml:"description" yaml:"description"`
		Type        string `json:"type,omitempty" toml:"type" yaml:"type"`
		Default     string `json:"default,omitempty" toml:"default" yaml:"default"`
		Required    bool   `json:"required,omitempty" toml:"required" yaml:"required"`
	}

	// ArgDoc declares a positional argument.
	ArgDoc struct {
		Name        string `json:"name" toml:"name" yaml:"name"`
		Description string `json:"description,omitempty" toml:"description" yaml:"description"`
		Type        string `json:"type,omitempty" toml:"type" yaml:"type"`
		Required    bool   `json:"required,omitempty" toml:"required" yaml:"required"`
		Default     string `json:"default,omitempty" toml:"default" yaml:"default"`
		Variadic    bool   `json:"variadic,omitempty" toml:"variadic" yaml:"variadic"`
	}

	// AliasDoc declares an alias. Target is a shell-quoted word list,
	// relative to the enclosing collection unless it starts with "/".
	AliasDoc struct {
		Name        string `json:"name" toml:"name" yaml:"name"`
		Target      string `json:"target" toml:"target" yaml:"target"`
		Description string `json:"description,omitempty" toml:"description" yaml:"description"`
	}
)

// IsTool reports whether the document declares a tool rather than a collection.
func (d *Document) IsTool() bool {
	return d.Run != "" || len(d.Flags) > 0 || len(d.Args) > 0
}

// tool returns the document as a tool declaration named name.
func (d *Document) tool(name string) ToolDoc {
	return ToolDoc{
		Name:            name,
		Description:     d.Description,
		LongDescription: d.LongDescription,
		Flags:           d.Flags,
		Args:            d.Args,
		Run:             d.Run,
	}
}

// body returns the document as a root-level collection with no name.
func (d *Document) body() CollectionDoc {
	return CollectionDoc{
		Description:     d.Description,
		LongDescription: d.LongDescription,
		Tools:           d.Tools,
		Collections:     d.Collections,
		Aliases:         d.Aliases,
	}
}
