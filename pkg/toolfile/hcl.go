// SPDX-License-Identifier: MPL-2.0

package toolfile

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// HCL definition files use labelled blocks instead of name attributes:
//
//	description = "Project tools"
//
//	tool "build" {
//	  description = "Build everything"
//	  run         = "go build ./..."
//	  flag "race" { type = "bool" }
//	  arg "pkg" { required = true }
//	}
//
//	collection "db" {
//	  tool "migrate" {}
//	}
//
//	alias "b" { target = "build" }
type (
	hclBody struct {
		Description     string          `hcl:"description,optional"`
		LongDescription []string        `hcl:"long_description,optional"`
		Tools           []hclTool       `hcl:"tool,block"`
		Collections     []hclCollection `hcl:"collection,block"`
		Aliases         []hclAlias      `hcl:"alias,block"`
		Flags           []hclFlag       `hcl:"flag,block"`
		Args            []hclArg        `hcl:"arg,block"`
		Run             string          `hcl:"run,optional"`
	}

	hclCollection struct {
		Name            string          `hcl:"name,label"`
		Description     string          `hcl:"description,optional"`
		LongDescription []string        `hcl:"long_description,optional"`
		Tools           []hclTool       `hcl:"tool,block"`
		Collections     []hclCollection `hcl:"collection,block"`
		Aliases         []hclAlias      `hcl:"alias,block"`
	}

	hclTool struct {
		Name            string    `hcl:"name,label"`
		Description     string    `hcl:"description,optional"`
		LongDescription []string  `hcl:"long_description,optional"`
		Flags           []hclFlag `hcl:"flag,block"`
		Args            []hclArg  `hcl:"arg,block"`
		Run             string    `hcl:"run,optional"`
	}

	hclFlag struct {
		Name        string `hcl:"name,label"`
		Short       string `hcl:"short,optional"`
		Description string `hcl:"description,optional"`
		Type        string `hcl:"type,optional"`
		Default     string `hcl:"default,optional"`
		Required    bool   `hcl:"required,optional"`
	}

	hclArg struct {
		Name        string `hcl:"name,label"`
		Description string `hcl:"description,optional"`
		Type        string `hcl:"type,optional"`
		Required    bool   `hcl:"required,optional"`
		Default     string `hcl:"default,optional"`
		Variadic    bool   `hcl:"variadic,optional"`
	}

	hclAlias struct {
		Name        string `hcl:"name,label"`
		Target      string `hcl:"target"`
		Description string `hcl:"description,optional"`
	}
)

func decodeHCL(data []byte, filename string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var body hclBody
	if diags := gohcl.DecodeBody(file.Body, nil, &body); diags.HasErrors() {
		return nil, diags
	}

	return &Document{
		Description:     body.Description,
		LongDescription: body.LongDescription,
		Tools:           convertHCLTools(body.Tools),
		Collections:     convertHCLCollections(body.Collections),
		Aliases:         convertHCLAliases(body.Aliases),
		Flags:           convertHCLFlags(body.Flags),
		Args:            convertHCLArgs(body.Args),
		Run:             body.Run,
	}, nil
}

func convertHCLCollections(in []hclCollection) []CollectionDoc {
	if len(in) == 0 {
		return nil
	}
	out := make([]CollectionDoc, len(in))
	for i, c := range in {
		out[i] = CollectionDoc{
			Name:            c.Name,
			Description:     c.Description,
			LongDescription: c.LongDescription,
			Tools:           convertHCLTools(c.Tools),
			Collections:     convertHCLCollections(c.Collections),
			Aliases:         convertHCLAliases(c.Aliases),
		}
	}
	return out
}

func convertHCLTools(in []hclTool) []ToolDoc {
	if len(in) == 0 {
		return nil
	}
	out := make([]ToolDoc, len(in))
	for i, t := range in {
		out[i] = ToolDoc{
			Name:            t.Name,
			Description:     t.Description,
			LongDescription: t.LongDescription,
			Flags:           convertHCLFlags(t.Flags),
			Args:            convertHCLArgs(t.Args),
			Run:             t.Run,
		}
	}
	return out
}

func convertHCLAliases(in []hclAlias) []AliasDoc {
	if len(in) == 0 {
		return nil
	}
	out := make([]AliasDoc, len(in))
	for i, a := range in {
		out[i] = AliasDoc(a)
	}
	return out
}

func convertHCLFlags(in []hclFlag) []FlagDoc {
	var out []FlagDoc
	for _, f := range in {
		out = append(out, FlagDoc(f))
	}
	return out
}

func convertHCLArgs(in []hclArg) []ArgDoc {
	var out []ArgDoc
	for _, a := range in {
		out = append(out, ArgDoc(a))
	}
	return out
}
