// Package schema holds the HCL block structures of a maze file. They are
// decoded with gohcl and translated into the format-agnostic config model by
// the hcl package.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Maze represents the `maze` block, which names the default root. At most
// one maze block may appear across all loaded files.
type Maze struct {
	Root string `hcl:"root"`
}

// Leaf represents a `leaf` block. Leaves take no arguments.
//
//	leaf "2" {}
type Leaf struct {
	Label string `hcl:"label,label"`
}

// Branch represents a `branch` block. Its children are expressions so that
// they can be written either as plain strings or as `node["label"]`
// references checked against the declared labels.
//
//	branch "3" {
//	  left  = node["4"]
//	  right = "5"
//	}
//
// gohcl treats expression fields as optional, so the children are read
// from the remaining body by DecodeChildren, which reports a missing child
// as a "Missing required argument" diagnostic.
type Branch struct {
	Label string   `hcl:"label,label"`
	Body  hcl.Body `hcl:",remain"`

	Left  hcl.Expression
	Right hcl.Expression
}

var branchChildrenSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "left", Required: true},
		{Name: "right", Required: true},
	},
}

// DecodeChildren extracts the left and right expressions from the
// branch body. Unknown arguments and blocks are errors.
func (b *Branch) DecodeChildren() hcl.Diagnostics {
	content, diags := b.Body.Content(branchChildrenSchema)
	if diags.HasErrors() {
		return diags
	}
	b.Left = content.Attributes["left"].Expr
	b.Right = content.Attributes["right"].Expr
	return diags
}

// File represents the top-level structure of one maze file.
type File struct {
	Maze     *Maze     `hcl:"maze,block"`
	Leaves   []*Leaf   `hcl:"leaf,block"`
	Branches []*Branch `hcl:"branch,block"`
}
