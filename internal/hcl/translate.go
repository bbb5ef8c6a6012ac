// This file contains the logic for translating HCL schema structs into the
// format-agnostic maze model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/mazewalk/internal/config"
	"github.com/vk/mazewalk/internal/ctxlog"
)

// nodeVariable is the name under which declared labels are visible to
// child expressions: node["3"].
const nodeVariable = "node"

// declaredLabels lists the labels of every leaf and branch across files.
func declaredLabels(files []parsedFile) []string {
	var labels []string
	for _, pf := range files {
		for _, lf := range pf.root.Leaves {
			labels = append(labels, lf.Label)
		}
		for _, br := range pf.root.Branches {
			labels = append(labels, br.Label)
		}
	}
	return labels
}

// nodeEvalContext exposes every known label as an attribute of the `node`
// object. Each attribute evaluates to its own label.
func nodeEvalContext(known []string) *hcl.EvalContext {
	labels := make(map[string]cty.Value, len(known))
	for _, label := range known {
		labels[label] = cty.StringVal(label)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			nodeVariable: cty.ObjectVal(labels),
		},
	}
}

// translateFile converts one decoded file into a partial model.
func translateFile(ctx context.Context, pf parsedFile, evalCtx *hcl.EvalContext) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	m := &config.Model{Sources: []string{pf.path}}

	if pf.root.Maze != nil {
		m.Root = pf.root.Maze.Root
	}
	for _, lf := range pf.root.Leaves {
		m.Nodes = append(m.Nodes, &config.NodeDef{
			Label:  lf.Label,
			Kind:   "leaf",
			Source: pf.path,
		})
	}
	for _, br := range pf.root.Branches {
		left, err := evalChild(br.Left, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("in branch '%s' (%s), left: %w", br.Label, pf.path, err)
		}
		right, err := evalChild(br.Right, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("in branch '%s' (%s), right: %w", br.Label, pf.path, err)
		}
		m.Nodes = append(m.Nodes, &config.NodeDef{
			Label:  br.Label,
			Kind:   "branch",
			Left:   left,
			Right:  right,
			Source: pf.path,
		})
	}

	logger.Debug("Translated HCL file.", "file", pf.path, "leaves", len(pf.root.Leaves), "branches", len(pf.root.Branches))
	return m, nil
}

// evalChild evaluates a child expression to the label it references.
func evalChild(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() {
		return "", fmt.Errorf("child reference must not be null")
	}

	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("cannot convert %s to a label: %w", val.Type().FriendlyName(), err)
	}

	var label string
	if err := gocty.FromCtyValue(converted, &label); err != nil {
		return "", err
	}
	return label, nil
}
