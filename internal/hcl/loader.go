package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/mazewalk/internal/config"
	"github.com/vk/mazewalk/internal/ctxlog"
	"github.com/vk/mazewalk/internal/fsutil"
	"github.com/vk/mazewalk/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL maze loader.
func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// parsedFile pairs a decoded maze file with its path.
type parsedFile struct {
	path string
	root *schema.File
}

var _ config.Declarer = (*Loader)(nil)

// Load parses every .hcl file under paths in two passes: the first decodes
// all blocks and collects the declared labels, the second evaluates child
// expressions against them. Only labels declared in .hcl files are
// visible; config.MultiLoader uses Declare to widen that set.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	decl, err := l.Declare(ctx, paths...)
	if err != nil {
		return nil, err
	}
	return decl.Resolve(ctx, decl.Labels)
}

// Declare runs the first pass: it parses and decodes every .hcl file under
// paths and reports the labels they declare. The returned Resolve
// evaluates child expressions against any set of known labels.
func (l *Loader) Declare(ctx context.Context, paths ...string) (*config.Declaration, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	parsed := make([]parsedFile, 0, len(files))
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.File
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if !diags.HasErrors() {
			for _, br := range root.Branches {
				diags = append(diags, br.DecodeChildren()...)
			}
		}
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		parsed = append(parsed, parsedFile{path: file, root: &root})
	}

	return &config.Declaration{
		Labels: declaredLabels(parsed),
		Resolve: func(ctx context.Context, known []string) (*config.Model, error) {
			return resolve(ctx, parsed, known)
		},
	}, nil
}

// resolve is the second pass: it translates every parsed file, evaluating
// child references against known.
func resolve(ctx context.Context, parsed []parsedFile, known []string) (*config.Model, error) {
	evalCtx := nodeEvalContext(known)

	model := &config.Model{}
	for _, pf := range parsed {
		fileModel, err := translateFile(ctx, pf, evalCtx)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(fileModel); err != nil {
			return nil, fmt.Errorf("in %s: %w", pf.path, err)
		}
	}

	ctxlog.FromContext(ctx).Debug("HCL loading complete.", "files", len(model.Sources), "nodes", len(model.Nodes), "root", model.Root)
	return model, nil
}
