package config

import (
	"context"
	"fmt"
	"strings"
)

// MultiLoader runs several format loaders over the same paths and merges
// their models. Each loader only reads the files it understands.
type MultiLoader struct {
	loaders []Loader
}

var _ Loader = (*MultiLoader)(nil)

// NewMultiLoader combines loaders in the given order.
func NewMultiLoader(loaders ...Loader) *MultiLoader {
	return &MultiLoader{loaders: loaders}
}

// Load collects the labels every loader declares before any child
// reference is resolved, so files of one format may reference nodes
// declared in another. Models are merged in loader order.
func (m *MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	type pass struct {
		model *Model
		decl  *Declaration
	}

	passes := make([]pass, 0, len(m.loaders))
	var known []string
	for _, l := range m.loaders {
		if d, ok := l.(Declarer); ok {
			decl, err := d.Declare(ctx, paths...)
			if err != nil {
				return nil, err
			}
			known = append(known, decl.Labels...)
			passes = append(passes, pass{decl: decl})
			continue
		}
		model, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		known = append(known, model.Labels()...)
		passes = append(passes, pass{model: model})
	}

	merged := &Model{}
	for _, p := range passes {
		model := p.model
		if p.decl != nil {
			resolved, err := p.decl.Resolve(ctx, known)
			if err != nil {
				return nil, err
			}
			model = resolved
		}
		if err := merged.Merge(model); err != nil {
			return nil, err
		}
	}
	if len(merged.Sources) == 0 {
		return nil, fmt.Errorf("no maze files (%s) found in %s", strings.Join(m.Extensions(), ", "), strings.Join(paths, ", "))
	}
	return merged, nil
}

func (m *MultiLoader) Extensions() []string {
	var exts []string
	for _, l := range m.loaders {
		exts = append(exts, l.Extensions()...)
	}
	return exts
}
