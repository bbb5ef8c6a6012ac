// Package yamlconfig provides the YAML implementation of config.Loader.
//
//	root: "0"
//	nodes:
//	  - label: "2"
//	  - label: "3"
//	    left: "4"
//	    right: "5"
package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/mazewalk/internal/config"
	"github.com/vk/mazewalk/internal/ctxlog"
	"github.com/vk/mazewalk/internal/fsutil"
)

// File is the document structure of one YAML maze file.
type File struct {
	Root  string `yaml:"root,omitempty"`
	Nodes []Node `yaml:"nodes"`
}

// Node is one entry of the `nodes` list.
type Node struct {
	Label string `yaml:"label"`
	Kind  string `yaml:"kind,omitempty"`
	Left  string `yaml:"left,omitempty"`
	Right string `yaml:"right,omitempty"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new YAML maze loader.
func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
		}
		f, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
		}
		if err := model.Merge(f.toModel(path)); err != nil {
			return nil, fmt.Errorf("in %s: %w", path, err)
		}
	}

	logger.Debug("YAML loading complete.", "files", len(model.Sources), "nodes", len(model.Nodes), "root", model.Root)
	return model, nil
}

// Decode parses one YAML maze document. Unknown keys are rejected; an empty
// document yields an empty file.
func Decode(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &f, nil
}

// Encode renders a model as a YAML maze document.
func Encode(m *config.Model) ([]byte, error) {
	f := File{Root: m.Root}
	for _, d := range m.Nodes {
		f.Nodes = append(f.Nodes, Node{Label: d.Label, Kind: d.Kind, Left: d.Left, Right: d.Right})
	}
	return yaml.Marshal(&f)
}

func (f *File) toModel(source string) *config.Model {
	m := &config.Model{Root: f.Root, Sources: []string{source}}
	for _, n := range f.Nodes {
		m.Nodes = append(m.Nodes, &config.NodeDef{
			Label:  n.Label,
			Kind:   n.Kind,
			Left:   n.Left,
			Right:  n.Right,
			Source: source,
		})
	}
	return m
}
