package config

import (
	"fmt"

	"github.com/vk/mazewalk/internal/node"
)

// Model is the unified, format-agnostic representation of a maze.
type Model struct {
	// Root is the label traversals start from unless overridden.
	Root string `validate:"required,label"`
	// Nodes holds every definition in file order.
	Nodes []*NodeDef `validate:"required,min=1,dive,required"`

	// Sources lists the files the model was loaded from.
	Sources []string `validate:"-"`
}

// NodeDef is the format-agnostic representation of one `leaf` or `branch`
// definition.
type NodeDef struct {
	Label string `validate:"required,label"`
	// Kind is "leaf", "branch" or empty. When empty it is implied by the
	// presence of children.
	Kind  string `validate:"omitempty,oneof=leaf branch"`
	Left  string `validate:"omitempty,label"`
	Right string `validate:"omitempty,label"`

	// Source names the file the definition came from.
	Source string `validate:"-"`
}

// ResolvedKind returns the definition's node kind.
func (d *NodeDef) ResolvedKind() node.Kind {
	switch d.Kind {
	case "branch":
		return node.Branch
	case "leaf":
		return node.Leaf
	}
	if d.Left != "" || d.Right != "" {
		return node.Branch
	}
	return node.Leaf
}

// Where renders the definition's position for error messages.
func (d *NodeDef) Where() string {
	if d.Source == "" {
		return fmt.Sprintf("'%s'", d.Label)
	}
	return fmt.Sprintf("'%s' (%s)", d.Label, d.Source)
}

// Merge folds other into m. Nodes are appended in order; duplicate labels
// are left for the builder to report. Two different roots conflict.
func (m *Model) Merge(other *Model) error {
	if other == nil {
		return nil
	}
	if other.Root != "" {
		if m.Root != "" && m.Root != other.Root {
			return fmt.Errorf("conflicting maze roots '%s' and '%s'", m.Root, other.Root)
		}
		m.Root = other.Root
	}
	m.Nodes = append(m.Nodes, other.Nodes...)
	m.Sources = append(m.Sources, other.Sources...)
	return nil
}

// Labels returns every defined label in definition order.
func (m *Model) Labels() []string {
	labels := make([]string, 0, len(m.Nodes))
	for _, d := range m.Nodes {
		labels = append(labels, d.Label)
	}
	return labels
}
