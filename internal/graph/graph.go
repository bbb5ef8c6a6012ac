package graph

import (
	"context"
	"fmt"

	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
	"github.com/vk/mazewalk/internal/nodestore"
	"github.com/vk/mazewalk/internal/topologystore"
)

// Manager provides a high-level, thread-safe interface to a maze by
// composing the topology and node-state stores.
type Manager struct {
	topology topologystore.Store
	states   nodestore.Store
}

// New creates a new graph manager.
func New(ts topologystore.Store, ns nodestore.Store) Graph {
	return &Manager{
		topology: ts,
		states:   ns,
	}
}

func (m *Manager) Node(ctx context.Context, id nodeid.ID) (*node.Node, bool) {
	return m.topology.Node(ctx, id)
}

func (m *Manager) Lookup(ctx context.Context, label string) (*node.Node, bool) {
	return m.topology.Lookup(ctx, label)
}

func (m *Manager) AllNodes(ctx context.Context) []*node.Node {
	return m.topology.AllNodes(ctx)
}

func (m *Manager) Children(ctx context.Context, id nodeid.ID) (*node.Node, *node.Node, error) {
	n, ok := m.topology.Node(ctx, id)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	if !n.IsBranch() {
		return nil, nil, nil
	}
	if !n.Linked() {
		return nil, nil, fmt.Errorf("%w: branch '%s' has no children", ErrNodeNotFound, n.Label)
	}

	left, ok := m.topology.Node(ctx, n.Left)
	if !ok {
		return nil, nil, fmt.Errorf("%w: left child %s of '%s'", ErrNodeNotFound, n.Left, n.Label)
	}
	right, ok := m.topology.Node(ctx, n.Right)
	if !ok {
		return nil, nil, fmt.Errorf("%w: right child %s of '%s'", ErrNodeNotFound, n.Right, n.Label)
	}
	return left, right, nil
}

func (m *Manager) State(ctx context.Context, id nodeid.ID) (node.State, error) {
	n, ok := m.topology.Node(ctx, id)
	if !ok {
		return node.Unexplored, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	if !n.IsBranch() {
		return node.Unexplored, nil
	}
	return m.states.Get(ctx, id)
}

func (m *Manager) Transition(ctx context.Context, id nodeid.ID, fn nodestore.TransitionFunc) (node.State, node.State, error) {
	n, ok := m.topology.Node(ctx, id)
	if !ok {
		return node.Unexplored, node.Unexplored, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	if !n.IsBranch() {
		return node.Unexplored, node.Unexplored, fmt.Errorf("%w: '%s'", ErrStateless, n.Label)
	}
	return m.states.Update(ctx, id, fn)
}

func (m *Manager) Reset(ctx context.Context) error {
	return m.states.Clear(ctx)
}

func (m *Manager) View(ctx context.Context, id nodeid.ID) (node.View, error) {
	n, ok := m.topology.Node(ctx, id)
	if !ok {
		return node.View{}, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}

	v := node.View{Label: n.Label, Kind: n.Kind}
	if !n.IsBranch() {
		return v, nil
	}

	state, err := m.states.Get(ctx, id)
	if err != nil {
		return node.View{}, err
	}
	v.State = state

	left, right, err := m.Children(ctx, id)
	if err != nil {
		return node.View{}, err
	}
	v.Children = []string{left.Label, right.Label}
	return v, nil
}
