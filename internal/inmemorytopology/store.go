package inmemorytopology

import (
	"context"
	"fmt"
	"sync"

	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
	"github.com/vk/mazewalk/internal/topologystore"
)

// Store is an arena of nodes addressed by their dense IDs.
type Store struct {
	mu      sync.RWMutex
	nodes   []*node.Node
	byLabel map[string]nodeid.ID
}

// New creates an empty arena.
func New() topologystore.Store {
	return &Store{
		byLabel: make(map[string]nodeid.ID),
	}
}

func (s *Store) AddNode(ctx context.Context, label string, kind node.Kind) (nodeid.ID, error) {
	if err := nodeid.ValidateLabel(label); err != nil {
		return nodeid.None, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byLabel[label]; exists {
		return nodeid.None, fmt.Errorf("node '%s' already exists in topology", label)
	}
	if uint64(len(s.nodes)) >= uint64(nodeid.None) {
		return nodeid.None, fmt.Errorf("topology is full")
	}

	id := nodeid.ID(len(s.nodes))
	var n *node.Node
	switch kind {
	case node.Leaf:
		n = node.NewLeaf(id, label)
	case node.Branch:
		n = node.NewBranch(id, label, nodeid.None, nodeid.None)
	default:
		return nodeid.None, fmt.Errorf("node '%s' has unknown kind %d", label, kind)
	}

	s.nodes = append(s.nodes, n)
	s.byLabel[label] = id
	return id, nil
}

func (s *Store) Link(ctx context.Context, parent, left, right nodeid.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.get(parent)
	if !ok {
		return fmt.Errorf("parent node '%s' not found in topology", parent)
	}
	if !p.IsBranch() {
		return fmt.Errorf("node '%s' is a leaf and cannot have children", p.Label)
	}
	if p.Linked() {
		return fmt.Errorf("branch '%s' is already linked", p.Label)
	}
	if _, ok := s.get(left); !ok {
		return fmt.Errorf("left child '%s' of '%s' not found in topology", left, p.Label)
	}
	if _, ok := s.get(right); !ok {
		return fmt.Errorf("right child '%s' of '%s' not found in topology", right, p.Label)
	}

	// Replace, don't mutate: callers may still hold the unlinked value.
	linked := node.NewBranch(p.ID, p.Label, left, right)
	s.nodes[parent.Index()] = linked
	return nil
}

func (s *Store) Node(ctx context.Context, id nodeid.ID) (*node.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(id)
}

func (s *Store) Lookup(ctx context.Context, label string) (*node.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byLabel[label]
	if !ok {
		return nil, false
	}
	return s.nodes[id.Index()], true
}

func (s *Store) AllNodes(ctx context.Context) []*node.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]*node.Node, len(s.nodes))
	copy(nodes, s.nodes)
	return nodes
}

func (s *Store) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// get must be called with s.mu held.
func (s *Store) get(id nodeid.ID) (*node.Node, bool) {
	if id == nodeid.None || id.Index() >= len(s.nodes) {
		return nil, false
	}
	return s.nodes[id.Index()], true
}
