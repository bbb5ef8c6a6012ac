// Package topologystore defines the interface for storing and retrieving the
// static structure of a maze: its nodes and the two child references of
// every branch.
//
// # Separation From State
//
// The topology store holds the **immutable maze structure** (labels, kinds,
// child references). The **mutable visitation state** of each branch lives
// in nodestore, keyed by the same nodeid.ID. The topology therefore needs no
// locking during traversal beyond what its own implementation uses for
// reads.
//
// # Lifecycle and Usage
//
// The topology store is:
//  1. **Created** once per session
//  2. **Populated** by the builder: AddNode for every definition, then Link
//     for every branch once all children exist
//  3. **Read-only** during traversal (explorers call Node and Lookup)
//  4. **Discarded** when the session ends
//
// Nodes persist across any number of explore/unexplore passes.
package topologystore

import (
	"context"

	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
)

// Store is the interface for managing the static topology of a maze.
//
// # Thread-Safety Requirements
//
// Implementations MUST be safe for concurrent use.
//
// # Typical Implementation
//
// See internal/inmemorytopology for the reference arena implementation.
type Store interface {
	// AddNode registers a new node and returns its freshly assigned ID.
	//
	// Branches are created unlinked; call Link once both children exist.
	// Returns an error if the label is invalid or already taken.
	AddNode(ctx context.Context, label string, kind node.Kind) (nodeid.ID, error)

	// Link sets the children of a branch.
	//
	// Returns an error if parent is not an unlinked branch, or if either
	// child does not exist. A node may be the child of any number of
	// parents; that is how shared subtrees are expressed.
	Link(ctx context.Context, parent, left, right nodeid.ID) error

	// Node retrieves a node by ID.
	Node(ctx context.Context, id nodeid.ID) (*node.Node, bool)

	// Lookup retrieves a node by label.
	Lookup(ctx context.Context, label string) (*node.Node, bool)

	// AllNodes returns every node in ID order.
	AllNodes(ctx context.Context) []*node.Node

	// Len returns the number of nodes.
	Len(ctx context.Context) int
}
