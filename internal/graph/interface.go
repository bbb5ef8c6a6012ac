package graph

import (
	"context"
	"errors"

	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
	"github.com/vk/mazewalk/internal/nodestore"
)

var (
	// ErrNodeNotFound is returned when an ID or label is not in the topology.
	ErrNodeNotFound = errors.New("node not found")
	// ErrStateless is returned when a state write targets a leaf.
	ErrStateless = errors.New("leaf nodes carry no state")
)

// Graph is a unified interface for interacting with a maze, combining
// static topology queries with visitation state updates.
//
// # Thread-Safety
//
// Implementations MUST be thread-safe.
type Graph interface {
	// Node retrieves a node by ID.
	Node(ctx context.Context, id nodeid.ID) (*node.Node, bool)

	// Lookup retrieves a node by label.
	Lookup(ctx context.Context, label string) (*node.Node, bool)

	// AllNodes returns every node in ID order.
	AllNodes(ctx context.Context) []*node.Node

	// Children returns the left and right child of a branch.
	//
	// Returns ErrNodeNotFound for unknown IDs and for branches whose
	// children were never linked. Leaves have no children: both results
	// are nil with a nil error.
	Children(ctx context.Context, id nodeid.ID) (left, right *node.Node, err error)

	// State returns the visitation state of a branch. Leaves always report
	// Unexplored.
	State(ctx context.Context, id nodeid.ID) (node.State, error)

	// Transition atomically applies fn to a branch's state.
	//
	// The whole read-modify-write runs under that node's exclusive lock,
	// so two transitions of one node never interleave. Returns
	// ErrStateless for leaves.
	Transition(ctx context.Context, id nodeid.ID, fn nodestore.TransitionFunc) (from, to node.State, err error)

	// Reset returns every branch to Unexplored without walking the maze.
	Reset(ctx context.Context) error

	// View projects a node into its reporting view.
	View(ctx context.Context, id nodeid.ID) (node.View, error)
}
