// Package nodestore defines the interface for storing and mutating the
// visitation state of maze branches.
//
// # One Cell Per Node
//
// Every branch has exactly one logical state cell, keyed by its
// nodeid.ID. All parents that reference a shared branch therefore observe
// and mutate the same cell, regardless of which path reaches it first.
//
// # Lifecycle and Usage
//
// The node store is:
//  1. **Created** once per session; every ID implicitly starts Unexplored
//  2. **Mutated** by traversal operations through Update
//  3. **Queried** by reporting code through Get
//  4. **Cleared** or discarded when the session ends
//
// # State Transitions
//
// Two-state passes:   Unexplored → Explored
// Two-phase passes:   Unexplored → PartiallyExplored → Explored
// Reset passes:       any → Unexplored
//
// The store itself does not enforce these edges; the transition function
// passed to Update does.
package nodestore

import (
	"context"

	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
)

// TransitionFunc computes a node's next state from its current one.
type TransitionFunc func(current node.State) node.State

// Store is the interface for managing branch visitation state.
//
// # Thread-Safety Requirements
//
// Implementations MUST be safe for concurrent use, and Update MUST hold the
// node's cell exclusively for the whole read-modify-write: two Update calls
// on the same ID never interleave, while Update calls on distinct IDs may
// run in parallel.
//
// # Typical Implementation
//
// See internal/inmemorystore for the reference in-memory implementation.
type Store interface {
	// Get returns the current state of a node. Unknown IDs are Unexplored.
	Get(ctx context.Context, id nodeid.ID) (node.State, error)

	// Update atomically applies fn to the node's state and stores the
	// result, returning the state before and after.
	Update(ctx context.Context, id nodeid.ID, fn TransitionFunc) (from, to node.State, err error)

	// Clear returns every node to Unexplored.
	Clear(ctx context.Context) error
}
