// Package session defines the core interfaces for creating and managing one
// built maze. It abstracts away how and where the maze is stored.
package session

import (
	"context"

	"github.com/vk/mazewalk/internal/config"
	"github.com/vk/mazewalk/internal/explore"
	"github.com/vk/mazewalk/internal/graph"
	"github.com/vk/mazewalk/internal/nodeid"
)

// SessionFactory creates a Session from a maze model. Different
// implementations can support various storage backends.
type SessionFactory interface {
	NewSession(ctx context.Context, model *config.Model, opts ...explore.Option) (Session, error)
}

// Session is one built maze plus the explorer that walks it. Traversals
// run in a session share its node states until Reset or Close.
type Session interface {
	// ID uniquely identifies the session in logs.
	ID() string

	// Graph returns the session's maze.
	Graph() graph.Graph

	// Explorer returns the explorer bound to the session's maze.
	Explorer() *explore.Explorer

	// Root returns the model's default root.
	Root() nodeid.ID

	// Resolve returns the ID of a labelled node, or the default root for
	// an empty label.
	Resolve(ctx context.Context, label string) (nodeid.ID, error)

	// Close releases any resources held by the session. It accepts a context
	// to allow for graceful cleanup operations.
	Close(ctx context.Context) error
}
