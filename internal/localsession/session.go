// Package localsession provides a concrete implementation of the
// session.Session and session.SessionFactory interfaces backed by the
// in-memory stores.
package localsession

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vk/mazewalk/internal/builder"
	"github.com/vk/mazewalk/internal/config"
	"github.com/vk/mazewalk/internal/ctxlog"
	"github.com/vk/mazewalk/internal/explore"
	"github.com/vk/mazewalk/internal/graph"
	"github.com/vk/mazewalk/internal/inmemorystore"
	"github.com/vk/mazewalk/internal/inmemorytopology"
	"github.com/vk/mazewalk/internal/nodeid"
	"github.com/vk/mazewalk/internal/session"
)

// SessionFactory implements session.SessionFactory for local runs.
type SessionFactory struct{}

var _ session.SessionFactory = (*SessionFactory)(nil)

// NewSession builds the model into fresh in-memory stores.
func (f *SessionFactory) NewSession(ctx context.Context, model *config.Model, opts ...explore.Option) (session.Session, error) {
	id := uuid.NewString()
	logger := ctxlog.FromContext(ctx).With("session_id", id)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("localsession.SessionFactory.NewSession called")

	// --- This is where the dependency injection wiring happens ---
	topoStore := inmemorytopology.New()
	root, err := builder.Build(ctx, model, topoStore)
	if err != nil {
		return nil, fmt.Errorf("failed to build maze: %w", err)
	}
	nodeStore := inmemorystore.New()
	g := graph.New(topoStore, nodeStore)
	x := explore.New(g, opts...)
	// --- End of dependency injection ---

	logger.Info("Session ready.", "nodes", topoStore.Len(ctx), "root", model.Root)
	return &Session{
		id:       id,
		graph:    g,
		explorer: x,
		root:     root,
	}, nil
}

// Session implements session.Session for local runs.
type Session struct {
	id       string
	graph    graph.Graph
	explorer *explore.Explorer
	root     nodeid.ID
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Graph() graph.Graph {
	return s.graph
}

func (s *Session) Explorer() *explore.Explorer {
	return s.explorer
}

func (s *Session) Root() nodeid.ID {
	return s.root
}

func (s *Session) Resolve(ctx context.Context, label string) (nodeid.ID, error) {
	if label == "" {
		return s.root, nil
	}
	n, ok := s.graph.Lookup(ctx, label)
	if !ok {
		return nodeid.None, fmt.Errorf("%w: no node labelled '%s'", graph.ErrNodeNotFound, label)
	}
	return n.ID, nil
}

// Close returns every node to Unexplored so the stores hold no run state.
func (s *Session) Close(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("localsession.Session.Close called", "session_id", s.id)
	return s.graph.Reset(ctx)
}
