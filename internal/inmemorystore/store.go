package inmemorystore

import (
	"context"
	"sync"

	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
	"github.com/vk/mazewalk/internal/nodestore"
)

// cell is one node's state, guarded by its own lock.
type cell struct {
	mu    sync.Mutex
	state node.State
}

type Store struct {
	cells sync.Map // Key: nodeid.ID, Value: *cell
}

func New() nodestore.Store {
	return &Store{}
}

func (s *Store) cell(id nodeid.ID) *cell {
	if c, ok := s.cells.Load(id); ok {
		return c.(*cell)
	}
	c, _ := s.cells.LoadOrStore(id, &cell{})
	return c.(*cell)
}

func (s *Store) Get(ctx context.Context, id nodeid.ID) (node.State, error) {
	c, ok := s.cells.Load(id)
	if !ok {
		return node.Unexplored, nil
	}
	cl := c.(*cell)
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.state, nil
}

func (s *Store) Update(ctx context.Context, id nodeid.ID, fn nodestore.TransitionFunc) (node.State, node.State, error) {
	c := s.cell(id)
	c.mu.Lock()
	defer c.mu.Unlock()

	from := c.state
	c.state = fn(from)
	return from, c.state, nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.cells.Range(func(_, value any) bool {
		c := value.(*cell)
		c.mu.Lock()
		c.state = node.Unexplored
		c.mu.Unlock()
		return true
	})
	return nil
}
