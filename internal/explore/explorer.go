package explore

import (
	"context"
	"fmt"

	"github.com/vk/mazewalk/internal/graph"
	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
	"github.com/vk/mazewalk/internal/scheduler"
)

// Explorer runs traversals over one graph. It holds no per-run state; all
// visitation state lives in the graph's node store.
type Explorer struct {
	g         graph.Graph
	observers []Observer
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithObserver registers an observer notified of every visit.
func WithObserver(o Observer) Option {
	return func(x *Explorer) {
		if o != nil {
			x.observers = append(x.observers, o)
		}
	}
}

// New creates an Explorer over g.
func New(g graph.Graph, opts ...Option) *Explorer {
	x := &Explorer{g: g}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Graph returns the graph the explorer walks.
func (x *Explorer) Graph() graph.Graph {
	return x.g
}

// Run dispatches to the traversal named by s. The discipline only matters
// for queued strategies.
func (x *Explorer) Run(ctx context.Context, root nodeid.ID, s Strategy, d scheduler.Discipline) (Trace, error) {
	switch s {
	case StrategyRecursive:
		return x.Explore(ctx, root)
	case StrategyAccumulate:
		var trace Trace
		err := x.ExploreWithTrace(ctx, root, &trace)
		return trace, err
	case StrategyEager:
		return x.Drive(ctx, root, d)
	case StrategyTwoPhase:
		return x.DriveTwoPhase(ctx, root, d)
	case StrategyReset:
		return x.Unexplore(ctx, root)
	default:
		return nil, fmt.Errorf("unknown strategy %q", s)
	}
}

// visit applies m to the node behind id and notifies observers. Leaves
// bypass the state store entirely.
func (x *Explorer) visit(ctx context.Context, id nodeid.ID, m machine, s Strategy) (Event, *node.Node, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, nil, err
	}

	n, ok := x.g.Node(ctx, id)
	if !ok {
		return Event{}, nil, fmt.Errorf("%w: %s", graph.ErrNodeNotFound, id)
	}

	ev := Event{
		Strategy: s,
		ID:       n.ID,
		Label:    n.Label,
		Kind:     n.Kind,
	}

	switch n.Kind {
	case node.Leaf:
		ev.Outcome = Leaf
	case node.Branch:
		from, to, err := x.g.Transition(ctx, id, m.next)
		if err != nil {
			return Event{}, nil, fmt.Errorf("failed to transition '%s': %w", n.Label, err)
		}
		ev.From, ev.To = from, to
		ev.Outcome = m.classify(from)
	default:
		return Event{}, nil, fmt.Errorf("node '%s' has unknown kind %d", n.Label, n.Kind)
	}

	return ev, n, nil
}

func (x *Explorer) notify(ctx context.Context, ev Event) {
	for _, o := range x.observers {
		o.Visit(ctx, ev)
	}
}

func (x *Explorer) finish(ctx context.Context, s Summary) {
	for _, o := range x.observers {
		o.Done(ctx, s)
	}
}
