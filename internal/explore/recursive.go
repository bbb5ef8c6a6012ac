package explore

import (
	"context"

	"github.com/vk/mazewalk/internal/nodeid"
)

// Explore walks the maze depth-first from root and returns the trace.
//
// A branch emits its own label before its children's. An already explored
// branch emits its label but is not descended into again.
func (x *Explorer) Explore(ctx context.Context, root nodeid.ID) (Trace, error) {
	visits := 0
	trace, err := x.explore(ctx, root, &visits)
	x.finish(ctx, Summary{Strategy: StrategyRecursive, Root: root, Visits: visits, Err: err})
	return trace, err
}

// explore builds each subtree's trace as a return value and concatenates.
func (x *Explorer) explore(ctx context.Context, id nodeid.ID, visits *int) (Trace, error) {
	ev, n, err := x.visit(ctx, id, twoState, StrategyRecursive)
	if err != nil {
		return nil, err
	}
	*visits++
	x.notify(ctx, ev)

	trace := Trace{n.Label}
	if ev.Outcome != Expanded {
		return trace, nil
	}

	left, err := x.explore(ctx, n.Left, visits)
	trace = append(trace, left...)
	if err != nil {
		return trace, err
	}
	right, err := x.explore(ctx, n.Right, visits)
	trace = append(trace, right...)
	return trace, err
}

// ExploreWithTrace is Explore appending into a caller-owned trace instead of
// allocating a new one. For the same maze and state history both produce
// the same labels.
func (x *Explorer) ExploreWithTrace(ctx context.Context, root nodeid.ID, trace *Trace) error {
	start := len(*trace)
	err := x.exploreInto(ctx, root, trace)
	x.finish(ctx, Summary{Strategy: StrategyAccumulate, Root: root, Visits: len(*trace) - start, Err: err})
	return err
}

func (x *Explorer) exploreInto(ctx context.Context, id nodeid.ID, trace *Trace) error {
	ev, n, err := x.visit(ctx, id, twoState, StrategyAccumulate)
	if err != nil {
		return err
	}
	*trace = append(*trace, n.Label)
	x.notify(ctx, ev)

	if ev.Outcome != Expanded {
		return nil
	}
	if err := x.exploreInto(ctx, n.Left, trace); err != nil {
		return err
	}
	return x.exploreInto(ctx, n.Right, trace)
}

// Unexplore walks the maze from root and returns every visited branch to
// Unexplored. It descends only through branches it actually reset, so a
// shared subtree is walked once per pass.
func (x *Explorer) Unexplore(ctx context.Context, root nodeid.ID) (Trace, error) {
	var trace Trace
	err := x.unexplore(ctx, root, &trace)
	x.finish(ctx, Summary{Strategy: StrategyReset, Root: root, Visits: len(trace), Err: err})
	return trace, err
}

func (x *Explorer) unexplore(ctx context.Context, id nodeid.ID, trace *Trace) error {
	ev, n, err := x.visit(ctx, id, reset, StrategyReset)
	if err != nil {
		return err
	}
	*trace = append(*trace, n.Label)
	x.notify(ctx, ev)

	if ev.Outcome != Reset {
		return nil
	}
	if err := x.unexplore(ctx, n.Left, trace); err != nil {
		return err
	}
	return x.unexplore(ctx, n.Right, trace)
}
