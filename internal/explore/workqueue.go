package explore

import (
	"context"

	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
	"github.com/vk/mazewalk/internal/scheduler"
)

// Drive walks the maze from root with an explicit pending list and the
// two-state machine. An expanded branch schedules both children so that
// the left child is handed out first: right then left on a LIFO list,
// left then right on a FIFO list.
//
// Under LIFO the trace equals Explore's. Under FIFO the walk is breadth
// first and the order in which a shared node's parents reach it depends on
// pop order.
func (x *Explorer) Drive(ctx context.Context, root nodeid.ID, d scheduler.Discipline) (Trace, error) {
	q := scheduler.New(d, root)

	var trace Trace
	var err error
	for q.Len() > 0 {
		if _, err = x.driveStep(ctx, q, &trace); err != nil {
			break
		}
	}

	x.finish(ctx, Summary{Strategy: StrategyEager, Root: root, Visits: len(trace), Err: err})
	return trace, err
}

func (x *Explorer) driveStep(ctx context.Context, q scheduler.Queue, trace *Trace) (Event, error) {
	id := q.Pop()

	ev, n, err := x.visit(ctx, id, twoState, StrategyEager)
	if err != nil {
		return Event{}, err
	}
	*trace = append(*trace, n.Label)

	if ev.Outcome == Expanded {
		pushChildren(q, n)
	}
	ev.Pending = q.Len()
	x.notify(ctx, ev)
	return ev, nil
}

func pushChildren(q scheduler.Queue, n *node.Node) {
	if q.Discipline() == scheduler.LIFO {
		q.Push(n.Right, n.Left)
		return
	}
	q.Push(n.Left, n.Right)
}

// Step pops exactly one node from q, applies the three-state machine to
// it, appends the emitted label to trace and pushes whatever the transition
// schedules:
//
//	Unexplored        → PartiallyExplored   push the node itself, then its left child
//	PartiallyExplored → Explored            push the right child
//	Explored                                nothing
//
// Leaves are emitted and schedule nothing. Step panics with a
// *scheduler.ContractViolation if q is empty.
func (x *Explorer) Step(ctx context.Context, q scheduler.Queue, trace *Trace) (Event, error) {
	id := q.Pop()

	ev, n, err := x.visit(ctx, id, threeState, StrategyTwoPhase)
	if err != nil {
		return Event{}, err
	}
	*trace = append(*trace, n.Label)

	switch ev.Outcome {
	case Entered:
		q.Push(n.ID, n.Left)
	case Finished:
		q.Push(n.Right)
	}
	ev.Pending = q.Len()
	x.notify(ctx, ev)
	return ev, nil
}

// Drain steps q until it is empty. The caller asserts q holds at least one
// node: draining an empty queue is a contract violation and panics.
func (x *Explorer) Drain(ctx context.Context, q scheduler.Queue, trace *Trace) error {
	for {
		if _, err := x.Step(ctx, q, trace); err != nil {
			return err
		}
		if q.Len() == 0 {
			return nil
		}
	}
}

// DriveTwoPhase runs the two-phase walk from root to completion. Every
// branch reached is emitted once when entered and once when finished; a
// branch that is already Explored when popped again is emitted once more.
func (x *Explorer) DriveTwoPhase(ctx context.Context, root nodeid.ID, d scheduler.Discipline) (Trace, error) {
	q := scheduler.New(d, root)

	var trace Trace
	err := x.Drain(ctx, q, &trace)
	x.finish(ctx, Summary{Strategy: StrategyTwoPhase, Root: root, Visits: len(trace), Err: err})
	return trace, err
}
