package explore

import (
	"context"

	"github.com/vk/mazewalk/internal/nodeid"
	"github.com/vk/mazewalk/internal/scheduler"
)

// Stepper hands a two-phase walk to an external driving loop, one node per
// call to Next. All progress is recorded in the graph's node states and the
// pending list, so a Stepper may be abandoned at any point and the graph is
// left in a valid, resumable state.
//
//	s := explore.NewStepper(x, root, scheduler.LIFO)
//	for !s.Done() {
//	    ev, err := s.Next(ctx)
//	    ...
//	}
type Stepper struct {
	x     *Explorer
	root  nodeid.ID
	q     scheduler.Queue
	trace Trace
	done  bool
}

// NewStepper schedules root on a fresh pending list with discipline d.
func NewStepper(x *Explorer, root nodeid.ID, d scheduler.Discipline) *Stepper {
	return &Stepper{
		x:    x,
		root: root,
		q:    scheduler.New(d, root),
	}
}

// Next performs one step. Calling Next after Done reports true breaks the
// queue's contract and panics.
func (s *Stepper) Next(ctx context.Context) (Event, error) {
	ev, err := s.x.Step(ctx, s.q, &s.trace)
	if err != nil {
		s.x.finish(ctx, Summary{Strategy: StrategyTwoPhase, Root: s.root, Visits: len(s.trace), Err: err})
		return Event{}, err
	}
	if s.q.Len() == 0 && !s.done {
		s.done = true
		s.x.finish(ctx, Summary{Strategy: StrategyTwoPhase, Root: s.root, Visits: len(s.trace)})
	}
	return ev, nil
}

// Done reports whether the pending list is empty.
func (s *Stepper) Done() bool {
	return s.q.Len() == 0
}

// Trace returns a copy of the labels emitted so far.
func (s *Stepper) Trace() Trace {
	return s.trace.Clone()
}

// Pending returns the scheduled IDs in the order they will be stepped.
func (s *Stepper) Pending() []nodeid.ID {
	return s.q.Snapshot()
}
