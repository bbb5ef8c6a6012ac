package explore

import (
	"context"

	"github.com/vk/mazewalk/internal/ctxlog"
	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
)

// Strategy names a traversal strategy.
type Strategy string

const (
	StrategyRecursive  Strategy = "recursive"
	StrategyAccumulate Strategy = "accumulate"
	StrategyEager      Strategy = "eager"
	StrategyTwoPhase   Strategy = "two-phase"
	StrategyReset      Strategy = "reset"
)

// Strategies lists the strategies a caller may run, in display order.
var Strategies = []Strategy{StrategyRecursive, StrategyAccumulate, StrategyEager, StrategyTwoPhase}

// Queued reports whether the strategy is driven by a pending list.
func (s Strategy) Queued() bool {
	return s == StrategyEager || s == StrategyTwoPhase
}

// Outcome classifies what a single visit did.
type Outcome int

const (
	// Leaf: a leaf was emitted.
	Leaf Outcome = iota
	// Expanded: a branch moved Unexplored → Explored and its children were descended into.
	Expanded
	// Revisited: an already explored branch was emitted without expansion.
	Revisited
	// Entered: a branch moved Unexplored → PartiallyExplored.
	Entered
	// Finished: a branch moved PartiallyExplored → Explored.
	Finished
	// Reset: a branch moved back to Unexplored and its children were descended into.
	Reset
	// AlreadyReset: an Unexplored branch was emitted during a reset without descent.
	AlreadyReset
)

var outcomeNames = [...]string{
	Leaf:         "leaf",
	Expanded:     "expanded",
	Revisited:    "revisited",
	Entered:      "entered",
	Finished:     "finished",
	Reset:        "reset",
	AlreadyReset: "already_reset",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Event describes one visit: one emitted label.
type Event struct {
	Strategy Strategy
	ID       nodeid.ID
	Label    string
	Kind     node.Kind
	From     node.State
	To       node.State
	Outcome  Outcome
	// Pending is the pending-list length after the visit; zero for recursive walks.
	Pending int
}

// Summary describes a finished traversal.
type Summary struct {
	Strategy Strategy
	Root     nodeid.ID
	Visits   int
	Err      error
}

// Observer receives traversal events. Implementations must not call back
// into the Explorer that notifies them.
type Observer interface {
	Visit(ctx context.Context, ev Event)
	Done(ctx context.Context, s Summary)
}

// LogObserver writes every event to the context logger at debug level.
type LogObserver struct{}

func (LogObserver) Visit(ctx context.Context, ev Event) {
	ctxlog.FromContext(ctx).Debug("Visited node.",
		"strategy", string(ev.Strategy),
		"id", ev.ID.String(),
		"label", ev.Label,
		"kind", ev.Kind.String(),
		"from", ev.From.String(),
		"to", ev.To.String(),
		"outcome", ev.Outcome.String(),
		"pending", ev.Pending,
	)
}

func (LogObserver) Done(ctx context.Context, s Summary) {
	logger := ctxlog.FromContext(ctx)
	if s.Err != nil {
		logger.Warn("Traversal stopped early.", "strategy", string(s.Strategy), "visits", s.Visits, "error", s.Err)
		return
	}
	logger.Debug("Traversal finished.", "strategy", string(s.Strategy), "root", s.Root.String(), "visits", s.Visits)
}
