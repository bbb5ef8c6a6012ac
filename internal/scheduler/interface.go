package scheduler

import (
	"fmt"
	"strings"

	"github.com/vk/mazewalk/internal/nodeid"
)

// Discipline selects the order in which pending nodes are handed out.
type Discipline int

const (
	// LIFO hands out the most recently pushed node first (a stack).
	LIFO Discipline = iota
	// FIFO hands out the oldest pushed node first (a queue).
	FIFO
)

// String returns the discipline name used in flags and logs.
func (d Discipline) String() string {
	switch d {
	case LIFO:
		return "lifo"
	case FIFO:
		return "fifo"
	default:
		return "unknown"
	}
}

// ParseDiscipline converts a flag value into a Discipline.
func ParseDiscipline(s string) (Discipline, error) {
	switch strings.ToLower(s) {
	case "lifo", "stack":
		return LIFO, nil
	case "fifo", "queue":
		return FIFO, nil
	default:
		return LIFO, fmt.Errorf("unknown queue discipline %q: must be 'lifo' or 'fifo'", s)
	}
}

// Queue is the pending list of a work-queue traversal.
//
// # Delivery
//
// Each pushed ID is delivered by exactly one Pop: an item popped is owned
// by that caller alone. Implementations MUST be safe for concurrent use.
//
// # Usage Pattern
//
// The driving loop checks Len before popping:
//
//	for q.Len() > 0 {
//	    id := q.Pop()
//	    // process id, maybe Push more
//	}
type Queue interface {
	// Push appends ids in argument order.
	Push(ids ...nodeid.ID)

	// Pop removes and returns the next id according to the discipline.
	// It panics with a *ContractViolation if the queue is empty.
	Pop() nodeid.ID

	// Len returns the number of pending ids.
	Len() int

	// Snapshot returns the pending ids in the order they would be popped.
	Snapshot() []nodeid.ID

	// Discipline reports the queue's ordering.
	Discipline() Discipline
}

// ContractViolation is the panic value raised when a caller breaks a
// precondition of the queue. It signals a bug in the caller, not a
// recoverable runtime condition.
type ContractViolation struct {
	Op     string
	Reason string
}

func (c *ContractViolation) Error() string {
	return fmt.Sprintf("scheduler: contract violation in %s: %s", c.Op, c.Reason)
}
