package scheduler

import (
	"sync"

	"github.com/vk/mazewalk/internal/nodeid"
)

// PendingList is the reference Queue implementation: a slice guarded by a
// mutex, popped from the tail for LIFO and from the head for FIFO.
type PendingList struct {
	mu         sync.Mutex
	items      []nodeid.ID
	head       int
	discipline Discipline
}

// New creates an empty pending list with the given discipline, seeded with
// any initial ids.
func New(d Discipline, initial ...nodeid.ID) Queue {
	q := &PendingList{discipline: d}
	q.Push(initial...)
	return q
}

// NewLIFO creates a stack-ordered pending list.
func NewLIFO(initial ...nodeid.ID) Queue {
	return New(LIFO, initial...)
}

// NewFIFO creates a queue-ordered pending list.
func NewFIFO(initial ...nodeid.ID) Queue {
	return New(FIFO, initial...)
}

func (q *PendingList) Push(ids ...nodeid.ID) {
	if len(ids) == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, ids...)
}

func (q *PendingList) Pop() nodeid.ID {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head >= len(q.items) {
		panic(&ContractViolation{Op: "Pop", Reason: "pending queue is empty"})
	}

	var id nodeid.ID
	switch q.discipline {
	case FIFO:
		id = q.items[q.head]
		q.head++
		if q.head == len(q.items) {
			q.items = q.items[:0]
			q.head = 0
		}
	default:
		last := len(q.items) - 1
		id = q.items[last]
		q.items = q.items[:last]
	}
	return id
}

func (q *PendingList) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

func (q *PendingList) Snapshot() []nodeid.ID {
	q.mu.Lock()
	defer q.mu.Unlock()

	pending := q.items[q.head:]
	out := make([]nodeid.ID, 0, len(pending))
	if q.discipline == FIFO {
		return append(out, pending...)
	}
	for i := len(pending) - 1; i >= 0; i-- {
		out = append(out, pending[i])
	}
	return out
}

func (q *PendingList) Discipline() Discipline {
	return q.discipline
}
