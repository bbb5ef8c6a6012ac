// Package explore walks a maze from a root and honours each branch's
// visitation state, so that a branch reachable through several parents is
// expanded at most once per pass.
//
// # Strategies
//
//   - Recursive (Explore, ExploreWithTrace): depth-first pre-order using the
//     call stack. Explore returns a fresh trace; ExploreWithTrace appends to
//     a caller-owned one. Both yield identical traces.
//   - Eager work queue (Drive): an explicit pending list; an expanded branch
//     pushes both children at once.
//   - Two-phase work queue (Step, Drain, DriveTwoPhase, Stepper): a branch is
//     entered (self and left child pushed) and later finished (right child
//     pushed), so an external loop can advance the walk one node at a time.
//   - Reset (Unexplore): the inverse of the two-state walk.
//
// # State Machines
//
// Two-state (explore, eager):
//
//	Unexplored ──visit──▶ Explored      emit, expand both children
//	Explored   ──visit──▶ Explored      emit only
//
// Three-state (two-phase):
//
//	Unexplored        ──▶ PartiallyExplored   emit, schedule self + left
//	PartiallyExplored ──▶ Explored            emit, schedule right
//	Explored          ──▶ Explored            emit only
//
// Leaves are stateless: they are emitted on every arrival and never expanded.
//
// Every transition is a single nodestore read-modify-write, applied through
// graph.Transition under the node's exclusive lock.
package explore
