// Package scheduler provides the pending list that the work-queue
// traversals drain. It decides which node is processed next: the most
// recently pushed one (LIFO) or the oldest one (FIFO).
//
// Popping an empty queue is a programmer error in the driving loop and
// panics with a *ContractViolation.
package scheduler
