// Package sharedmem provides the concurrency-safe matrix/vector memory at
// the core of the evaluator: SharedVector is an orientation-tagged,
// RWMutex-guarded sequence of float64 values; SharedMatrix is an ordered
// collection of SharedVectors that share one orientation.
//
// Every public mutator releases its lock on all exit paths, including the
// error path — the locking discipline is what makes per-row fan-out in the
// engine package safe: once an operation's operands are staged into a
// SharedMatrix, concurrent per-row tasks touch disjoint SharedVectors and
// never need to coordinate with each other.
package sharedmem
