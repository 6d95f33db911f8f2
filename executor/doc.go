// Package executor implements a fatigue-aware worker pool: a fixed set of
// goroutines, each fed through a capacity-one handoff channel, dispatched
// in order of ascending accumulated fatigue so that long-running workers
// receive fewer new tasks than idle ones.
package executor
