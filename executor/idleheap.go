package executor

// idleHeap is a min-heap (container/heap.Interface) of *Worker, ordered by
// ascending Fatigue. Fatigue is a monotone non-decreasing snapshot taken
// at insertion time; a worker that finished a task after being pushed may
// report a higher live Fatigue than its stored key, but that only ever
// under-estimates load, never over-estimates it, so the heap stays a
// sound (if occasionally stale) guide to "who is least loaded".
type idleHeap []*Worker

// Len returns the number of idle workers.
func (h idleHeap) Len() int { return len(h) }

// Less orders by ascending fatigue: lower fatigue sorts first.
func (h idleHeap) Less(i, j int) bool { return h[i].Fatigue() < h[j].Fatigue() }

// Swap exchanges two elements in the heap.
func (h idleHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap. Called by heap.Push; x must be
// a *Worker.
func (h *idleHeap) Push(x interface{}) { *h = append(*h, x.(*Worker)) }

// Pop removes and returns the least-fatigued element. Called by heap.Pop;
// returns interface{} that must be cast to *Worker.
func (h *idleHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
