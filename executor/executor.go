package executor

import (
	"container/heap"
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/lae-eval/lae/internal/obslog"
)

// Executor is a fixed-size fatigue-aware worker pool. Submitting a task
// dispatches it to whichever worker currently has the lowest fatigue;
// SubmitAll blocks until every submitted task has finished.
type Executor struct {
	workers []*Worker

	idleMu   sync.Mutex
	idleCond *sync.Cond
	idle     idleHeap

	inFlightMu   sync.Mutex
	inFlightCond *sync.Cond
	inFlight     int

	wg           sync.WaitGroup
	shutdownOnce sync.Once

	logger *obslog.Logger
}

// New builds an Executor with numWorkers goroutines, each assigned a
// fatigueFactor drawn from Uniform[0.5, 1.5).
func New(numWorkers int, opts ...Option) (*Executor, error) {
	if numWorkers <= 0 {
		return nil, fmt.Errorf("executor: New: %w: numWorkers must be positive, got %d", ErrInvalidArgument, numWorkers)
	}

	cfg := resolveConfig(opts...)
	seed := time.Now().UnixNano()
	if cfg.hasSeed {
		seed = cfg.seed
	}
	rng := rand.New(rand.NewSource(seed))

	e := &Executor{logger: cfg.logger}
	e.idleCond = sync.NewCond(&e.idleMu)
	e.inFlightCond = sync.NewCond(&e.inFlightMu)

	e.workers = make([]*Worker, numWorkers)
	e.idle = make(idleHeap, 0, numWorkers)
	for i := 0; i < numWorkers; i++ {
		fatigueFactor := 0.5 + rng.Float64() // Uniform[0.5, 1.5)
		w := newWorker(i, fatigueFactor, cfg.logger)
		e.workers[i] = w
		e.idle = append(e.idle, w)

		e.wg.Add(1)
		go func(worker *Worker) {
			defer e.wg.Done()
			worker.run()
		}(w)
	}
	heap.Init(&e.idle)

	return e, nil
}

// takeIdleWorker blocks until a worker is idle, or ctx is cancelled. On
// cancellation it returns without having scheduled anything, matching the
// documented "submit abandons" effect of an interrupted wait.
func (e *Executor) takeIdleWorker(ctx context.Context) (*Worker, error) {
	e.idleMu.Lock()
	defer e.idleMu.Unlock()

	if ctx != nil {
		stopWatch := make(chan struct{})
		defer close(stopWatch)
		go func() {
			select {
			case <-ctx.Done():
				e.idleMu.Lock()
				e.idleCond.Broadcast()
				e.idleMu.Unlock()
			case <-stopWatch:
			}
		}()
	}

	for e.idle.Len() == 0 {
		if ctx != nil && ctx.Err() != nil {
			return nil, fmt.Errorf("executor: Submit: %w: %w", ErrSubmitCancelled, ctx.Err())
		}
		e.idleCond.Wait()
	}

	return heap.Pop(&e.idle).(*Worker), nil
}

func (e *Executor) returnIdleWorker(w *Worker) {
	e.idleMu.Lock()
	heap.Push(&e.idle, w)
	e.idleCond.Broadcast()
	e.idleMu.Unlock()
}

func (e *Executor) incInFlight() {
	e.inFlightMu.Lock()
	e.inFlight++
	e.inFlightMu.Unlock()
}

func (e *Executor) decInFlight() {
	e.inFlightMu.Lock()
	e.inFlight--
	if e.inFlight == 0 {
		e.inFlightCond.Broadcast()
	}
	e.inFlightMu.Unlock()
}

// Submit dispatches task to the least-fatigued idle worker, blocking
// until one is free or ctx is done. The in-flight count (used by Drain)
// is incremented before dispatch and decremented when task finishes,
// regardless of whether it panicked.
func (e *Executor) Submit(ctx context.Context, task func()) error {
	if task == nil {
		return fmt.Errorf("executor: Submit: %w", ErrNullArgument)
	}
	// Shutdown stops every worker before it empties the idle set, so a dead
	// first worker means no idle worker will ever be returned.
	if !e.workers[0].alive.Load() {
		return fmt.Errorf("executor: Submit: %w: executor is shut down", ErrIllegalState)
	}

	w, err := e.takeIdleWorker(ctx)
	if err != nil {
		return err
	}

	e.incInFlight()

	wrapped := func() {
		defer func() {
			e.returnIdleWorker(w)
			e.decInFlight()
		}()
		task()
	}

	if err := w.newTask(wrapped); err != nil {
		e.returnIdleWorker(w)
		e.decInFlight()

		return err
	}

	return nil
}

// Drain blocks until the in-flight task count reaches zero, or ctx is
// done. Returns immediately if nothing is in flight.
func (e *Executor) Drain(ctx context.Context) error {
	e.inFlightMu.Lock()
	defer e.inFlightMu.Unlock()

	if ctx != nil {
		stopWatch := make(chan struct{})
		defer close(stopWatch)
		go func() {
			select {
			case <-ctx.Done():
				e.inFlightMu.Lock()
				e.inFlightCond.Broadcast()
				e.inFlightMu.Unlock()
			case <-stopWatch:
			}
		}()
	}

	for e.inFlight > 0 {
		if ctx != nil && ctx.Err() != nil {
			return fmt.Errorf("executor: Drain: %w: %w", ErrSubmitCancelled, ctx.Err())
		}
		e.inFlightCond.Wait()
	}

	return nil
}

// SubmitAll submits every task in tasks in order, then blocks until all
// of them have drained. Empty input returns immediately; nil input fails
// with ErrNullArgument before scheduling anything.
func (e *Executor) SubmitAll(ctx context.Context, tasks []func()) error {
	if tasks == nil {
		return fmt.Errorf("executor: SubmitAll: %w", ErrNullArgument)
	}
	if len(tasks) == 0 {
		return nil
	}

	for i, task := range tasks {
		if task == nil {
			return fmt.Errorf("executor: SubmitAll: %w: task %d is nil", ErrNullArgument, i)
		}
		if err := e.Submit(ctx, task); err != nil {
			return err
		}
	}

	return e.Drain(ctx)
}

// Shutdown signals every worker, joins their goroutines, and clears the
// idle set. Idempotent, and safe to call with no prior submissions or
// immediately after a SubmitAll.
func (e *Executor) Shutdown() {
	e.shutdownOnce.Do(func() {
		for _, w := range e.workers {
			w.shutdown()
		}
		e.wg.Wait()

		e.idleMu.Lock()
		e.idle = e.idle[:0]
		e.idleMu.Unlock()
	})
}

// WorkerReport renders a diagnostic snapshot: one line per worker in
// creation order, plus a trailing fairness scalar (the sum of squared
// deviations of per-worker fatigue from the mean).
func (e *Executor) WorkerReport() string {
	var b strings.Builder
	b.WriteString("========== Worker Report ==========\n")

	fatigues := make([]float64, len(e.workers))
	var sum float64
	for i, w := range e.workers {
		f := w.Fatigue()
		fatigues[i] = f
		sum += f
		fmt.Fprintf(&b, "Worker %d | fatigue=%v | used=%v ms | idle=%v ms\n", w.ID(), f, w.usedMillis(), w.idleMillis())
	}

	var mean float64
	if len(fatigues) > 0 {
		mean = sum / float64(len(fatigues))
	}

	var fairness float64
	for _, f := range fatigues {
		d := f - mean
		fairness += d * d
	}
	fmt.Fprintf(&b, "Fairness: %v\n", fairness)

	b.WriteString("=======================================\n")

	return b.String()
}
