package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/lae-eval/lae/compute"
	"github.com/lae-eval/lae/executor"
	"github.com/lae-eval/lae/internal/obslog"
	"github.com/lae-eval/lae/sharedmem"
)

// Engine drives a compute.Node tree to full resolution by repeatedly
// finding the deepest resolvable node and dispatching its operation
// across an executor.Executor, one row at a time.
type Engine struct {
	exec   *executor.Executor
	logger *obslog.Logger
	sem    *semaphore.Weighted
}

// New builds an Engine backed by an executor.Executor of numWorkers
// goroutines.
func New(numWorkers int, opts ...Option) (*Engine, error) {
	cfg := resolveConfig(opts...)

	execOpts := []executor.Option{executor.WithLogger(cfg.logger)}
	if cfg.hasSeed {
		execOpts = append(execOpts, executor.WithSeed(cfg.seed))
	}

	exec, err := executor.New(numWorkers, execOpts...)
	if err != nil {
		return nil, err
	}

	return &Engine{exec: exec, logger: cfg.logger, sem: cfg.semaphoreOrNil()}, nil
}

// Run validates root, applies AssociativeNesting once, then repeatedly
// finds and resolves the deepest ready node until the whole tree (the
// returned root) is resolved. The executor is shut down on every exit
// path, including an error return.
func (e *Engine) Run(ctx context.Context, root *compute.Node) (*compute.Node, error) {
	defer e.exec.Shutdown()

	if root == nil {
		return nil, fmt.Errorf("engine: Run: %w", ErrNullArgument)
	}

	root = root.AssociativeNesting()

	for {
		node := root.FindResolvable()
		if node == nil {
			return root, nil
		}

		if err := e.loadAndCompute(ctx, node); err != nil {
			return nil, err
		}
	}
}

// WorkerReport exposes the underlying executor's diagnostic report.
func (e *Engine) WorkerReport() string {
	return e.exec.WorkerReport()
}

func (e *Engine) loadAndCompute(ctx context.Context, node *compute.Node) error {
	switch node.Kind() {
	case compute.Add:
		return e.computeAdd(ctx, node)
	case compute.Multiply:
		return e.computeMultiply(ctx, node)
	case compute.Negate:
		return e.computeNegate(ctx, node)
	case compute.Transpose:
		return e.computeTranspose(ctx, node)
	default:
		return fmt.Errorf("engine: loadAndCompute: %w: unknown kind %v", ErrInvalidArgument, node.Kind())
	}
}

func childMatrix(n *compute.Node) ([][]float64, error) {
	m, ok := n.GetMatrix()
	if !ok {
		return nil, fmt.Errorf("engine: %w: child node is not resolved", ErrInvalidArgument)
	}

	return m, nil
}

func (e *Engine) computeAdd(ctx context.Context, node *compute.Node) error {
	children := node.GetChildren()
	leftRaw, err := childMatrix(children[0])
	if err != nil {
		return err
	}
	rightRaw, err := childMatrix(children[1])
	if err != nil {
		return err
	}

	left, err := sharedmem.NewSharedMatrixFromRows(leftRaw)
	if err != nil {
		return err
	}
	right, err := sharedmem.NewSharedMatrixFromRows(rightRaw)
	if err != nil {
		return err
	}

	if err := validateAdd(left, right); err != nil {
		return err
	}
	if err := e.submitRows(ctx, addTasks(left, right)); err != nil {
		return err
	}

	result, err := left.ReadRowMajor()
	if err != nil {
		return err
	}

	return node.Resolve(result)
}

func (e *Engine) computeMultiply(ctx context.Context, node *compute.Node) error {
	children := node.GetChildren()
	leftRaw, err := childMatrix(children[0])
	if err != nil {
		return err
	}
	rightRaw, err := childMatrix(children[1])
	if err != nil {
		return err
	}

	left, err := sharedmem.NewSharedMatrixFromRows(leftRaw)
	if err != nil {
		return err
	}

	right := sharedmem.NewSharedMatrix()
	if err := right.LoadColumnMajor(columnsOf(rightRaw)); err != nil {
		return err
	}

	if err := validateMultiply(left, right); err != nil {
		return err
	}
	if err := e.submitRows(ctx, multiplyTasks(left, right)); err != nil {
		return err
	}

	result, err := left.ReadRowMajor()
	if err != nil {
		return err
	}

	return node.Resolve(result)
}

func (e *Engine) computeNegate(ctx context.Context, node *compute.Node) error {
	children := node.GetChildren()
	leftRaw, err := childMatrix(children[0])
	if err != nil {
		return err
	}

	left, err := sharedmem.NewSharedMatrixFromRows(leftRaw)
	if err != nil {
		return err
	}

	if err := validateUnary("NEGATE", left); err != nil {
		return err
	}
	if err := e.submitRows(ctx, negateTasks(left)); err != nil {
		return err
	}

	result, err := left.ReadRowMajor()
	if err != nil {
		return err
	}

	return node.Resolve(result)
}

func (e *Engine) computeTranspose(ctx context.Context, node *compute.Node) error {
	children := node.GetChildren()
	leftRaw, err := childMatrix(children[0])
	if err != nil {
		return err
	}

	left, err := sharedmem.NewSharedMatrixFromRows(leftRaw)
	if err != nil {
		return err
	}

	if err := validateUnary("TRANSPOSE", left); err != nil {
		return err
	}
	if err := e.submitRows(ctx, transposeTasks(left)); err != nil {
		return err
	}

	result, err := left.ReadRowMajor()
	if err != nil {
		return err
	}

	return node.Resolve(result)
}

// submitRows hands tasks to the executor, gating each one on the optional
// admission semaphore so that at most WithMaxInFlight row tasks actually
// execute at once, independent of worker count.
func (e *Engine) submitRows(ctx context.Context, tasks []func()) error {
	if e.sem == nil {
		return e.exec.SubmitAll(ctx, tasks)
	}

	gated := make([]func(), len(tasks))
	for i, task := range tasks {
		t := task
		gated[i] = func() {
			if err := e.sem.Acquire(ctx, 1); err != nil {
				e.logger.Warn("row task abandoned: semaphore acquire failed", "err", err)

				return
			}
			defer e.sem.Release(1)
			t()
		}
	}

	return e.exec.SubmitAll(ctx, gated)
}

// columnsOf transposes a row-major matrix into the column slices
// sharedmem.SharedMatrix.LoadColumnMajor expects.
func columnsOf(rows [][]float64) [][]float64 {
	if len(rows) == 0 {
		return [][]float64{}
	}

	width := len(rows[0])
	cols := make([][]float64, width)
	for j := 0; j < width; j++ {
		col := make([]float64, len(rows))
		for i, row := range rows {
			col[i] = row[j]
		}
		cols[j] = col
	}

	return cols
}
