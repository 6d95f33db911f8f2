package executor

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsNonPositiveWorkerCount(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = New(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestExecutor_SubmitAllDrainsBeforeReturning(t *testing.T) {
	e, err := New(4, WithSeed(1))
	require.NoError(t, err)
	defer e.Shutdown()

	var counter atomic.Int64
	tasks := make([]func(), 50)
	for i := range tasks {
		tasks[i] = func() {
			time.Sleep(time.Millisecond)
			counter.Add(1)
		}
	}

	require.NoError(t, e.SubmitAll(context.Background(), tasks))
	assert.Equal(t, int64(50), counter.Load())
}

func TestExecutor_SubmitAllEmptyReturnsImmediately(t *testing.T) {
	e, err := New(2, WithSeed(1))
	require.NoError(t, err)
	defer e.Shutdown()

	require.NoError(t, e.SubmitAll(context.Background(), []func(){}))
}

func TestExecutor_SubmitAllRejectsNil(t *testing.T) {
	e, err := New(2, WithSeed(1))
	require.NoError(t, err)
	defer e.Shutdown()

	assert.ErrorIs(t, e.SubmitAll(context.Background(), nil), ErrNullArgument)
}

func TestExecutor_ShutdownIsIdempotentAndSafeWithoutTasks(t *testing.T) {
	e, err := New(3, WithSeed(1))
	require.NoError(t, err)

	e.Shutdown()
	e.Shutdown()
}

func TestExecutor_ShutdownImmediatelyAfterSubmitAll(t *testing.T) {
	e, err := New(2, WithSeed(1))
	require.NoError(t, err)

	var ran atomic.Bool
	require.NoError(t, e.SubmitAll(context.Background(), []func(){
		func() { ran.Store(true) },
	}))
	e.Shutdown()

	assert.True(t, ran.Load())
}

func TestExecutor_TaskPanicDoesNotKillWorkerOrStallDrain(t *testing.T) {
	e, err := New(2, WithSeed(1))
	require.NoError(t, err)
	defer e.Shutdown()

	var ranAfter atomic.Bool
	err = e.SubmitAll(context.Background(), []func(){
		func() { panic("boom") },
		func() { ranAfter.Store(true) },
	})
	require.NoError(t, err)
	assert.True(t, ranAfter.Load())
}

func TestExecutor_WorkerReportFormat(t *testing.T) {
	e, err := New(3, WithSeed(1))
	require.NoError(t, err)
	defer e.Shutdown()

	require.NoError(t, e.SubmitAll(context.Background(), []func(){
		func() {}, func() {}, func() {},
	}))

	report := e.WorkerReport()
	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "========== Worker Report ==========", lines[0])
	for i := 0; i < 3; i++ {
		assert.Contains(t, lines[1+i], "fatigue=")
		assert.Contains(t, lines[1+i], "used=")
		assert.Contains(t, lines[1+i], "idle=")
	}
	assert.Contains(t, lines[4], "Fairness:")
	assert.Equal(t, "=======================================", lines[5])
}

func TestExecutor_FatigueStaysWithinAnOrderOfMagnitude(t *testing.T) {
	e, err := New(4, WithSeed(42))
	require.NoError(t, err)
	defer e.Shutdown()

	tasks := make([]func(), 400)
	for i := range tasks {
		tasks[i] = func() { time.Sleep(200 * time.Microsecond) }
	}
	require.NoError(t, e.SubmitAll(context.Background(), tasks))

	var minF, maxF float64
	for i, w := range e.workers {
		f := w.Fatigue()
		if i == 0 || f < minF {
			minF = f
		}
		if i == 0 || f > maxF {
			maxF = f
		}
	}

	if minF == 0 {
		t.Skip("no worker accumulated fatigue; timing too coarse on this machine")
	}
	assert.Less(t, maxF/minF, 10.0)
}

func TestExecutor_ConcurrentSubmitIsDeadlockFree(t *testing.T) {
	e, err := New(4, WithSeed(7))
	require.NoError(t, err)
	defer e.Shutdown()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = e.SubmitAll(context.Background(), []func(){
				func() {}, func() {},
			})
		}()
	}
	wg.Wait()
}
