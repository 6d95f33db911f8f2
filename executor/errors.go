package executor

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrInvalidArgument covers non-positive worker counts. Nil tasks and
	// nil task slices are reported as ErrNullArgument.
	ErrInvalidArgument = errors.New("executor: invalid argument")

	// ErrNullArgument is a subcategory of ErrInvalidArgument for missing
	// required arguments.
	ErrNullArgument = errors.New("executor: null argument")

	// ErrIllegalState covers addressing a worker or executor after
	// shutdown, or a worker whose handoff slot already holds a task.
	ErrIllegalState = errors.New("executor: illegal state")

	// ErrSubmitCancelled wraps a context cancellation observed while
	// Submit was waiting for an idle worker.
	ErrSubmitCancelled = errors.New("executor: submit cancelled")
)
