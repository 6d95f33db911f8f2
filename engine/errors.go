package engine

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrInvalidArgument covers bad shapes, mismatched orientations, wrong
	// arity, and other pre-submission validation failures.
	ErrInvalidArgument = errors.New("engine: invalid argument")

	// ErrNullArgument is a subcategory of ErrInvalidArgument for missing
	// required arguments, including a nil root passed to Run.
	ErrNullArgument = errors.New("engine: null argument")
)
