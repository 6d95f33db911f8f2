package compute

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrInvalidArgument covers bad arity, wrong kind, and malformed trees.
	ErrInvalidArgument = errors.New("compute: invalid argument")

	// ErrNullArgument is a subcategory of ErrInvalidArgument for missing
	// required arguments.
	ErrNullArgument = errors.New("compute: null argument")

	// ErrIllegalState covers resolving an already-resolved node. Reading the
	// matrix off an unresolved node is reported by GetMatrix's boolean
	// result instead.
	ErrIllegalState = errors.New("compute: illegal state")
)
