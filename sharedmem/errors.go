package sharedmem

import "errors"

// Sentinel errors returned by this package. Callers should match with
// errors.Is; messages are wrapped with fmt.Errorf for call-site context but
// the sentinels themselves are never wrapped further.
var (
	// ErrInvalidArgument covers bad shapes, mismatched orientations, and
	// non-rectangular input.
	ErrInvalidArgument = errors.New("sharedmem: invalid argument")

	// ErrNullArgument is a subcategory of ErrInvalidArgument reserved for
	// missing (nil) required arguments.
	ErrNullArgument = errors.New("sharedmem: null argument")

	// ErrIndexOutOfRange is returned by bounds-checked accessors.
	ErrIndexOutOfRange = errors.New("sharedmem: index out of range")

	// ErrInconsistentState is raised by ReadRowMajor when the matrix's
	// element vectors no longer agree on orientation or length — this can
	// only happen if a caller mutated a vector outside the matrix's own
	// bulk-load methods, so the check is defensive.
	ErrInconsistentState = errors.New("sharedmem: inconsistent matrix state")
)
