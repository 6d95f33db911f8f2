package engine

import (
	"fmt"

	"github.com/lae-eval/lae/sharedmem"
)

// validateAdd requires both operands non-empty, row-oriented, with equal
// row counts and equal row lengths.
func validateAdd(left, right *sharedmem.SharedMatrix) error {
	if left.Length() == 0 || right.Length() == 0 {
		return fmt.Errorf("engine: ADD: %w: operands must be non-empty", ErrInvalidArgument)
	}

	lo, _ := left.Orientation()
	ro, _ := right.Orientation()
	if lo != sharedmem.Row || ro != sharedmem.Row {
		return fmt.Errorf("engine: ADD: %w: both operands must be row-oriented", ErrInvalidArgument)
	}

	if left.Length() != right.Length() {
		return fmt.Errorf("engine: ADD: %w: row count mismatch: %d vs %d", ErrInvalidArgument, left.Length(), right.Length())
	}

	for i := 0; i < left.Length(); i++ {
		lv, err := left.Get(i)
		if err != nil {
			return err
		}
		rv, err := right.Get(i)
		if err != nil {
			return err
		}
		if lv.Length() != rv.Length() {
			return fmt.Errorf("engine: ADD: %w: row %d length mismatch: %d vs %d", ErrInvalidArgument, i, lv.Length(), rv.Length())
		}
	}

	return nil
}

// addTasks assumes validateAdd already passed. Each task adds right's row
// i into left's row i, in place.
func addTasks(left, right *sharedmem.SharedMatrix) []func() {
	tasks := make([]func(), left.Length())
	for i := 0; i < left.Length(); i++ {
		lv, _ := left.Get(i)
		rv, _ := right.Get(i)
		tasks[i] = func() { _ = lv.Add(rv) }
	}

	return tasks
}

// validateMultiply requires left row-oriented, right column-oriented, and
// left's row length to match the length of right's columns.
func validateMultiply(left, right *sharedmem.SharedMatrix) error {
	if left.Length() == 0 || right.Length() == 0 {
		return fmt.Errorf("engine: MULTIPLY: %w: operands must be non-empty", ErrInvalidArgument)
	}

	lo, _ := left.Orientation()
	ro, _ := right.Orientation()
	if lo != sharedmem.Row {
		return fmt.Errorf("engine: MULTIPLY: %w: left operand must be row-oriented", ErrInvalidArgument)
	}
	if ro != sharedmem.Column {
		return fmt.Errorf("engine: MULTIPLY: %w: right operand must be column-oriented", ErrInvalidArgument)
	}

	firstCol, err := right.Get(0)
	if err != nil {
		return err
	}
	inner := firstCol.Length()

	for i := 0; i < left.Length(); i++ {
		lv, err := left.Get(i)
		if err != nil {
			return err
		}
		if lv.Length() != inner {
			return fmt.Errorf("engine: MULTIPLY: %w: inner dimension mismatch at row %d: %d vs %d", ErrInvalidArgument, i, lv.Length(), inner)
		}
	}

	return nil
}

// multiplyTasks assumes validateMultiply already passed. Each task
// replaces left's row i with its product against the whole of right.
func multiplyTasks(left, right *sharedmem.SharedMatrix) []func() {
	tasks := make([]func(), left.Length())
	for i := 0; i < left.Length(); i++ {
		lv, _ := left.Get(i)
		tasks[i] = func() { _ = lv.VecMatMul(right) }
	}

	return tasks
}

// validateUnary requires a non-empty operand; shared by NEGATE and
// TRANSPOSE, which otherwise have no shape constraints.
func validateUnary(opLabel string, left *sharedmem.SharedMatrix) error {
	if left.Length() == 0 {
		return fmt.Errorf("engine: %s: %w: operand must be non-empty", opLabel, ErrInvalidArgument)
	}

	return nil
}

// negateTasks assumes validateUnary already passed.
func negateTasks(left *sharedmem.SharedMatrix) []func() {
	tasks := make([]func(), left.Length())
	for i := 0; i < left.Length(); i++ {
		lv, _ := left.Get(i)
		tasks[i] = func() { lv.Negate() }
	}

	return tasks
}

// transposeTasks assumes validateUnary already passed. Each task flips
// one row's orientation tag; readRowMajor repackages the resulting
// column-oriented matrix into the transposed row-major output.
func transposeTasks(left *sharedmem.SharedMatrix) []func() {
	tasks := make([]func(), left.Length())
	for i := 0; i < left.Length(); i++ {
		lv, _ := left.Get(i)
		tasks[i] = func() { lv.Transpose() }
	}

	return tasks
}
