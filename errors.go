package iterator

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleCategory is matched by every *CategoryError.
	ErrIncompatibleCategory = errors.New("incompatible iterator categories")

	// ErrOutOfRange is matched by every *RangeError.
	ErrOutOfRange = errors.New("iterator out of range")

	// ErrUnsupported is returned (usually as a panic value wrapped in an
	// *OperationError) when an iterator is asked to do something its
	// traversal category does not allow, such as decrementing a single
	// pass iterator.
	ErrUnsupported = errors.New("operation not supported by iterator")
)

// CategoryError reports a return/traversal category pair that cannot be
// combined into a valid iterator category.
type CategoryError struct {
	Return    ReturnCategory
	Traversal TraversalCategory
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("cannot combine %s return category with %s traversal", e.Return, e.Traversal)
}

func (e *CategoryError) Unwrap() error {
	return ErrIncompatibleCategory
}

// RangeError is the panic value of a checked iterator that was moved or
// dereferenced outside of its range.  Pos is the offending position
// relative to the start of the range and Len is the length of the range.
type RangeError struct {
	Op  string
	Pos int
	Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: position %d outside range of length %d", e.Op, e.Pos, e.Len)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// OperationError wraps an error raised by a primitive iterator operation.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Unsupported returns the panic value used by iterators that cannot perform
// op.
func Unsupported(op string) error {
	return &OperationError{Op: op, Err: ErrUnsupported}
}
