// Package iterator builds complete iterator types out of a handful of
// primitive operations.
//
// A concrete iterator F implements Core on *F: Dereference, Increment,
// Decrement, Advance, Equal, DistanceFrom and Categories.  Wrapping it in a
// Facade provides everything else: pre and post increment, offset
// arithmetic, indexing, distances and the six comparisons, all derived from
// those primitives.  Iterators that wrap another iterator embed Adaptor,
// which forwards the primitives to the wrapped (base) iterator so that only
// the operations whose meaning changes need to be written.  Reverse is built
// this way.
//
// None of the operations check that an iterator is valid; dereferencing or
// moving an iterator outside of its sequence has whatever effect the
// underlying sequence gives it.  Checked wraps any iterator with bounds
// checks when that is wanted.
package iterator

import (
	"context"
)

// Iterator is a generic interface for one-directional traversal through
// a collection or stream of items.  Range.Stream adapts a pair of
// facades to it.
type Iterator[T any] interface {
	// Next traverses the iterator to the next element
	// Returns true if the iterator advanced, or false if there are no more
	// elements or if an error occurred (see Error() below)
	Next(ctx context.Context) bool

	// Get returns current value referred to by the iterator
	Get() T

	// Error returns a non-nil value if an error occurred processing Next()
	Error() error
}

// Size is an interface that can be implemented by an iterator that
// knows the number of elements in the collection when it is initialized
type Size[T any] interface {
	Size() uint
}
