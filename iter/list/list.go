// Package list implements a bidirectional iterator over a container/list
// whose elements hold values of type T.
//
// The iterator returns element values rather than references, so it
// advertises itself as a bidirectional input iterator.
package list

import (
	"container/list"

	"github.com/jake-scott/go-iterator"
)

// Cursor is a position in a list.  The end position has no element.
type Cursor[T any] struct {
	l   *list.List
	e   *list.Element
	pos int
}

// Iterator is the facade over a Cursor.
type Iterator[T any] = iterator.Facade[Cursor[T], T, *Cursor[T]]

// Begin returns an iterator referring to the front of l.
func Begin[T any](l *list.List) Iterator[T] {
	return iterator.New[Cursor[T], T](Cursor[T]{l: l, e: l.Front()})
}

// End returns an iterator referring one past the back of l.
func End[T any](l *list.List) Iterator[T] {
	return iterator.New[Cursor[T], T](Cursor[T]{l: l, pos: l.Len()})
}

// Range returns the range of all elements of l.
func Range[T any](l *list.List) iterator.Range[Cursor[T], T, *Cursor[T]] {
	return iterator.MakeRange(Begin[T](l), End[T](l))
}

// Element returns the list element the cursor refers to, or nil at the end
// of the list.
func (c Cursor[T]) Element() *list.Element {
	return c.e
}

// Dereference returns the value of the current element.  It panics if the
// value is not a T.
func (c Cursor[T]) Dereference() T {
	return c.e.Value.(T)
}

func (c *Cursor[T]) Increment() {
	c.e = c.e.Next()
	c.pos++
}

func (c *Cursor[T]) Decrement() {
	if c.e == nil {
		c.e = c.l.Back()
	} else {
		c.e = c.e.Prev()
	}
	c.pos--
}

// Advance moves the cursor n elements, one at a time.
func (c *Cursor[T]) Advance(n int) {
	for ; n > 0; n-- {
		c.Increment()
	}
	for ; n < 0; n++ {
		c.Decrement()
	}
}

// Equal reports whether both cursors refer to the same element of the
// same list.  End cursors of different lists are not equal.
func (c *Cursor[T]) Equal(other Cursor[T]) bool {
	return c.l == other.l && c.e == other.e
}

// DistanceFrom relies on the positions the cursors have counted since they
// were created, so it is only meaningful while the list is not modified.
// It panics if the cursors belong to different lists.
func (c *Cursor[T]) DistanceFrom(other Cursor[T]) int {
	if c.l != other.l {
		panic(iterator.Unsupported("list: distance between lists"))
	}
	return other.pos - c.pos
}

func (c Cursor[T]) Categories() (iterator.ReturnCategory, iterator.TraversalCategory) {
	return iterator.Readable, iterator.BidirectionalTraversal
}
