// Package slice implements random access iterators over a generic slice of
// elements.
//
// Cursor refers to elements by pointer and can be used to modify the
// slice; ConstCursor returns copies of the elements.  The two kinds
// compare with each other through iterator.EqualAcross and
// iterator.CompareAcross.  Iterators from different slices must not be
// compared.
package slice

import (
	"github.com/jake-scott/go-iterator"
)

// Cursor is a position in a slice of elements of type T.
type Cursor[T any] struct {
	s   []T
	pos int
}

// Iterator is the facade over a Cursor.
type Iterator[T any] = iterator.Facade[Cursor[T], *T, *Cursor[T]]

// At returns an iterator referring to s[pos].
func At[T any](s []T, pos int) Iterator[T] {
	return iterator.New[Cursor[T], *T](Cursor[T]{s: s, pos: pos})
}

// Begin returns an iterator referring to the first element of s.
func Begin[T any](s []T) Iterator[T] {
	return At(s, 0)
}

// End returns an iterator referring one past the last element of s.
func End[T any](s []T) Iterator[T] {
	return At(s, len(s))
}

// Range returns the range of all elements of s.
func Range[T any](s []T) iterator.Range[Cursor[T], *T, *Cursor[T]] {
	return iterator.MakeRange(Begin(s), End(s))
}

// Pos returns the index the cursor refers to.
func (c Cursor[T]) Pos() int {
	return c.pos
}

// Dereference returns a pointer to the element at the cursor's position.
func (c Cursor[T]) Dereference() *T {
	return &c.s[c.pos]
}

func (c *Cursor[T]) Increment() {
	c.pos++
}

func (c *Cursor[T]) Decrement() {
	c.pos--
}

func (c *Cursor[T]) Advance(n int) {
	c.pos += n
}

func (c *Cursor[T]) Equal(other Cursor[T]) bool {
	return c.pos == other.pos
}

func (c *Cursor[T]) DistanceFrom(other Cursor[T]) int {
	return other.pos - c.pos
}

func (c Cursor[T]) Categories() (iterator.ReturnCategory, iterator.TraversalCategory) {
	return iterator.MutableLvalue, iterator.RandomAccessTraversal
}

// EqualTo compares the cursor with a Cursor or ConstCursor of the same
// element type.
func (c *Cursor[T]) EqualTo(other any) (bool, bool) {
	pos, ok := position[T](other)
	return ok && c.pos == pos, ok
}

// DistanceTo is DistanceFrom for a Cursor or ConstCursor of the same
// element type.
func (c *Cursor[T]) DistanceTo(other any) (int, bool) {
	pos, ok := position[T](other)
	if !ok {
		return 0, false
	}
	return pos - c.pos, true
}

func position[T any](c any) (int, bool) {
	switch c := c.(type) {
	case Cursor[T]:
		return c.pos, true
	case ConstCursor[T]:
		return c.c.pos, true
	}
	return 0, false
}

// ConstCursor is a read only position in a slice of elements of type T.
type ConstCursor[T any] struct {
	c Cursor[T]
}

// ConstIterator is the facade over a ConstCursor.
type ConstIterator[T any] = iterator.Facade[ConstCursor[T], T, *ConstCursor[T]]

// Const converts it to a read only iterator at the same position.
func Const[T any](it Iterator[T]) ConstIterator[T] {
	return iterator.New[ConstCursor[T], T](ConstCursor[T]{c: it.Value()})
}

// ConstRange returns the read only range of all elements of s.
func ConstRange[T any](s []T) iterator.Range[ConstCursor[T], T, *ConstCursor[T]] {
	return iterator.MakeRange(Const(Begin(s)), Const(End(s)))
}

// Pos returns the index the cursor refers to.
func (c ConstCursor[T]) Pos() int {
	return c.c.pos
}

// Dereference returns a copy of the element at the cursor's position.
func (c ConstCursor[T]) Dereference() T {
	return c.c.s[c.c.pos]
}

func (c *ConstCursor[T]) Increment()    { c.c.Increment() }
func (c *ConstCursor[T]) Decrement()    { c.c.Decrement() }
func (c *ConstCursor[T]) Advance(n int) { c.c.Advance(n) }

func (c *ConstCursor[T]) Equal(other ConstCursor[T]) bool {
	return c.c.Equal(other.c)
}

func (c *ConstCursor[T]) DistanceFrom(other ConstCursor[T]) int {
	return c.c.DistanceFrom(other.c)
}

func (c ConstCursor[T]) Categories() (iterator.ReturnCategory, iterator.TraversalCategory) {
	return iterator.ConstantLvalue, iterator.RandomAccessTraversal
}

func (c *ConstCursor[T]) EqualTo(other any) (bool, bool) {
	return c.c.EqualTo(other)
}

func (c *ConstCursor[T]) DistanceTo(other any) (int, bool) {
	return c.c.DistanceTo(other)
}
