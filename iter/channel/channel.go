// Package channel implements a single pass input iterator that reads a
// data stream from the supplied channel.
//
// Like a stream iterator, the cursor reads the first element when it is
// created and one more element each time it is incremented.  All copies of
// a cursor share the stream: incrementing one of them invalidates the
// others.  The cursor becomes equal to End when the channel is closed or
// the context expires.
package channel

import (
	"context"

	"github.com/jake-scott/go-iterator"
)

type stream[T any] struct {
	ctx  context.Context
	ch   <-chan T
	item T
	pos  int
	done bool
	err  error
}

func (s *stream[T]) read() {
	select {
	case item, ok := <-s.ch:
		if ok {
			s.item = item
			s.pos++
			return
		}

		// if ok is false, the read failed due to empty closed channel
	case <-s.ctx.Done():
		s.err = s.ctx.Err()
	}

	var zero T
	s.item = zero
	s.done = true
}

// Cursor is a position in a channel's data stream.
type Cursor[T any] struct {
	s   *stream[T]
	pos int
}

// Iterator is the facade over a Cursor.
type Iterator[T any] = iterator.Facade[Cursor[T], T, *Cursor[T]]

// Begin returns an iterator that reads from ch until ch is closed or ctx
// expires.  Begin blocks until the first element has been read.
func Begin[T any](ctx context.Context, ch <-chan T) Iterator[T] {
	s := &stream[T]{ctx: ctx, ch: ch}
	s.read()

	return iterator.New[Cursor[T], T](Cursor[T]{s: s, pos: s.pos})
}

// End returns the iterator every exhausted channel iterator is equal to.
func End[T any]() Iterator[T] {
	return iterator.New[Cursor[T], T](Cursor[T]{})
}

// Range returns the range of all elements read from ch.
func Range[T any](ctx context.Context, ch <-chan T) iterator.Range[Cursor[T], T, *Cursor[T]] {
	return iterator.MakeRange(Begin(ctx, ch), End[T]())
}

func (c Cursor[T]) atEnd() bool {
	return c.s == nil || c.s.done
}

// Err returns the context expiry reason if reading from the channel
// stopped because of it, otherwise it returns nil.
func (c Cursor[T]) Err() error {
	if c.s == nil {
		return nil
	}
	return c.s.err
}

// Dereference returns the most recently read element, or the zero value of
// T at the end of the stream.
func (c Cursor[T]) Dereference() T {
	if c.s == nil {
		var zero T
		return zero
	}
	return c.s.item
}

// Increment reads the next element from the channel.
func (c *Cursor[T]) Increment() {
	if c.atEnd() {
		return
	}

	c.s.read()
	c.pos = c.s.pos
}

// Decrement panics: a channel can not be read backwards.
func (c *Cursor[T]) Decrement() {
	panic(iterator.Unsupported("channel: decrement"))
}

// Advance reads n elements.  It panics if n is negative.
func (c *Cursor[T]) Advance(n int) {
	if n < 0 {
		panic(iterator.Unsupported("channel: advance backwards"))
	}
	for ; n > 0; n-- {
		c.Increment()
	}
}

// Equal reports whether both cursors are at the end of their streams, or
// whether they refer to the same element of the same stream.
func (c *Cursor[T]) Equal(other Cursor[T]) bool {
	if c.atEnd() || other.atEnd() {
		return c.atEnd() == other.atEnd()
	}
	return c.s == other.s && c.pos == other.pos
}

// DistanceFrom returns the number of elements read between two cursors on
// the same stream.  It panics if either cursor is at the end, since the
// length of a stream is not known until it has been read.
func (c *Cursor[T]) DistanceFrom(other Cursor[T]) int {
	if c.atEnd() || other.atEnd() || c.s != other.s {
		panic(iterator.Unsupported("channel: distance"))
	}
	return other.pos - c.pos
}

func (c Cursor[T]) Categories() (iterator.ReturnCategory, iterator.TraversalCategory) {
	return iterator.Readable, iterator.InputTraversal
}
