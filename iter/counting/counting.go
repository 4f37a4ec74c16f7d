// Package counting implements a random access iterator whose elements are
// the successive values of an integer.
package counting

import (
	"github.com/jake-scott/go-iterator"
)

// Integer is the set of types a counting iterator can count with.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Cursor holds the current count.
type Cursor[N Integer] struct {
	n N
}

// Iterator is the facade over a Cursor.
type Iterator[N Integer] = iterator.Facade[Cursor[N], N, *Cursor[N]]

// From returns an iterator whose first element is n.
func From[N Integer](n N) Iterator[N] {
	return iterator.New[Cursor[N], N](Cursor[N]{n: n})
}

// Range returns the range of values [first, last).
func Range[N Integer](first, last N) iterator.Range[Cursor[N], N, *Cursor[N]] {
	return iterator.MakeRange(From(first), From(last))
}

func (c Cursor[N]) Dereference() N {
	return c.n
}

func (c *Cursor[N]) Increment() {
	c.n++
}

func (c *Cursor[N]) Decrement() {
	c.n--
}

func (c *Cursor[N]) Advance(n int) {
	if n < 0 {
		c.n -= N(-n)
		return
	}
	c.n += N(n)
}

func (c *Cursor[N]) Equal(other Cursor[N]) bool {
	return c.n == other.n
}

func (c *Cursor[N]) DistanceFrom(other Cursor[N]) int {
	if other.n < c.n {
		return -int(c.n - other.n)
	}
	return int(other.n - c.n)
}

func (c Cursor[N]) Categories() (iterator.ReturnCategory, iterator.TraversalCategory) {
	return iterator.Readable, iterator.RandomAccessTraversal
}
