package iterator

import (
	"context"
	"iter"
)

// Range is the half-open sequence of positions [First, Last).
type Range[F any, R any, PF Core[F, R]] struct {
	First Facade[F, R, PF]
	Last  Facade[F, R, PF]
}

// MakeRange returns the range [first, last).
func MakeRange[F any, R any, PF Core[F, R]](first, last Facade[F, R, PF]) Range[F, R, PF] {
	return Range[F, R, PF]{First: first, Last: last}
}

// ReverseRange returns the range visiting the elements of r from last to
// first.
func ReverseRange[F any, R any, PF Core[F, R]](r Range[F, R, PF]) Range[ReverseCursor[F, R, PF], R, *ReverseCursor[F, R, PF]] {
	return Range[ReverseCursor[F, R, PF], R, *ReverseCursor[F, R, PF]]{
		First: Reverse(r.Last),
		Last:  Reverse(r.First),
	}
}

// Len returns the number of elements in the range.
func (r Range[F, R, PF]) Len() int {
	return Distance(r.Last, r.First)
}

// Empty reports whether First and Last are equal.
func (r Range[F, R, PF]) Empty() bool {
	return Equal(r.First, r.Last)
}

// All returns a sequence of the elements in the range.
func (r Range[F, R, PF]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		for it := r.First; it.Ne(r.Last); it.Inc() {
			if !yield(it.Deref()) {
				return
			}
		}
	}
}

// Indexed returns a sequence of the elements in the range together with
// their offset from First.
func (r Range[F, R, PF]) Indexed() iter.Seq2[int, R] {
	return func(yield func(int, R) bool) {
		i := 0
		for it := r.First; it.Ne(r.Last); it.Inc() {
			if !yield(i, it.Deref()) {
				return
			}
			i++
		}
	}
}

// Backward returns a sequence of the elements in the range, last first.
// The range must be bidirectional.
func (r Range[F, R, PF]) Backward() iter.Seq[R] {
	return func(yield func(R) bool) {
		for it := r.Last; it.Ne(r.First); {
			if !yield(it.Dec().Deref()) {
				return
			}
		}
	}
}

// Collect returns the elements of the range as a slice.
func (r Range[F, R, PF]) Collect() []R {
	var out []R
	if r.First.Category().Traversal.Includes(ForwardTraversal) {
		out = make([]R, 0, max(r.Len(), 0))
	}

	for v := range r.All() {
		out = append(out, v)
	}
	return out
}

// Stream returns a pull iterator over the range.
func (r Range[F, R, PF]) Stream() *RangeIterator[F, R, PF] {
	return &RangeIterator[F, R, PF]{
		cur:  r.First,
		last: r.Last,
	}
}

// Chan starts a goroutine that sends the elements of the range to the
// returned channel.  The channel is closed at the end of the range or when
// ctx is cancelled.
func (r Range[F, R, PF]) Chan(ctx context.Context) <-chan R {
	ch := make(chan R)

	go func() {
		defer close(ch)

		for it := r.First; it.Ne(r.Last); it.Inc() {
			select {
			case ch <- it.Deref():
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}

// RangeIterator traverses a Range through the Iterator interface.
//
// RangeIterator supports the Size interface when the range is at least a
// forward range.
type RangeIterator[F any, R any, PF Core[F, R]] struct {
	cur     Facade[F, R, PF]
	last    Facade[F, R, PF]
	started bool
	valid   bool
	err     error
}

// Next advances the iterator to the next element of the range.  It returns
// false when the end of the range has been reached or the context is
// cancelled.
func (i *RangeIterator[F, R, PF]) Next(ctx context.Context) bool {
	if i.err != nil {
		return false
	}

	select {
	case <-ctx.Done():
		i.err = ctx.Err()
		i.valid = false
		return false
	default:
	}

	if i.started {
		if !i.valid {
			return false
		}
		i.cur.Inc()
	}
	i.started = true

	i.valid = i.cur.Ne(i.last)
	return i.valid
}

// Get returns the element the iterator refers to, or the zero value of R
// before the first call to Next and after the end of the range.
func (i *RangeIterator[F, R, PF]) Get() R {
	if !i.valid {
		var ret R
		return ret
	}

	return i.cur.Deref()
}

// Error returns the context's error if the context was cancelled during
// a call to Next().
func (i *RangeIterator[F, R, PF]) Error() error {
	return i.err
}

// Size returns the number of elements left in the range, including the
// current one.  It returns 0 for single pass ranges, whose length cannot
// be measured without consuming them.
func (i *RangeIterator[F, R, PF]) Size() uint {
	if !i.cur.Category().Traversal.Includes(ForwardTraversal) {
		return 0
	}

	return uint(max(Distance(i.last, i.cur), 0))
}
