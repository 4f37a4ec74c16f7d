package iterator

// ReverseCursor walks its base iterator backwards.  Like a reverse
// iterator in other languages it refers to the element just before its
// base position, so the reverse of an end iterator refers to the last
// element and the reverse of a begin iterator is the end of the reversed
// sequence.
type ReverseCursor[B any, R any, PB Core[B, R]] struct {
	Adaptor[ReverseCursor[B, R, PB], B, R, PB]
}

// ReverseIterator is the facade over a ReverseCursor.
type ReverseIterator[B any, R any, PB Core[B, R]] = Facade[ReverseCursor[B, R, PB], R, *ReverseCursor[B, R, PB]]

// Reverse returns an iterator moving backwards from base.
func Reverse[B any, R any, PB Core[B, R]](base Facade[B, R, PB]) ReverseIterator[B, R, PB] {
	return New[ReverseCursor[B, R, PB], R](ReverseCursor[B, R, PB]{
		Adaptor: Adapt[ReverseCursor[B, R, PB]](base),
	})
}

// ConvertReverse returns a reverse iterator over a different base type,
// built from r's base by conv.  Typically conv turns a mutable iterator
// into its read only counterpart.
func ConvertReverse[B2 any, R2 any, PB2 Core[B2, R2], B any, R any, PB Core[B, R]](
	r ReverseIterator[B2, R2, PB2],
	conv func(Facade[B2, R2, PB2]) Facade[B, R, PB],
) ReverseIterator[B, R, PB] {
	var b Based[B2, R2, PB2] = r.Value()
	return Reverse(conv(b.Base()))
}

// Dereference returns the element before the base position.
func (r ReverseCursor[B, R, PB]) Dereference() R {
	return Prior(r.base).Deref()
}

func (r *ReverseCursor[B, R, PB]) Increment() {
	r.base.Dec()
}

func (r *ReverseCursor[B, R, PB]) Decrement() {
	r.base.Inc()
}

func (r *ReverseCursor[B, R, PB]) Advance(n int) {
	r.base.SubAssign(n)
}

// DistanceFrom returns how far y is ahead of r in the reversed direction,
// which is how far r's base is ahead of y's.
func (r *ReverseCursor[B, R, PB]) DistanceFrom(y ReverseCursor[B, R, PB]) int {
	return Distance(r.base, y.base)
}

// DistanceTo is DistanceFrom for a reverse iterator over another base type.
func (r *ReverseCursor[B, R, PB]) DistanceTo(other any) (int, bool) {
	d, ok := r.Adaptor.DistanceTo(other)
	return -d, ok
}
