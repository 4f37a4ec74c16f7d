package iterator

// Core is the set of primitive operations a concrete iterator type F
// provides through its pointer type.  F itself is the final type: it is
// the type every operation of the Facade copies, compares and hands back.
//
// Equal and DistanceFrom receive the other iterator by value.
// x.DistanceFrom(y) returns how far y is ahead of x.
type Core[F any, R any] interface {
	*F

	Dereference() R
	Increment()
	Decrement()
	Advance(n int)
	Equal(other F) bool
	DistanceFrom(other F) int
	Categories() (ReturnCategory, TraversalCategory)
}

// Based is implemented by iterators that wrap a base iterator.
type Based[B any, R any, PB Core[B, R]] interface {
	Base() Facade[B, R, PB]
}
