package iterator

import "fmt"

// Every comparison is derived from the Equal and DistanceFrom primitives.
// The ordering comparisons always ask y how far x is from it, so an
// iterator with a correct DistanceFrom can never be both equal to and less
// than another.

// Equal reports whether x and y refer to the same position.
func Equal[F any, R any, PF Core[F, R]](x, y Facade[F, R, PF]) bool {
	return x.core().Equal(y.final)
}

// Compare returns -1 if x is before y, +1 if x is after y and 0 otherwise.
func Compare[F any, R any, PF Core[F, R]](x, y Facade[F, R, PF]) int {
	switch d := y.core().DistanceFrom(x.final); {
	case d < 0:
		return -1
	case d > 0:
		return +1
	default:
		return 0
	}
}

// Eq reports whether it and y refer to the same position.
func (it Facade[F, R, PF]) Eq(y Facade[F, R, PF]) bool {
	return Equal(it, y)
}

// Ne reports whether it and y refer to different positions.
func (it Facade[F, R, PF]) Ne(y Facade[F, R, PF]) bool {
	return !Equal(it, y)
}

// Less reports whether it is before y.
func (it Facade[F, R, PF]) Less(y Facade[F, R, PF]) bool {
	return y.core().DistanceFrom(it.final) < 0
}

// Greater reports whether it is after y.
func (it Facade[F, R, PF]) Greater(y Facade[F, R, PF]) bool {
	return y.core().DistanceFrom(it.final) > 0
}

// LessEq reports whether it is not after y.
func (it Facade[F, R, PF]) LessEq(y Facade[F, R, PF]) bool {
	return y.core().DistanceFrom(it.final) <= 0
}

// GreaterEq reports whether it is not before y.
func (it Facade[F, R, PF]) GreaterEq(y Facade[F, R, PF]) bool {
	return y.core().DistanceFrom(it.final) >= 0
}

// Interoperable is implemented by concrete iterators that can be compared
// with iterators of a different final type, such as a read only and a
// mutable iterator over the same sequence.  Both methods report ok=false
// when other is not a type they understand.  DistanceTo has the meaning
// of DistanceFrom: how far other is ahead of the receiver.
type Interoperable interface {
	EqualTo(other any) (equal bool, ok bool)
	DistanceTo(other any) (d int, ok bool)
}

// EqualAcross reports whether x and y, iterators of different final
// types, refer to the same position.  It panics if neither side
// implements Interoperable for the other.
func EqualAcross[F any, R any, PF Core[F, R], F2 any, R2 any, PF2 Core[F2, R2]](x Facade[F, R, PF], y Facade[F2, R2, PF2]) bool {
	if i, ok := any(x.core()).(Interoperable); ok {
		if eq, ok := i.EqualTo(y.final); ok {
			return eq
		}
	}
	if i, ok := any(y.core()).(Interoperable); ok {
		if eq, ok := i.EqualTo(x.final); ok {
			return eq
		}
	}
	panic(Unsupported(fmt.Sprintf("compare %T with %T", x.final, y.final)))
}

// CompareAcross is Compare for iterators of different final types.  Like
// the ordering comparisons it asks y how far x is from it first.
func CompareAcross[F any, R any, PF Core[F, R], F2 any, R2 any, PF2 Core[F2, R2]](x Facade[F, R, PF], y Facade[F2, R2, PF2]) int {
	d, ok := 0, false
	if i, isInterop := any(y.core()).(Interoperable); isInterop {
		d, ok = i.DistanceTo(x.final)
	}
	if !ok {
		if i, isInterop := any(x.core()).(Interoperable); isInterop {
			d, ok = i.DistanceTo(y.final)
			d = -d
		}
	}
	if !ok {
		panic(Unsupported(fmt.Sprintf("compare %T with %T", x.final, y.final)))
	}

	switch {
	case d < 0:
		return -1
	case d > 0:
		return +1
	default:
		return 0
	}
}
