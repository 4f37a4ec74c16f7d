package iterator

import "fmt"

// Adaptor is embedded by concrete iterators that wrap a base iterator.  It
// owns the base by value and supplies default primitives that forward to
// it, so the embedding type only defines the operations whose meaning it
// changes.  Dereference has no default.
//
// F must be the type that embeds the Adaptor:
//
//	type stride struct {
//		iterator.Adaptor[stride, slice.Cursor[int], *int, *slice.Cursor[int]]
//		step int
//	}
//
// Embedding an Adaptor whose F is any other type makes Equal and
// DistanceFrom panic.
type Adaptor[F any, B any, R any, PB Core[B, R]] struct {
	base Facade[B, R, PB]
}

// Adapt returns an Adaptor over base, for embedding in F.
func Adapt[F any, B any, R any, PB Core[B, R]](base Facade[B, R, PB]) Adaptor[F, B, R, PB] {
	return Adaptor[F, B, R, PB]{base: base}
}

// Base returns a copy of the base iterator.
func (a Adaptor[F, B, R, PB]) Base() Facade[B, R, PB] {
	return a.base
}

// BaseRef returns the base iterator itself, for use by overriding
// primitives.
func (a *Adaptor[F, B, R, PB]) BaseRef() *Facade[B, R, PB] {
	return &a.base
}

// Increment moves the base iterator forward.
func (a *Adaptor[F, B, R, PB]) Increment() {
	a.base.Inc()
}

// Decrement moves the base iterator back.
func (a *Adaptor[F, B, R, PB]) Decrement() {
	a.base.Dec()
}

// Advance moves the base iterator n positions.
func (a *Adaptor[F, B, R, PB]) Advance(n int) {
	a.base.AddAssign(n)
}

// Equal reports whether the base iterators are equal.
func (a *Adaptor[F, B, R, PB]) Equal(other F) bool {
	return Equal(a.base, peer[F, B, R, PB](&other).base)
}

// DistanceFrom returns how far the base of other is ahead of this base.
func (a *Adaptor[F, B, R, PB]) DistanceFrom(other F) int {
	return Distance(peer[F, B, R, PB](&other).base, a.base)
}

// Categories returns the categories of the base iterator.
func (a Adaptor[F, B, R, PB]) Categories() (ReturnCategory, TraversalCategory) {
	return a.base.Categories()
}

// EqualTo compares the base with the base of other, an adapted iterator
// of another final type.  ok is false unless the base implements
// Interoperable and accepts the other base.
func (a *Adaptor[F, B, R, PB]) EqualTo(other any) (equal bool, ok bool) {
	o, isAdapted := other.(baseHolder)
	if !isAdapted {
		return false, false
	}
	if b, isInterop := any(a.base.core()).(Interoperable); isInterop {
		return b.EqualTo(o.baseValue())
	}
	return false, false
}

// DistanceTo returns how far the base of other, an adapted iterator of
// another final type, is ahead of this base.  Adaptors that override
// DistanceFrom should override DistanceTo to match.
func (a *Adaptor[F, B, R, PB]) DistanceTo(other any) (d int, ok bool) {
	o, isAdapted := other.(baseHolder)
	if !isAdapted {
		return 0, false
	}
	if b, isInterop := any(a.base.core()).(Interoperable); isInterop {
		return b.DistanceTo(o.baseValue())
	}
	return 0, false
}

func (a Adaptor[F, B, R, PB]) baseValue() any {
	return a.base.final
}

type baseHolder interface {
	baseValue() any
}

func (a *Adaptor[F, B, R, PB]) adaptor() *Adaptor[F, B, R, PB] {
	return a
}

type adapted[F any, B any, R any, PB Core[B, R]] interface {
	adaptor() *Adaptor[F, B, R, PB]
}

// peer finds the Adaptor embedded in f.
func peer[F any, B any, R any, PB Core[B, R]](f *F) *Adaptor[F, B, R, PB] {
	a, ok := any(f).(adapted[F, B, R, PB])
	if !ok {
		panic(fmt.Sprintf("iterator: %T does not embed %T", f, (*Adaptor[F, B, R, PB])(nil)))
	}
	return a.adaptor()
}
