package iterator

// Facade provides the complete operator surface of an iterator on top of
// the primitive operations of its final type F.  A Facade owns its F by
// value: copying a Facade copies the whole concrete iterator.
//
// Method names map onto the usual iterator operators:
//
//	Deref      *i
//	At         i[n]
//	Inc        ++i      PostInc   i++
//	Dec        --i      PostDec   i--
//	AddAssign  i += n   SubAssign i -= n
//	Add        i + n    Sub       i - n
//	Diff       i - j
//	Eq, Ne, Less, Greater, LessEq, GreaterEq
type Facade[F any, R any, PF Core[F, R]] struct {
	final F
}

// New wraps the concrete iterator f.  R is the type Dereference returns.
func New[F any, R any, PF Core[F, R]](f F) Facade[F, R, PF] {
	return Facade[F, R, PF]{final: f}
}

// Final returns a pointer to the concrete iterator held by the facade.
func (it *Facade[F, R, PF]) Final() *F {
	return &it.final
}

// Value returns a copy of the concrete iterator.
func (it Facade[F, R, PF]) Value() F {
	return it.final
}

func (it *Facade[F, R, PF]) core() PF {
	return PF(&it.final)
}

// Deref returns the element the iterator refers to.
func (it Facade[F, R, PF]) Deref() R {
	return it.core().Dereference()
}

// At returns the element n positions away from the iterator.
func (it Facade[F, R, PF]) At(n int) R {
	return Add(it, n).Deref()
}

// Inc moves the iterator forward one position and returns it.
func (it *Facade[F, R, PF]) Inc() *Facade[F, R, PF] {
	it.core().Increment()
	return it
}

// PostInc moves the iterator forward one position and returns a copy of
// the iterator taken before it moved.
func (it *Facade[F, R, PF]) PostInc() Facade[F, R, PF] {
	tmp := *it
	it.Inc()
	return tmp
}

// Dec moves the iterator back one position and returns it.
func (it *Facade[F, R, PF]) Dec() *Facade[F, R, PF] {
	it.core().Decrement()
	return it
}

// PostDec moves the iterator back one position and returns a copy of the
// iterator taken before it moved.
func (it *Facade[F, R, PF]) PostDec() Facade[F, R, PF] {
	tmp := *it
	it.Dec()
	return tmp
}

// AddAssign moves the iterator n positions and returns it.
func (it *Facade[F, R, PF]) AddAssign(n int) *Facade[F, R, PF] {
	it.core().Advance(n)
	return it
}

// SubAssign moves the iterator -n positions and returns it.
func (it *Facade[F, R, PF]) SubAssign(n int) *Facade[F, R, PF] {
	it.core().Advance(-n)
	return it
}

// Add returns a copy of the iterator moved n positions.
func (it Facade[F, R, PF]) Add(n int) Facade[F, R, PF] {
	return Add(it, n)
}

// Sub returns a copy of the iterator moved -n positions.
func (it Facade[F, R, PF]) Sub(n int) Facade[F, R, PF] {
	result := it
	result.SubAssign(n)
	return result
}

// Diff returns how far the iterator is ahead of j.
func (it Facade[F, R, PF]) Diff(j Facade[F, R, PF]) int {
	return Distance(it, j)
}

// Categories returns the categories declared by the concrete iterator.
func (it Facade[F, R, PF]) Categories() (ReturnCategory, TraversalCategory) {
	return it.core().Categories()
}

// Category returns the resolved category of the concrete iterator.  It
// panics if the concrete iterator declares an incompatible pair.
func (it Facade[F, R, PF]) Category() Category {
	return MustResolveCategory(it.Categories())
}
