package iterator

// CheckedCursor adapts a base iterator so that moving it outside of the
// range it was created for, or dereferencing it at the end of that range,
// panics with a *RangeError instead of reaching the base iterator.
//
// The base must be at least a forward iterator; positions are measured
// with DistanceFrom.
type CheckedCursor[B any, R any, PB Core[B, R]] struct {
	Adaptor[CheckedCursor[B, R, PB], B, R, PB]
	first Facade[B, R, PB]
	size  int
}

// CheckedIterator is the facade over a CheckedCursor.
type CheckedIterator[B any, R any, PB Core[B, R]] = Facade[CheckedCursor[B, R, PB], R, *CheckedCursor[B, R, PB]]

// Checked returns a checked iterator at position at of the range r.  It
// panics if at is not within [r.First, r.Last].
func Checked[B any, R any, PB Core[B, R]](r Range[B, R, PB], at Facade[B, R, PB]) CheckedIterator[B, R, PB] {
	c := CheckedCursor[B, R, PB]{
		Adaptor: Adapt[CheckedCursor[B, R, PB]](at),
		first:   r.First,
		size:    r.Len(),
	}
	if err := c.Check(); err != nil {
		panic(err)
	}

	return New[CheckedCursor[B, R, PB], R](c)
}

// CheckedRange returns r with both ends wrapped in checked iterators.
func CheckedRange[B any, R any, PB Core[B, R]](r Range[B, R, PB]) Range[CheckedCursor[B, R, PB], R, *CheckedCursor[B, R, PB]] {
	return MakeRange(Checked(r, r.First), Checked(r, r.Last))
}

// Pos returns the position of the iterator relative to the start of its
// range.
func (c CheckedCursor[B, R, PB]) Pos() int {
	return Distance(c.base, c.first)
}

// Len returns the length of the iterator's range.
func (c CheckedCursor[B, R, PB]) Len() int {
	return c.size
}

// Check returns a *RangeError if the iterator is outside of its range.
// The end position is inside the range.
func (c CheckedCursor[B, R, PB]) Check() error {
	if pos := c.Pos(); pos < 0 || pos > c.size {
		return &RangeError{Op: "check", Pos: pos, Len: c.size}
	}
	return nil
}

func (c CheckedCursor[B, R, PB]) Dereference() R {
	if pos := c.Pos(); pos < 0 || pos >= c.size {
		panic(&RangeError{Op: "dereference", Pos: pos, Len: c.size})
	}
	return c.base.Deref()
}

func (c *CheckedCursor[B, R, PB]) Increment() {
	c.Advance(1)
}

func (c *CheckedCursor[B, R, PB]) Decrement() {
	c.Advance(-1)
}

func (c *CheckedCursor[B, R, PB]) Advance(n int) {
	op := "advance"
	switch n {
	case 1:
		op = "increment"
	case -1:
		op = "decrement"
	}

	if pos := c.Pos() + n; pos < 0 || pos > c.size {
		panic(&RangeError{Op: op, Pos: pos, Len: c.size})
	}

	switch n {
	case 1:
		c.base.Inc()
	case -1:
		c.base.Dec()
	default:
		c.base.AddAssign(n)
	}
}
