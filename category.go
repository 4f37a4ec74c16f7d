package iterator

import "fmt"

// ReturnCategory describes what dereferencing an iterator gives back, and
// whether the result may be written through.
type ReturnCategory int

const (
	// Readable iterators return values that can be read but are not
	// addressable.
	Readable ReturnCategory = iota

	// Writable iterators accept values but cannot be read from.
	Writable

	// Swappable iterators can be both read from and written to, without
	// returning an addressable element.
	Swappable

	// ConstantLvalue iterators return an element of the underlying sequence
	// that must not be modified.
	ConstantLvalue

	// MutableLvalue iterators return an addressable element of the
	// underlying sequence.
	MutableLvalue
)

func (c ReturnCategory) String() string {
	switch c {
	default:
		return "unknown"
	case Readable:
		return "readable"
	case Writable:
		return "writable"
	case Swappable:
		return "swappable"
	case ConstantLvalue:
		return "constant lvalue"
	case MutableLvalue:
		return "mutable lvalue"
	}
}

// TraversalCategory describes the movements an iterator supports.  The
// categories are ordered: each of Forward, Bidirectional and RandomAccess
// supports everything the previous one does.
type TraversalCategory int

const (
	// InputTraversal iterators are single pass; copies are invalidated
	// once any one of them is incremented.
	InputTraversal TraversalCategory = iota

	// OutputTraversal iterators are single pass and write only.
	OutputTraversal

	// ForwardTraversal iterators are multi-pass and only move forward.
	ForwardTraversal

	// BidirectionalTraversal iterators can also be decremented.
	BidirectionalTraversal

	// RandomAccessTraversal iterators move by any offset in constant time.
	RandomAccessTraversal
)

func (t TraversalCategory) String() string {
	switch t {
	default:
		return "unknown"
	case InputTraversal:
		return "input"
	case OutputTraversal:
		return "output"
	case ForwardTraversal:
		return "forward"
	case BidirectionalTraversal:
		return "bidirectional"
	case RandomAccessTraversal:
		return "random access"
	}
}

// Includes reports whether an iterator with traversal t can be used where
// traversal other is required.
func (t TraversalCategory) Includes(other TraversalCategory) bool {
	if t == other {
		return true
	}

	switch other {
	case InputTraversal:
		return t != OutputTraversal
	case OutputTraversal:
		return false
	default:
		return t > other
	}
}

// Tag is the iterator category an adapted iterator advertises to the code
// consuming it.
type Tag int

const (
	InputTag Tag = iota
	OutputTag
	ForwardTag
	BidirectionalTag
	RandomAccessTag
)

func (t Tag) String() string {
	switch t {
	default:
		return "unknown"
	case InputTag:
		return "input"
	case OutputTag:
		return "output"
	case ForwardTag:
		return "forward"
	case BidirectionalTag:
		return "bidirectional"
	case RandomAccessTag:
		return "random access"
	}
}

// Category is the result of resolving a return and traversal category
// pair.  Tag is what the iterator promises; Traversal is what it can
// actually do, which is never less than Tag.  Return is the declared
// return category.
type Category struct {
	Tag       Tag
	Traversal TraversalCategory
	Return    ReturnCategory
}

// String returns a description such as "random access iterator" or, when
// the traversal is richer than the advertised tag, "bidirectional input
// iterator".
func (c Category) String() string {
	if c.Traversal.String() == c.Tag.String() {
		return c.Tag.String() + " iterator"
	}
	return fmt.Sprintf("%s %s iterator", c.Traversal, c.Tag)
}

// Readable reports whether dereferencing yields a value.
func (c Category) Readable() bool {
	return c.Return != Writable
}

// Writable reports whether values can be stored through the iterator.
func (c Category) Writable() bool {
	switch c.Return {
	case Writable, Swappable, MutableLvalue:
		return true
	}
	return false
}

// Bidirectional reports whether Decrement is supported.
func (c Category) Bidirectional() bool {
	return c.Traversal.Includes(BidirectionalTraversal)
}

// RandomAccess reports whether Advance and DistanceFrom run in constant
// time.
func (c Category) RandomAccess() bool {
	return c.Traversal == RandomAccessTraversal
}

type resolution struct {
	cat Category
	ok  bool
}

func resolved(tag Tag, t TraversalCategory) resolution {
	return resolution{Category{Tag: tag, Traversal: t}, true}
}

var incompatible = resolution{}

// categoryTable is indexed by [ReturnCategory][TraversalCategory].
var categoryTable = [...][5]resolution{
	Readable: {
		InputTraversal:         resolved(InputTag, InputTraversal),
		OutputTraversal:        incompatible,
		ForwardTraversal:       resolved(InputTag, ForwardTraversal),
		BidirectionalTraversal: resolved(InputTag, BidirectionalTraversal),
		RandomAccessTraversal:  resolved(InputTag, RandomAccessTraversal),
	},
	Writable: {
		InputTraversal:         incompatible,
		OutputTraversal:        resolved(OutputTag, OutputTraversal),
		ForwardTraversal:       incompatible,
		BidirectionalTraversal: incompatible,
		RandomAccessTraversal:  incompatible,
	},
	Swappable: {
		InputTraversal:         resolved(InputTag, InputTraversal),
		OutputTraversal:        resolved(OutputTag, OutputTraversal),
		ForwardTraversal:       resolved(InputTag, ForwardTraversal),
		BidirectionalTraversal: resolved(InputTag, BidirectionalTraversal),
		RandomAccessTraversal:  resolved(InputTag, RandomAccessTraversal),
	},
	ConstantLvalue: {
		InputTraversal:         resolved(InputTag, InputTraversal),
		OutputTraversal:        incompatible,
		ForwardTraversal:       resolved(ForwardTag, ForwardTraversal),
		BidirectionalTraversal: resolved(BidirectionalTag, BidirectionalTraversal),
		RandomAccessTraversal:  resolved(RandomAccessTag, RandomAccessTraversal),
	},
	MutableLvalue: {
		InputTraversal:         resolved(InputTag, InputTraversal),
		OutputTraversal:        resolved(OutputTag, OutputTraversal),
		ForwardTraversal:       resolved(ForwardTag, ForwardTraversal),
		BidirectionalTraversal: resolved(BidirectionalTag, BidirectionalTraversal),
		RandomAccessTraversal:  resolved(RandomAccessTag, RandomAccessTraversal),
	},
}

// ResolveCategory computes the category to advertise for an iterator with
// return category rc and traversal tc.  Non-lvalue iterators are degraded
// to the input tag while keeping their traversal.  Pairs that contradict
// each other, such as a read only iterator with output traversal, return a
// *CategoryError.
func ResolveCategory(rc ReturnCategory, tc TraversalCategory) (Category, error) {
	if rc < 0 || int(rc) >= len(categoryTable) || tc < 0 || int(tc) >= len(categoryTable[0]) {
		return Category{}, &CategoryError{Return: rc, Traversal: tc}
	}

	r := categoryTable[rc][tc]
	if !r.ok {
		return Category{}, &CategoryError{Return: rc, Traversal: tc}
	}

	c := r.cat
	c.Return = rc
	return c, nil
}

// MustResolveCategory is like ResolveCategory but panics if the pair
// cannot be resolved.  An unresolvable pair is a programming error in the
// iterator's declaration.
func MustResolveCategory(rc ReturnCategory, tc TraversalCategory) Category {
	c, err := ResolveCategory(rc, tc)
	if err != nil {
		panic(err)
	}
	return c
}
