package iterator_test

import (
	"fmt"
	"testing"

	"github.com/jake-scott/go-iterator"
	"github.com/jake-scott/go-iterator/iter/counting"
	"github.com/jake-scott/go-iterator/iter/slice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passthrough relies on every default the adaptor provides
type passthrough struct {
	iterator.Adaptor[passthrough, slice.Cursor[int], *int, *slice.Cursor[int]]
}

func (p passthrough) Dereference() *int {
	return p.Base().Deref()
}

var _ iterator.Based[slice.Cursor[int], *int, *slice.Cursor[int]] = passthrough{}

func newPassthrough(base slice.Iterator[int]) iterator.Facade[passthrough, *int, *passthrough] {
	return iterator.New[passthrough, *int](passthrough{iterator.Adapt[passthrough](base)})
}

// stride visits every step'th element and carries extra state that must
// survive copies made by the arithmetic operations
type stride struct {
	iterator.Adaptor[stride, slice.Cursor[int], *int, *slice.Cursor[int]]
	step  int
	label string
	seen  []string
}

func (s stride) Dereference() *int {
	return s.Base().Deref()
}

func (s *stride) Increment() {
	s.BaseRef().AddAssign(s.step)
}

func (s *stride) Decrement() {
	s.BaseRef().SubAssign(s.step)
}

func (s *stride) Advance(n int) {
	s.BaseRef().AddAssign(n * s.step)
}

func (s *stride) DistanceFrom(other stride) int {
	return s.Adaptor.DistanceFrom(other) / s.step
}

func newStride(base slice.Iterator[int], step int, label string) iterator.Facade[stride, *int, *stride] {
	return iterator.New[stride, *int](stride{
		Adaptor: iterator.Adapt[stride](base),
		step:    step,
		label:   label,
		seen:    []string{label},
	})
}

var _fourInts = []int{1, 2, 3, 4}

func TestEquality(t *testing.T) {
	assert := assert.New(t)

	a := slice.At(_fourInts, 1)
	b := slice.At(_fourInts, 1)
	c := slice.At(_fourInts, 2)

	for _, tt := range []struct {
		x, y slice.Iterator[int]
	}{{a, b}, {a, c}, {b, c}, {c, c}} {
		assert.Equal(tt.x.Final().Equal(tt.y.Value()), tt.x.Eq(tt.y))
		assert.Equal(!tt.x.Eq(tt.y), tt.x.Ne(tt.y))
		assert.Equal(tt.x.Eq(tt.y), iterator.Equal(tt.x, tt.y))
	}

	assert.True(a.Eq(b))
	assert.True(a.Ne(c))
}

func TestOrdering(t *testing.T) {
	for i := 0; i <= len(_fourInts); i++ {
		for j := 0; j <= len(_fourInts); j++ {
			a := slice.At(_fourInts, i)
			b := slice.At(_fourInts, j)

			t.Run(fmt.Sprintf("%d-%d", i, j), func(t *testing.T) {
				assert := assert.New(t)

				assert.Equal(b.Final().DistanceFrom(a.Value()) < 0, a.Less(b))
				assert.Equal(i < j, a.Less(b))
				assert.Equal(i > j, a.Greater(b))
				assert.Equal(a.Less(b) || a.Eq(b), a.LessEq(b))
				assert.Equal(a.Greater(b) || a.Eq(b), a.GreaterEq(b))
				assert.False(a.Less(b) && a.Eq(b))

				switch {
				case i < j:
					assert.Equal(-1, iterator.Compare(a, b))
				case i > j:
					assert.Equal(+1, iterator.Compare(a, b))
				default:
					assert.Equal(0, iterator.Compare(a, b))
				}
			})
		}
	}
}

func TestArithmetic(t *testing.T) {
	assert := assert.New(t)

	i := slice.At(_fourInts, 1)
	for n := -1; n <= 2; n++ {
		assert.True(i.Add(n).Sub(n).Eq(i), "round trip %d", n)
		assert.Equal(n, i.Add(n).Diff(i))
		assert.Equal(n, iterator.Distance(iterator.AddTo(n, i), i))
		assert.True(iterator.Add(i, n).Eq(iterator.AddTo(n, i)))
	}

	// the operands of Add are left alone
	assert.Equal(1, i.Value().Pos())

	assert.Equal(3, *i.At(1))
	assert.Equal(1, *i.At(-1))
	assert.Equal(2, *iterator.Next(iterator.Prior(i)).Deref())

	j := i
	j.AddAssign(2).SubAssign(1)
	assert.Equal(2, j.Value().Pos())
	assert.Equal(1, j.Diff(i))
	assert.Equal(-1, i.Diff(j))
}

func TestIncrementDecrement(t *testing.T) {
	assert := assert.New(t)

	i := slice.Begin(_fourInts)
	old := i

	tmp := i.PostInc()
	assert.True(tmp.Eq(old))
	assert.True(i.Eq(iterator.Next(old)))
	assert.Equal(1, *tmp.Deref())
	assert.Equal(2, *i.Deref())

	assert.Equal(3, *i.Inc().Deref())

	old = i
	tmp = i.PostDec()
	assert.True(tmp.Eq(old))
	assert.True(i.Eq(iterator.Prior(old)))
	assert.Equal(1, *i.Dec().Deref())
}

func TestWriteThroughDeref(t *testing.T) {
	assert := assert.New(t)

	s := []int{1, 2, 3}
	for it := slice.Begin(s); it.Ne(slice.End(s)); it.Inc() {
		*it.Deref() *= 10
	}
	assert.Equal([]int{10, 20, 30}, s)
}

func TestAdaptorDefaults(t *testing.T) {
	assert := assert.New(t)

	x := newPassthrough(slice.At(_fourInts, 0))
	y := newPassthrough(slice.At(_fourInts, 3))

	// y.DistanceFrom(x) is x's base minus y's base
	assert.Equal(-3, y.Final().DistanceFrom(x.Value()))
	assert.Equal(3, x.Final().DistanceFrom(y.Value()))
	assert.Equal(3, y.Diff(x))
	assert.True(x.Less(y))

	x.Inc()
	assert.Equal(2, *x.Deref())
	x.AddAssign(2)
	assert.True(x.Eq(y))
	x.Dec()
	assert.Equal(3, *x.Deref())
	assert.Equal(2, x.Value().Base().Value().Pos())

	rc, tc := x.Categories()
	assert.Equal(iterator.MutableLvalue, rc)
	assert.Equal(iterator.RandomAccessTraversal, tc)
}

func TestAdaptorOverrides(t *testing.T) {
	assert := assert.New(t)

	s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	it := newStride(slice.Begin(s), 3, "threes")

	assert.Equal(3, *it.Inc().Deref())
	assert.Equal(6, *it.At(1))
	assert.Equal(0, *it.Sub(1).Deref())

	end := newStride(slice.At(s, 9), 3, "end")
	assert.Equal(2, end.Diff(it))
	assert.Equal(-2, it.Diff(end))

	var got []int
	for v := range iterator.MakeRange(newStride(slice.Begin(s), 3, "all"), end).All() {
		got = append(got, *v)
	}
	assert.Equal([]int{0, 3, 6}, got)
}

func TestArithmeticKeepsFinalState(t *testing.T) {
	assert := assert.New(t)

	s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	it := newStride(slice.Begin(s), 2, "evens")

	for _, moved := range []iterator.Facade[stride, *int, *stride]{
		iterator.Add(it, 2),
		iterator.AddTo(2, it),
		it.Add(2),
		iterator.Add(it, 4).Sub(2),
	} {
		v := moved.Value()
		assert.Equal(2, v.step)
		assert.Equal("evens", v.label)
		assert.Equal([]string{"evens"}, v.seen)
		assert.Equal(4, *moved.Deref())
	}

	post := it
	snapshot := post.PostInc()
	assert.Equal("evens", snapshot.Value().label)
	assert.Equal(2, snapshot.Value().step)
}

type misdeclared struct {
	iterator.Adaptor[int, slice.Cursor[int], *int, *slice.Cursor[int]]
}

func TestAdaptorWrongFinalType(t *testing.T) {
	m := misdeclared{iterator.Adapt[int](slice.Begin(_fourInts))}

	assert.Panics(t, func() { m.Equal(1) })
	assert.Panics(t, func() { m.DistanceFrom(1) })
}

func TestCategoryOfFacade(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("random access iterator", slice.Begin(_fourInts).Category().String())
	assert.Equal("random access input iterator", counting.From(0).Category().String())
}

func TestDescriptorOfFacade(t *testing.T) {
	assert := assert.New(t)

	d := slice.Begin(_fourInts).Descriptor()
	assert.Equal("int", d.Value.String())
	assert.Equal("*int", d.Reference.String())
	assert.Equal("*int", d.Pointer.String())
	assert.Equal("int", d.Distance.String())
	assert.Equal(iterator.RandomAccessTag, d.Category.Tag)

	d = slice.Const(slice.Begin(_fourInts)).Descriptor()
	assert.Equal("int", d.Value.String())
	assert.Equal("int", d.Reference.String())
	assert.Equal(iterator.ConstantLvalue, d.Return)

	d = counting.From(uint8(3)).Descriptor()
	assert.Equal("uint8", d.Value.String())
	assert.Equal(iterator.InputTag, d.Category.Tag)
	assert.Equal(iterator.RandomAccessTraversal, d.Category.Traversal)

	d2, err := iterator.Describe[string, *string](iterator.MutableLvalue, iterator.ForwardTraversal)
	require.NoError(t, err)
	assert.Equal("*string", d2.Pointer.String())
	assert.Equal(iterator.Category{Tag: iterator.ForwardTag, Traversal: iterator.ForwardTraversal, Return: iterator.MutableLvalue}, d2.Category)

	_, err = iterator.Describe[string, string](iterator.Readable, iterator.OutputTraversal)
	assert.ErrorIs(err, iterator.ErrIncompatibleCategory)
}
