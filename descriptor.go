package iterator

import "reflect"

// Descriptor bundles the associated types and categories of an iterator.
type Descriptor struct {
	Value     reflect.Type
	Reference reflect.Type
	Pointer   reflect.Type
	Distance  reflect.Type

	Return    ReturnCategory
	Traversal TraversalCategory
	Category  Category
}

// Describe returns the descriptor of an iterator over values of type V
// whose Dereference returns R.
func Describe[V any, R any](rc ReturnCategory, tc TraversalCategory) (Descriptor, error) {
	cat, err := ResolveCategory(rc, tc)
	if err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		Value:     reflect.TypeFor[V](),
		Reference: reflect.TypeFor[R](),
		Pointer:   reflect.TypeFor[*V](),
		Distance:  reflect.TypeFor[int](),
		Return:    rc,
		Traversal: tc,
		Category:  cat,
	}, nil
}

// Descriptor returns the descriptor of the iterator.  The value type is
// the element type of R for lvalue iterators returning pointers and R
// itself otherwise.
func (it Facade[F, R, PF]) Descriptor() Descriptor {
	rc, tc := it.Categories()

	ref := reflect.TypeFor[R]()
	value := ref
	if (rc == ConstantLvalue || rc == MutableLvalue) && ref.Kind() == reflect.Pointer {
		value = ref.Elem()
	}

	return Descriptor{
		Value:     value,
		Reference: ref,
		Pointer:   reflect.PointerTo(value),
		Distance:  reflect.TypeFor[int](),
		Return:    rc,
		Traversal: tc,
		Category:  MustResolveCategory(rc, tc),
	}
}
