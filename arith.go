package iterator

// The arithmetic helpers take and return whole facades.  The copy made
// before moving is always of the final type, including any state the
// concrete iterator carries beyond its position.

// Add returns a copy of i moved n positions (i + n).
func Add[F any, R any, PF Core[F, R]](i Facade[F, R, PF], n int) Facade[F, R, PF] {
	tmp := New[F, R, PF](i.final)
	tmp.AddAssign(n)
	return tmp
}

// AddTo is Add with the operands swapped (n + i).
func AddTo[F any, R any, PF Core[F, R]](n int, i Facade[F, R, PF]) Facade[F, R, PF] {
	return Add(i, n)
}

// Distance returns how far i is ahead of j (i - j).
func Distance[F any, R any, PF Core[F, R]](i, j Facade[F, R, PF]) int {
	return j.core().DistanceFrom(i.final)
}

// Next returns a copy of i moved forward one position.
func Next[F any, R any, PF Core[F, R]](i Facade[F, R, PF]) Facade[F, R, PF] {
	i.Inc()
	return i
}

// Prior returns a copy of i moved back one position.
func Prior[F any, R any, PF Core[F, R]](i Facade[F, R, PF]) Facade[F, R, PF] {
	i.Dec()
	return i
}
