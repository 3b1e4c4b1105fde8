package grove

// Equal reports whether two groves hold the same structure and the same
// values. Records are compared pairwise in storage order; two records match
// when their values and their widths are equal, so equal groves agree on
// shape, not just on the flattened value sequence.
func Equal[T comparable](a, b Grove[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq, allowing groves over
// different value types to be compared.
func EqualFunc[S, T any](a Grove[S], b Grove[T], eq func(S, T) bool) bool {
	if len(a.nodes) != len(b.nodes) {
		return false
	}
	for i := range a.nodes {
		if a.nodes[i].width != b.nodes[i].width || !eq(a.nodes[i].value, b.nodes[i].value) {
			return false
		}
	}
	return true
}

// TreeEqual reports whether two trees hold the same structure and the same
// values, compared like Equal.
func TreeEqual[T comparable](a, b Tree[T]) bool {
	return Equal(a.AsGrove(), b.AsGrove())
}

// TreeEqualFunc is like TreeEqual but compares values with eq.
func TreeEqualFunc[S, T any](a Tree[S], b Tree[T], eq func(S, T) bool) bool {
	return EqualFunc(a.AsGrove(), b.AsGrove(), eq)
}
