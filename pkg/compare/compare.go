package compare

// NilCheck handles the nil cases of a pointer comparison. When done is false, equal
// holds the result: both nil are equal, one nil is not. When done is true both pointers
// are set and the caller must compare their contents.
func NilCheck[T any](a, b *T) (equal bool, done bool) {
	switch {
	case a == nil && b == nil:
		return true, false
	case a == nil || b == nil:
		return false, false
	default:
		return false, true
	}
}

// PointersWithEqual compares two pointers using equalFunc once both are non-nil.
func PointersWithEqual[T any](a, b *T, equalFunc func(*T, *T) bool) bool {
	if eq, done := NilCheck(a, b); !done {
		return eq
	}
	return equalFunc(a, b)
}

// Slices reports whether a and b have the same length and equal elements in order.
func Slices[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalFunc(a[i], b[i]) {
			return false
		}
	}
	return true
}
