// Package algebra describes the value types a prefix-sum index can hold.
//
// An index only needs its values to form a commutative group under addition,
// plus multiplication by an integer scalar. Go's built-in numbers cannot carry
// methods, so the operations live on a separate Group value that is handed to
// the index at construction time.
package algebra

// Group is the set of operations an index performs on its values.
type Group[T any] interface {
	// Zero returns the identity element.
	Zero() T
	Add(a, b T) T
	Sub(a, b T) T
	Neg(a T) T
	// Scale returns a added to itself k times (k may be negative or zero).
	Scale(a T, k int64) T
}

// Ordered is a Group whose values can be compared. Cumulative searches need it.
type Ordered[T any] interface {
	Group[T]
	// Compare returns -1, 0 or +1 as a is less than, equal to, or greater than b.
	Compare(a, b T) int
}
