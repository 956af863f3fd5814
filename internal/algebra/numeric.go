package algebra

import "golang.org/x/exp/constraints"

// Integer is the group of a built-in integer type. Arithmetic wraps on overflow.
type Integer[T constraints.Integer] struct{}

var _ Ordered[int64] = Integer[int64]{}

func (Integer[T]) Zero() T              { return 0 }
func (Integer[T]) Add(a, b T) T         { return a + b }
func (Integer[T]) Sub(a, b T) T         { return a - b }
func (Integer[T]) Neg(a T) T            { return -a }
func (Integer[T]) Scale(a T, k int64) T { return a * T(k) }

func (Integer[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Float is the group of a built-in floating point type. Sums accumulate
// rounding error, so results are only approximately associative.
type Float[T constraints.Float] struct{}

var _ Ordered[float64] = Float[float64]{}

func (Float[T]) Zero() T              { return 0 }
func (Float[T]) Add(a, b T) T         { return a + b }
func (Float[T]) Sub(a, b T) T         { return a - b }
func (Float[T]) Neg(a T) T            { return -a }
func (Float[T]) Scale(a T, k int64) T { return a * T(k) }

func (Float[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
