// Package naive is a plain-array implementation of the prefix-sum index
// operations. Every operation is O(n); it exists to cross-check the
// Fenwick trees.
package naive

import (
	"fmt"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/algebra"
)

// Array holds A[1..n] directly.
type Array[T any] struct {
	values []T
	g      algebra.Group[T]
}

// New returns an array of size elements set to the identity.
func New[T any](size int, g algebra.Group[T]) *Array[T] {
	values := make([]T, size)
	for i := range values {
		values[i] = g.Zero()
	}
	return &Array[T]{values: values, g: g}
}

func (a *Array[T]) Size() int {
	return len(a.values)
}

// Update adds val to A[idx].
func (a *Array[T]) Update(idx int, val T) {
	a.values[idx-1] = a.g.Add(a.values[idx-1], val)
}

// UpdateRange adds val to A[from..to].
func (a *Array[T]) UpdateRange(from, to int, val T) {
	for i := from; i <= to; i++ {
		a.Update(i, val)
	}
}

// Set assigns A[idx] = val.
func (a *Array[T]) Set(idx int, val T) {
	a.values[idx-1] = val
}

// Scale multiplies every element by factor.
func (a *Array[T]) Scale(factor int64) {
	for i, v := range a.values {
		a.values[i] = a.g.Scale(v, factor)
	}
}

// Query returns A[1] + ... + A[idx].
func (a *Array[T]) Query(idx int) T {
	sum := a.g.Zero()
	for _, v := range a.values[:idx] {
		sum = a.g.Add(sum, v)
	}
	return sum
}

// ReadSingle returns A[idx].
func (a *Array[T]) ReadSingle(idx int) T {
	return a.values[idx-1]
}

// RangeSum returns A[from] + ... + A[to].
func (a *Array[T]) RangeSum(from, to int) T {
	sum := a.g.Zero()
	for _, v := range a.values[from-1 : to] {
		sum = a.g.Add(sum, v)
	}
	return sum
}

// GetIndex scans for the greatest i with A[1] + ... + A[i] <= cumulative. It
// returns 0 when no prefix fits.
func (a *Array[T]) GetIndex(cumulative T) (int, error) {
	g, ok := a.g.(algebra.Ordered[T])
	if !ok {
		return 0, fmt.Errorf("naive: value group is not ordered")
	}
	best := 0
	sum := g.Zero()
	for i, v := range a.values {
		sum = g.Add(sum, v)
		if g.Compare(sum, cumulative) <= 0 {
			best = i + 1
		}
	}
	return best, nil
}

// Values returns a copy of A[1..n].
func (a *Array[T]) Values() []T {
	out := make([]T, len(a.values))
	copy(out, a.values)
	return out
}

// Prefix returns every prefix sum S(1..n).
func (a *Array[T]) Prefix() []T {
	out := make([]T, len(a.values))
	sum := a.g.Zero()
	for i, v := range a.values {
		sum = a.g.Add(sum, v)
		out[i] = sum
	}
	return out
}
