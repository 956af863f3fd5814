package fenwick

import (
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/algebra"
)

// RangeTree is a prefix-sum index over A[1..size] that adds a value to a
// whole range in O(log n).
//
// Let S(i) = A[1] + ... + A[i]. Adding x to A[l..r] changes S(i) by
//
//	0                         for i < l
//	x*i - x*(l-1)             for l <= i <= r
//	x*(r-l+1)                 for i > r
//
// Every case is a linear function of i, so S(i) is kept as
// mul.Query(i)*i + add.Query(i) and a range update becomes four point
// updates on the coefficient trees. The middle and last forms agree at
// i = r, so the closing pair of updates lands on r itself.
//
// Reference: http://petr-mitrichev.blogspot.com/2013/05/fenwick-tree-range-updates.html
type RangeTree[T any] struct {
	size int
	mul  *Tree[T]
	add  *Tree[T]
	g    algebra.Group[T]
}

// NewRange creates a range tree of the given size with every element set to
// the group identity.
func NewRange[T any](size int, g algebra.Group[T]) (*RangeTree[T], error) {
	mul, err := New(size, g)
	if err != nil {
		return nil, err
	}
	add, err := New(size, g)
	if err != nil {
		return nil, err
	}
	return &RangeTree[T]{
		size: size,
		mul:  mul,
		add:  add,
		g:    g,
	}, nil
}

// Size returns the number of elements.
func (r *RangeTree[T]) Size() int {
	return r.size
}

// Group returns the value group the tree was built with.
func (r *RangeTree[T]) Group() algebra.Group[T] {
	return r.g
}

// Update adds val to A[idx].
func (r *RangeTree[T]) Update(idx int, val T) error {
	if err := r.mul.checkIndex(idx); err != nil {
		return err
	}
	return r.UpdateRange(idx, idx, val)
}

// UpdateRange adds val to every element of A[from..to].
func (r *RangeTree[T]) UpdateRange(from, to int, val T) error {
	if err := r.mul.checkRange(from, to); err != nil {
		return err
	}
	g := r.g
	// The range is valid for both trees, so none of these can fail.
	_ = r.mul.Update(from, val)
	_ = r.add.Update(from, g.Scale(val, -int64(from-1)))
	_ = r.mul.Update(to, g.Neg(val))
	_ = r.add.Update(to, g.Scale(val, int64(to)))
	return nil
}

// Query returns the prefix sum A[1] + ... + A[idx].
func (r *RangeTree[T]) Query(idx int) (T, error) {
	if err := r.mul.checkIndex(idx); err != nil {
		return r.g.Zero(), err
	}
	return r.query(idx), nil
}

func (r *RangeTree[T]) query(idx int) T {
	return r.g.Add(r.g.Scale(r.mul.query(idx), int64(idx)), r.add.query(idx))
}

// ReadSingle returns A[idx].
func (r *RangeTree[T]) ReadSingle(idx int) (T, error) {
	if err := r.mul.checkIndex(idx); err != nil {
		return r.g.Zero(), err
	}
	if idx == 1 {
		return r.query(1), nil
	}
	return r.g.Sub(r.query(idx), r.query(idx-1)), nil
}

// RangeSum returns A[from] + ... + A[to].
func (r *RangeTree[T]) RangeSum(from, to int) (T, error) {
	if err := r.mul.checkRange(from, to); err != nil {
		return r.g.Zero(), err
	}
	if from == 1 {
		return r.query(to), nil
	}
	return r.g.Sub(r.query(to), r.query(from-1)), nil
}

// Coefficients returns mul.Query(idx) and add.Query(idx), the slope and
// offset whose combination gives the prefix sum at idx.
func (r *RangeTree[T]) Coefficients(idx int) (mul, add T, err error) {
	if err := r.mul.checkIndex(idx); err != nil {
		return r.g.Zero(), r.g.Zero(), err
	}
	return r.mul.query(idx), r.add.query(idx), nil
}
