// Package fenwick provides prefix-sum indexes over an additive group.
//
// A Fenwick tree, or binary indexed tree, keeps the prefix sums of an array
// A[1..n] without storing them. Slot i of the backing slice holds the sum of
// the lowbit(i) elements ending at i, where lowbit(i) = i & -i. A prefix sum
// is the total of the slots visited by repeatedly clearing the lowest set
// bit of the index, and a point update touches the slots reached by
// repeatedly adding it. Both walks take O(log n) steps.
//
// Tree supports point updates with prefix-sum queries. RangeTree composes two
// Trees to support range updates with prefix-sum queries.
//
// Indexes are 1-based throughout. Neither structure is safe for concurrent
// use.
package fenwick

import (
	"fmt"
	"math/bits"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/algebra"
)

// Tree is a prefix-sum index over A[1..size].
type Tree[T any] struct {
	size int
	// tree[0] is unused; tree[i] = A[i-lowbit(i)+1] + ... + A[i].
	tree []T
	g    algebra.Group[T]
}

func lowbit(i int) int {
	return i & -i
}

// New creates a tree of the given size with every element set to the group
// identity.
func New[T any](size int, g algebra.Group[T]) (*Tree[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size=%d", ErrInvalidSize, size)
	}
	tree := make([]T, size+1)
	for i := range tree {
		tree[i] = g.Zero()
	}
	return &Tree[T]{
		size: size,
		tree: tree,
		g:    g,
	}, nil
}

// NewFrom creates a tree holding the given elements, A[i] = values[i-1].
// It runs in O(n), where n successive updates would take O(n log n).
func NewFrom[T any](g algebra.Group[T], values ...T) (*Tree[T], error) {
	t, err := New(len(values), g)
	if err != nil {
		return nil, err
	}
	for i := 1; i <= t.size; i++ {
		t.tree[i] = g.Add(t.tree[i], values[i-1])
		if j := i + lowbit(i); j <= t.size {
			t.tree[j] = g.Add(t.tree[j], t.tree[i])
		}
	}
	return t, nil
}

// Size returns the number of elements.
func (t *Tree[T]) Size() int {
	return t.size
}

// Group returns the value group the tree was built with.
func (t *Tree[T]) Group() algebra.Group[T] {
	return t.g
}

func (t *Tree[T]) checkIndex(idx int) error {
	if idx < 1 || idx > t.size {
		return fmt.Errorf("%w: idx=%d, size=%d", ErrIndexOutOfRange, idx, t.size)
	}
	return nil
}

func (t *Tree[T]) checkRange(from, to int) error {
	if from < 1 || from > to || to > t.size {
		return fmt.Errorf("%w: from=%d, to=%d, size=%d", ErrInvalidRange, from, to, t.size)
	}
	return nil
}

// Update adds val to A[idx], and therefore to every prefix sum from idx on.
func (t *Tree[T]) Update(idx int, val T) error {
	if err := t.checkIndex(idx); err != nil {
		return err
	}
	for ; idx <= t.size; idx += lowbit(idx) {
		t.tree[idx] = t.g.Add(t.tree[idx], val)
	}
	return nil
}

// Query returns the prefix sum A[1] + ... + A[idx]. Query(0) is the empty sum.
func (t *Tree[T]) Query(idx int) (T, error) {
	if idx != 0 {
		if err := t.checkIndex(idx); err != nil {
			return t.g.Zero(), err
		}
	}
	return t.query(idx), nil
}

func (t *Tree[T]) query(idx int) T {
	sum := t.g.Zero()
	for ; idx > 0; idx -= lowbit(idx) {
		sum = t.g.Add(sum, t.tree[idx])
	}
	return sum
}

// ReadSingle returns A[idx].
//
// Rather than subtracting two full prefix sums, it starts from tree[idx] and
// removes the slots between idx-1 and the start of the range tree[idx]
// covers, which is where the two query walks would meet.
func (t *Tree[T]) ReadSingle(idx int) (T, error) {
	if err := t.checkIndex(idx); err != nil {
		return t.g.Zero(), err
	}
	return t.readSingle(idx), nil
}

func (t *Tree[T]) readSingle(idx int) T {
	res := t.tree[idx]
	join := idx - lowbit(idx)
	for j := idx - 1; j > join; j -= lowbit(j) {
		res = t.g.Sub(res, t.tree[j])
	}
	return res
}

// Set assigns A[idx] = val.
func (t *Tree[T]) Set(idx int, val T) error {
	if err := t.checkIndex(idx); err != nil {
		return err
	}
	return t.Update(idx, t.g.Sub(val, t.readSingle(idx)))
}

// RangeSum returns A[from] + ... + A[to].
func (t *Tree[T]) RangeSum(from, to int) (T, error) {
	if err := t.checkRange(from, to); err != nil {
		return t.g.Zero(), err
	}
	return t.g.Sub(t.query(to), t.query(from-1)), nil
}

// Total returns the sum of all elements.
func (t *Tree[T]) Total() T {
	return t.query(t.size)
}

// Scale multiplies every element by factor. Every slot is a sum of
// elements, so scaling the slots in place scales the array. O(n).
func (t *Tree[T]) Scale(factor int64) {
	for i := 1; i <= t.size; i++ {
		t.tree[i] = t.g.Scale(t.tree[i], factor)
	}
}

// GetIndex returns the greatest index i such that A[1] + ... + A[i] <= cumulative.
//
// All elements must be non-negative, so that prefix sums never decrease, and
// cumulative must be at least A[1]. The search descends the implicit tree
// from the largest power of two not above size, taking a slot whenever it
// fits in what remains of cumulative. A slot equal to the remainder is taken.
func (t *Tree[T]) GetIndex(cumulative T) (int, error) {
	g, ok := t.g.(algebra.Ordered[T])
	if !ok {
		return 0, ErrUnordered
	}
	if g.Compare(cumulative, t.tree[1]) < 0 {
		return 0, fmt.Errorf("%w: cumulative is below A[1]", ErrPreconditionViolated)
	}
	if t.size == 1 {
		return 1, nil
	}

	base := 0
	for mask := 1 << (bits.Len(uint(t.size)) - 1); mask > 0; mask >>= 1 {
		mid := base + mask
		if mid <= t.size && g.Compare(t.tree[mid], cumulative) <= 0 {
			cumulative = g.Sub(cumulative, t.tree[mid])
			base = mid
		}
	}
	return base, nil
}

// Slots returns a copy of the backing slots tree[1..size].
func (t *Tree[T]) Slots() []T {
	out := make([]T, t.size)
	copy(out, t.tree[1:])
	return out
}
