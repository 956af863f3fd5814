package selector

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/algebra"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/fenwick"
)

// FenwickSelector implements Selector over a Fenwick tree of weights.
// Select and Update are both O(log n).
type FenwickSelector struct {
	// tree stores the weights; nil when there are no items.
	tree *fenwick.Tree[int64]

	// ids maps a tree index (1-based) back to the item ID at ids[index-1].
	ids []string

	// index maps an item ID to its tree index.
	index map[string]int

	total int64
	rand  *rand.Rand
}

var _ Selector = (*FenwickSelector)(nil)

// NewFenwickSelector creates an empty FenwickSelector.
func NewFenwickSelector(opts ...Option) *FenwickSelector {
	o := newOptions(opts)
	return &FenwickSelector{
		index: make(map[string]int),
		rand:  o.rand,
	}
}

// Reset initializes or re-initializes the selector with items. Negative
// weights are treated as zero.
func (fs *FenwickSelector) Reset(items []Item) {
	fs.ids = make([]string, len(items))
	fs.index = make(map[string]int, len(items))
	fs.total = 0
	fs.tree = nil

	weights := make([]int64, len(items))
	for i, item := range items {
		fs.ids[i] = item.ID
		fs.index[item.ID] = i + 1
		weights[i] = max(item.Weight, 0)
		fs.total += weights[i]
	}
	if len(items) > 0 {
		// NewFrom only fails on an empty slice.
		fs.tree, _ = fenwick.NewFrom[int64](algebra.Integer[int64]{}, weights...)
	}
}

// Select chooses an item based on its weight.
func (fs *FenwickSelector) Select() (string, error) {
	if fs.total <= 0 {
		return "", ErrEmptyPool
	}

	// r lands in item i exactly when S(i-1) <= r < S(i).
	r := fs.rand.Int63n(fs.total)
	idx, err := fs.tree.GetIndex(r)
	switch {
	case errors.Is(err, fenwick.ErrPreconditionViolated):
		// r is below the first weight.
		return fs.ids[0], nil
	case err != nil:
		return "", err
	}

	if idx >= len(fs.ids) {
		return "", fmt.Errorf("internal error: no item for random value %d (total: %d)", r, fs.total)
	}
	return fs.ids[idx], nil
}

// Update adds delta to the weight of id. An update that would leave the
// weight negative is rejected and changes nothing.
func (fs *FenwickSelector) Update(id string, delta int64) error {
	idx, ok := fs.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	cur, err := fs.tree.ReadSingle(idx)
	if err != nil {
		return err
	}
	if cur+delta < 0 {
		return fmt.Errorf("%w: %s has %d, delta %d", ErrNegativeWeight, id, cur, delta)
	}
	if err := fs.tree.Update(idx, delta); err != nil {
		return err
	}
	fs.total += delta
	return nil
}

// Weight returns the current weight of id.
func (fs *FenwickSelector) Weight(id string) (int64, error) {
	idx, ok := fs.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return fs.tree.ReadSingle(idx)
}

// Total returns the sum of all weights.
func (fs *FenwickSelector) Total() int64 {
	return fs.total
}

// Items returns the items with their current weights.
func (fs *FenwickSelector) Items() []Item {
	out := make([]Item, len(fs.ids))
	for i, id := range fs.ids {
		w, _ := fs.tree.ReadSingle(i + 1)
		out[i] = Item{ID: id, Weight: w}
	}
	return out
}
