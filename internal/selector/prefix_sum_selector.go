package selector

import (
	"fmt"
	"math/rand"
	"sort"
)

// PrefixSumSelector implements Selector using a plain prefix sum array.
// Select is a binary search; Update rewrites every later prefix sum.
type PrefixSumSelector struct {
	// prefixSums[i] is the sum of the weights of items 0..i.
	prefixSums []int64

	ids   []string
	index map[string]int

	total int64
	rand  *rand.Rand
}

var _ Selector = (*PrefixSumSelector)(nil)

// NewPrefixSumSelector creates an empty PrefixSumSelector.
func NewPrefixSumSelector(opts ...Option) *PrefixSumSelector {
	o := newOptions(opts)
	return &PrefixSumSelector{
		index: make(map[string]int),
		rand:  o.rand,
	}
}

// Reset initializes or re-initializes the selector with items. Negative
// weights are treated as zero.
func (ps *PrefixSumSelector) Reset(items []Item) {
	ps.ids = make([]string, len(items))
	ps.index = make(map[string]int, len(items))
	ps.prefixSums = make([]int64, len(items))

	var sum int64
	for i, item := range items {
		sum += max(item.Weight, 0)
		ps.prefixSums[i] = sum
		ps.ids[i] = item.ID
		ps.index[item.ID] = i
	}
	ps.total = sum
}

// Select chooses an item based on its weight.
func (ps *PrefixSumSelector) Select() (string, error) {
	if ps.total <= 0 {
		return "", ErrEmptyPool
	}

	r := ps.rand.Int63n(ps.total)
	idx := sort.Search(len(ps.prefixSums), func(i int) bool {
		return ps.prefixSums[i] > r
	})
	if idx >= len(ps.ids) {
		return "", fmt.Errorf("internal error: no item for random value %d (total: %d)", r, ps.total)
	}
	return ps.ids[idx], nil
}

func (ps *PrefixSumSelector) weight(idx int) int64 {
	if idx == 0 {
		return ps.prefixSums[0]
	}
	return ps.prefixSums[idx] - ps.prefixSums[idx-1]
}

// Update adds delta to the weight of id. An update that would leave the
// weight negative is rejected and changes nothing.
func (ps *PrefixSumSelector) Update(id string, delta int64) error {
	idx, ok := ps.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if cur := ps.weight(idx); cur+delta < 0 {
		return fmt.Errorf("%w: %s has %d, delta %d", ErrNegativeWeight, id, cur, delta)
	}

	for i := idx; i < len(ps.prefixSums); i++ {
		ps.prefixSums[i] += delta
	}
	ps.total += delta
	return nil
}

// Weight returns the current weight of id.
func (ps *PrefixSumSelector) Weight(id string) (int64, error) {
	idx, ok := ps.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return ps.weight(idx), nil
}

// Total returns the sum of all weights.
func (ps *PrefixSumSelector) Total() int64 {
	return ps.total
}

// Items returns the items with their current weights.
func (ps *PrefixSumSelector) Items() []Item {
	out := make([]Item, len(ps.ids))
	for i, id := range ps.ids {
		out[i] = Item{ID: id, Weight: ps.weight(i)}
	}
	return out
}
