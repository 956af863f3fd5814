// Package selector draws items at random in proportion to their weights.
package selector

import (
	"math/rand"
	"time"
)

// Item is a selectable entry and its current weight.
type Item struct {
	ID     string `json:"id" yaml:"id"`
	Weight int64  `json:"weight" yaml:"weight"`
}

// Selector defines the contract for weighted random selection.
// It abstracts the underlying data structure used for the cumulative weights.
type Selector interface {
	// Reset clears the selector's state and re-initializes it with items.
	Reset(items []Item)

	// Select chooses an item with probability weight/Total and returns its ID.
	Select() (string, error)

	// Update adds delta to the weight of an item.
	Update(id string, delta int64) error

	// Weight returns the current weight of an item.
	Weight(id string) (int64, error)

	// Total returns the sum of all weights.
	Total() int64

	// Items returns the items in index order with their current weights.
	Items() []Item
}

type options struct {
	rand *rand.Rand
}

// Option configures a selector.
type Option func(*options)

// WithRand sets the random source used by Select.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

type errString string

func (e errString) Error() string {
	return string(e)
}

const ErrEmptyPool = errString("selector: pool is empty")
const ErrItemNotFound = errString("selector: item not found")
const ErrNegativeWeight = errString("selector: weight cannot be negative")
