package selector

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelectors(values []int64) []struct {
	name     string
	selector Selector
} {
	// each selector gets its own copy of the mocked draws
	mock := func() Option {
		return WithRand(rand.New(&MockRandSource{Values: append([]int64(nil), values...)}))
	}
	return []struct {
		name     string
		selector Selector
	}{
		{"FenwickSelector", NewFenwickSelector(mock())},
		{"PrefixSumSelector", NewPrefixSumSelector(mock())},
	}
}

func TestSelector_Empty(t *testing.T) {
	for _, tc := range newSelectors(nil) {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.selector.Select()
			assert.ErrorIs(t, err, ErrEmptyPool)

			tc.selector.Reset([]Item{})
			_, err = tc.selector.Select()
			assert.ErrorIs(t, err, ErrEmptyPool)
			assert.Empty(t, tc.selector.Items())

			tc.selector.Reset([]Item{{ID: "a", Weight: 0}})
			_, err = tc.selector.Select()
			assert.ErrorIs(t, err, ErrEmptyPool)
		})
	}
}

func TestSelector_Select(t *testing.T) {
	items := []Item{
		{ID: "itemA", Weight: 10},
		{ID: "itemB", Weight: 0},
		{ID: "itemC", Weight: 20},
		{ID: "itemD", Weight: 30},
	}
	// cumulative weights: A: 10, B: 10, C: 30, D: 60
	draws := []int64{0, 9, 10, 29, 30, 59}
	want := []string{"itemA", "itemA", "itemC", "itemC", "itemD", "itemD"}

	for _, tc := range newSelectors(draws) {
		t.Run(tc.name, func(t *testing.T) {
			tc.selector.Reset(items)
			assert.Equal(t, int64(60), tc.selector.Total())

			for i, w := range want {
				got, err := tc.selector.Select()
				require.NoError(t, err)
				assert.Equal(t, w, got, "draw %d", draws[i])
			}
		})
	}
}

func TestSelector_Update(t *testing.T) {
	items := []Item{
		{ID: "item1", Weight: 20},
		{ID: "item2", Weight: 30},
		{ID: "item3", Weight: 0},
	}

	for _, tc := range newSelectors(nil) {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.selector

			t.Run("Update existing item", func(t *testing.T) {
				s.Reset(items)
				require.NoError(t, s.Update("item1", 5))

				w, err := s.Weight("item1")
				require.NoError(t, err)
				assert.Equal(t, int64(25), w)
				assert.Equal(t, int64(55), s.Total())
			})

			t.Run("Update item to zero", func(t *testing.T) {
				s.Reset(items)
				require.NoError(t, s.Update("item2", -30))

				w, err := s.Weight("item2")
				require.NoError(t, err)
				assert.Zero(t, w)
				assert.Equal(t, int64(20), s.Total())
			})

			t.Run("Update item from zero", func(t *testing.T) {
				s.Reset(items)
				require.NoError(t, s.Update("item3", 60))
				assert.Equal(t, int64(110), s.Total())
				assert.Equal(t, []Item{
					{ID: "item1", Weight: 20},
					{ID: "item2", Weight: 30},
					{ID: "item3", Weight: 60},
				}, s.Items())
			})

			t.Run("Reject negative weight", func(t *testing.T) {
				s.Reset(items)
				assert.ErrorIs(t, s.Update("item1", -21), ErrNegativeWeight)
				assert.Equal(t, int64(50), s.Total())
				w, err := s.Weight("item1")
				require.NoError(t, err)
				assert.Equal(t, int64(20), w)
			})

			t.Run("Unknown item", func(t *testing.T) {
				s.Reset(items)
				assert.ErrorIs(t, s.Update("missing", 1), ErrItemNotFound)
				_, err := s.Weight("missing")
				assert.ErrorIs(t, err, ErrItemNotFound)
			})
		})
	}
}

func TestSelector_Agree(t *testing.T) {
	items := make([]Item, 37)
	for i := range items {
		items[i] = Item{ID: string(rune('a' + i%26)) + string(rune('0'+i/26)), Weight: int64(i % 5)}
	}

	fs := NewFenwickSelector(WithRand(rand.New(rand.NewSource(42))))
	ps := NewPrefixSumSelector(WithRand(rand.New(rand.NewSource(42))))
	fs.Reset(items)
	ps.Reset(items)

	for i := 0; i < 500; i++ {
		a, err := fs.Select()
		require.NoError(t, err)
		b, err := ps.Select()
		require.NoError(t, err)
		require.Equal(t, b, a, "draw %d", i)

		id := items[i%len(items)].ID
		require.NoError(t, fs.Update(id, 1))
		require.NoError(t, ps.Update(id, 1))
	}
	assert.Equal(t, ps.Items(), fs.Items())
}
