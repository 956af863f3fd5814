package distributiontest

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/selector"
)

func newSelectors(seed int64) []struct {
	name     string
	selector selector.Selector
} {
	return []struct {
		name     string
		selector selector.Selector
	}{
		{"PrefixSumSelector", selector.NewPrefixSumSelector(selector.WithRand(rand.New(rand.NewSource(seed))))},
		{"FenwickSelector", selector.NewFenwickSelector(selector.WithRand(rand.New(rand.NewSource(seed))))},
	}
}

func TestWeightDistributionReport(t *testing.T) {
	const totalDraws = 300000

	items := []selector.Item{
		{ID: "gold", Weight: 10},
		{ID: "empty", Weight: 0},
		{ID: "silver", Weight: 20},
		{ID: "rock", Weight: 90},
	}
	var totalWeight int64
	for _, it := range items {
		totalWeight += it.Weight
	}

	for _, s := range newSelectors(7) {
		t.Run(s.name, func(t *testing.T) {
			s.selector.Reset(items)

			counts := make(map[string]int)
			for i := 0; i < totalDraws; i++ {
				id, err := s.selector.Select()
				require.NoError(t, err)
				counts[id]++
			}

			fmt.Printf("\n--- Distribution Report for %s ---\n", s.name)
			fmt.Println("|   Item   |   Count   | Proportion |")
			fmt.Println("|----------|-----------|------------|")
			for _, it := range items {
				expectedProp := float64(it.Weight) / float64(totalWeight)
				actualProp := float64(counts[it.ID]) / float64(totalDraws)
				fmt.Printf("| %-8s | %9d |   %.4f   (expected %.4f) |\n", it.ID, counts[it.ID], actualProp, expectedProp)

				assert.InDelta(t, expectedProp, actualProp, 0.01, it.ID)
			}
			fmt.Println("-------------------------------------------------")
			assert.Zero(t, counts["empty"])
		})
	}
}

// Each draw consumes one unit of weight, so the pool drains to exactly the
// starting weights.
func TestWeightExhaustion(t *testing.T) {
	items := []selector.Item{
		{ID: "gold", Weight: 1},
		{ID: "silver", Weight: 100},
	}

	for _, s := range newSelectors(3) {
		t.Run(s.name, func(t *testing.T) {
			s.selector.Reset(items)

			counts := make(map[string]int)
			for i := 0; i < 200; i++ {
				id, err := s.selector.Select()
				if errors.Is(err, selector.ErrEmptyPool) {
					break
				}
				require.NoError(t, err)
				require.NoError(t, s.selector.Update(id, -1))
				counts[id]++
			}

			for _, it := range s.selector.Items() {
				assert.Zero(t, it.Weight, it.ID)
			}
			assert.Equal(t, 1, counts["gold"])
			assert.Equal(t, 100, counts["silver"])
			assert.Zero(t, s.selector.Total())
		})
	}
}
