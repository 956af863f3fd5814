// Package workload generates random command streams for a session.
package workload

import (
	"fmt"

	rng "github.com/leesper/go_rng"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/types"
)

// MaxValue bounds generated values, which lie in [0, MaxValue).
const MaxValue = 100

// MaxScale bounds generated scale factors, which lie in [0, MaxScale).
const MaxScale = 4

// Generator yields commands for an index of a fixed size and mode. Values are
// never negative, so "find" stays meaningful. The same seed gives the same
// sequence.
type Generator struct {
	size int
	mode types.Mode
	u    *rng.UniformGenerator
}

func New(size int, mode types.Mode, seed int64) *Generator {
	return &Generator{
		size: size,
		mode: mode,
		u:    rng.NewUniformGenerator(seed),
	}
}

// index returns a value in [1, size].
func (g *Generator) index() int {
	return int(g.u.Int64n(int64(g.size))) + 1
}

// span returns from <= to, both in [1, size].
func (g *Generator) span() (int, int) {
	a, b := g.index(), g.index()
	if a > b {
		a, b = b, a
	}
	return a, b
}

func (g *Generator) value() int64 {
	return g.u.Int64n(MaxValue)
}

// Next returns a mutation. Point mode mixes update, set and, rarely, scale;
// range mode mixes range and update.
func (g *Generator) Next() string {
	roll := g.u.Int64n(20)
	if g.mode == types.ModeRange {
		if roll < 14 {
			from, to := g.span()
			return fmt.Sprintf("range %d %d %d", from, to, g.value())
		}
		return fmt.Sprintf("update %d %d", g.index(), g.value())
	}

	switch {
	case roll < 14:
		return fmt.Sprintf("update %d %d", g.index(), g.value())
	case roll < 19:
		return fmt.Sprintf("set %d %d", g.index(), g.value())
	default:
		return fmt.Sprintf("scale %d", g.u.Int64n(MaxScale))
	}
}

// Probe returns a read-only command.
func (g *Generator) Probe() string {
	kinds := int64(3)
	if g.mode == types.ModePoint {
		kinds = 4
	}
	switch g.u.Int64n(kinds) {
	case 0:
		return fmt.Sprintf("query %d", g.index())
	case 1:
		return fmt.Sprintf("single %d", g.index())
	case 2:
		from, to := g.span()
		return fmt.Sprintf("sum %d %d", from, to)
	default:
		return fmt.Sprintf("find %d", g.u.Int64n(MaxValue*int64(g.size)))
	}
}

// Weights returns n selector weights in [1, MaxValue].
func (g *Generator) Weights(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = g.value() + 1
	}
	return out
}
