package algebra

import (
	"fmt"
	"math/bits"
)

// Modular is the additive group of integers modulo M. Values are residues in
// [0, M). Products for Scale are formed in 128 bits, so any M > 0 is safe.
type Modular struct {
	M uint64
}

var _ Ordered[uint64] = Modular{}

// NewModular returns the group of integers modulo m.
func NewModular(m uint64) (Modular, error) {
	if m == 0 {
		return Modular{}, fmt.Errorf("modulus must be positive")
	}
	return Modular{M: m}, nil
}

// Reduce maps any signed integer to its residue.
func (g Modular) Reduce(x int64) uint64 {
	if x >= 0 {
		return uint64(x) % g.M
	}
	// -x may not fit in an int64, so negate in unsigned arithmetic.
	r := (^uint64(x) + 1) % g.M
	if r == 0 {
		return 0
	}
	return g.M - r
}

func (g Modular) Zero() uint64 { return 0 }

func (g Modular) Add(a, b uint64) uint64 {
	if a >= g.M-b {
		return a - (g.M - b)
	}
	return a + b
}

func (g Modular) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return g.M - (b - a)
}

func (g Modular) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return g.M - a
}

func (g Modular) Scale(a uint64, k int64) uint64 {
	hi, lo := bits.Mul64(a, g.Reduce(k))
	return bits.Rem64(hi, lo, g.M)
}

// Compare orders residues numerically.
func (g Modular) Compare(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
