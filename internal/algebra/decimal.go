package algebra

import "github.com/shopspring/decimal"

// Decimal is the exact group of arbitrary precision decimals.
type Decimal struct{}

var _ Ordered[decimal.Decimal] = Decimal{}

func (Decimal) Zero() decimal.Decimal                    { return decimal.Zero }
func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func (Decimal) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (Decimal) Neg(a decimal.Decimal) decimal.Decimal    { return a.Neg() }

func (Decimal) Scale(a decimal.Decimal, k int64) decimal.Decimal {
	return a.Mul(decimal.NewFromInt(k))
}

func (Decimal) Compare(a, b decimal.Decimal) int { return a.Cmp(b) }
