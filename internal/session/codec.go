package session

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/algebra"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/types"
)

// codec converts between command text and values of one group.
type codec[T any] struct {
	g      algebra.Group[T]
	parse  func(string) (T, error)
	format func(T) string
	equal  func(a, b T) bool
}

func badValue(s string, err error) error {
	return fmt.Errorf("%w: value %q: %v", types.ErrBadArgument, s, err)
}

func intCodec() codec[int64] {
	return codec[int64]{
		g: algebra.Integer[int64]{},
		parse: func(s string) (int64, error) {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return 0, badValue(s, err)
			}
			return v, nil
		},
		format: func(v int64) string { return strconv.FormatInt(v, 10) },
		equal:  func(a, b int64) bool { return a == b },
	}
}

const floatTol = 1e-6

func floatCodec() codec[float64] {
	return codec[float64]{
		g: algebra.Float[float64]{},
		parse: func(s string) (float64, error) {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return 0, badValue(s, err)
			}
			return v, nil
		},
		format: func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
		equal: func(a, b float64) bool {
			return scalar.EqualWithinAbsOrRel(a, b, floatTol, floatTol)
		},
	}
}

func decimalCodec() codec[decimal.Decimal] {
	return codec[decimal.Decimal]{
		g: algebra.Decimal{},
		parse: func(s string) (decimal.Decimal, error) {
			v, err := decimal.NewFromString(s)
			if err != nil {
				return decimal.Zero, badValue(s, err)
			}
			return v, nil
		},
		format: func(v decimal.Decimal) string { return v.String() },
		equal:  func(a, b decimal.Decimal) bool { return a.Equal(b) },
	}
}

// modCodec reads signed integers and reduces them into [0, m).
func modCodec(m uint64) (codec[uint64], error) {
	g, err := algebra.NewModular(m)
	if err != nil {
		return codec[uint64]{}, fmt.Errorf("%w: %v", types.ErrBadArgument, err)
	}
	return codec[uint64]{
		g: g,
		parse: func(s string) (uint64, error) {
			if v, err := strconv.ParseInt(s, 10, 64); err == nil {
				return g.Reduce(v), nil
			}
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return 0, badValue(s, err)
			}
			return v % g.M, nil
		},
		format: func(v uint64) string { return strconv.FormatUint(v, 10) },
		equal:  func(a, b uint64) bool { return a == b },
	}, nil
}
