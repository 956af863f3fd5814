// Package dump renders the internal state of the Fenwick trees for debugging.
// It only reads from the structures it is given.
package dump

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/fenwick"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Report is a snapshot of every valid index of a tree.
// Slots is set for a Tree, Mul and Add for a RangeTree.
type Report[T any] struct {
	Slots  []T
	Mul    []T
	Add    []T
	Prefix []T
	Values []T
}

// FromTree reads the raw slots, prefix sums and decoded values of t.
func FromTree[T any](t *fenwick.Tree[T]) (Report[T], error) {
	n := t.Size()
	r := Report[T]{
		Slots:  t.Slots(),
		Prefix: make([]T, n),
		Values: make([]T, n),
	}
	for i := 1; i <= n; i++ {
		p, err := t.Query(i)
		if err != nil {
			return Report[T]{}, err
		}
		v, err := t.ReadSingle(i)
		if err != nil {
			return Report[T]{}, err
		}
		r.Prefix[i-1] = p
		r.Values[i-1] = v
	}
	return r, nil
}

// FromRange reads the coefficient prefix sums, prefix sums and decoded values
// of t.
func FromRange[T any](t *fenwick.RangeTree[T]) (Report[T], error) {
	n := t.Size()
	r := Report[T]{
		Mul:    make([]T, n),
		Add:    make([]T, n),
		Prefix: make([]T, n),
		Values: make([]T, n),
	}
	for i := 1; i <= n; i++ {
		mul, add, err := t.Coefficients(i)
		if err != nil {
			return Report[T]{}, err
		}
		p, err := t.Query(i)
		if err != nil {
			return Report[T]{}, err
		}
		v, err := t.ReadSingle(i)
		if err != nil {
			return Report[T]{}, err
		}
		r.Mul[i-1], r.Add[i-1] = mul, add
		r.Prefix[i-1] = p
		r.Values[i-1] = v
	}
	return r, nil
}

// Len returns the number of indexes in the report.
func (r Report[T]) Len() int {
	return len(r.Values)
}

// Render draws the report as a table, one row per index.
func (r Report[T]) Render(format func(T) string) string {
	headers := []string{"idx"}
	columns := [][]T{}
	if r.Slots != nil {
		headers = append(headers, "slot")
		columns = append(columns, r.Slots)
	}
	if r.Mul != nil {
		headers = append(headers, "mul", "add")
		columns = append(columns, r.Mul, r.Add)
	}
	headers = append(headers, "prefix", "value")
	columns = append(columns, r.Prefix, r.Values)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)

	for i := 0; i < r.Len(); i++ {
		row := []string{strconv.Itoa(i + 1)}
		for _, c := range columns {
			row = append(row, format(c[i]))
		}
		tbl.Row(row...)
	}
	return tbl.Render()
}

// Mismatches returns the 1-based indexes where the decoded values differ from
// values. Indexes missing from either side count as mismatches.
func (r Report[T]) Mismatches(values []T, equal func(a, b T) bool) []int {
	var out []int
	n := max(len(values), r.Len())
	for i := 0; i < n; i++ {
		if i >= len(values) || i >= r.Len() || !equal(r.Values[i], values[i]) {
			out = append(out, i+1)
		}
	}
	return out
}
