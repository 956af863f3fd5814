package fenwick

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/algebra"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/naive"
)

// sampleRange applies [2,5]+=1, [4,8]+=2, [9,9]+=3 to a size 10 tree.
func sampleRange(t *testing.T) *RangeTree[int64] {
	t.Helper()
	rt, err := NewRange[int64](10, ints)
	require.NoError(t, err)

	require.NoError(t, rt.UpdateRange(2, 5, 1))
	require.NoError(t, rt.UpdateRange(4, 8, 2))
	require.NoError(t, rt.UpdateRange(9, 9, 3))
	return rt
}

func TestRangeTree_Query(t *testing.T) {
	rt := sampleRange(t)

	want := []int64{0, 1, 2, 5, 8, 10, 12, 14, 17, 17}
	for i, w := range want {
		got, err := rt.Query(i + 1)
		require.NoError(t, err)
		assert.Equal(t, w, got, "Query(%d)", i+1)
	}
}

func TestRangeTree_ReadSingle(t *testing.T) {
	rt := sampleRange(t)

	want := []int64{0, 1, 1, 3, 3, 2, 2, 2, 3, 0}
	for i, w := range want {
		got, err := rt.ReadSingle(i + 1)
		require.NoError(t, err)
		assert.Equal(t, w, got, "ReadSingle(%d)", i+1)
	}
}

func TestRangeTree_RangeSum(t *testing.T) {
	rt := sampleRange(t)

	tests := []struct {
		from, to int
		want     int64
	}{
		{1, 10, 17},
		{4, 5, 6},
		{1, 1, 0},
		{9, 10, 3},
		{6, 8, 6},
	}
	for _, tt := range tests {
		got, err := rt.RangeSum(tt.from, tt.to)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "RangeSum(%d, %d)", tt.from, tt.to)
	}
}

func TestRangeTree_Update(t *testing.T) {
	rt := sampleRange(t)

	require.NoError(t, rt.Update(1, 4))
	require.NoError(t, rt.Update(10, -2))

	got, err := rt.ReadSingle(1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)
	got, err = rt.ReadSingle(10)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), got)
	got, err = rt.Query(10)
	require.NoError(t, err)
	assert.Equal(t, int64(19), got)
}

func TestRangeTree_Coefficients(t *testing.T) {
	rt, err := NewRange[int64](10, ints)
	require.NoError(t, err)
	require.NoError(t, rt.UpdateRange(3, 6, 2))

	tests := []struct {
		idx      int
		mul, add int64
	}{
		{2, 0, 0},
		{3, 2, -4},
		{5, 2, -4},
		{6, 0, 8},
		{10, 0, 8},
	}
	for _, tt := range tests {
		mul, add, err := rt.Coefficients(tt.idx)
		require.NoError(t, err)
		assert.Equal(t, tt.mul, mul, "mul(%d)", tt.idx)
		assert.Equal(t, tt.add, add, "add(%d)", tt.idx)
	}
}

func TestRangeTree_InvalidArguments(t *testing.T) {
	_, err := NewRange[int64](0, ints)
	assert.ErrorIs(t, err, ErrInvalidSize)

	rt := sampleRange(t)

	assert.ErrorIs(t, rt.UpdateRange(5, 4, 1), ErrInvalidRange)
	assert.ErrorIs(t, rt.UpdateRange(0, 4, 1), ErrInvalidRange)
	assert.ErrorIs(t, rt.UpdateRange(4, 11, 1), ErrInvalidRange)
	assert.ErrorIs(t, rt.Update(11, 1), ErrIndexOutOfRange)

	_, err = rt.Query(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = rt.ReadSingle(11)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = rt.RangeSum(3, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, _, err = rt.Coefficients(11)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	got, err := rt.Query(10)
	require.NoError(t, err)
	assert.Equal(t, int64(17), got, "failed calls must not touch the tree")
}

func TestRangeTree_MatchesNaive(t *testing.T) {
	r := rand.New(rand.NewSource(5))

	for size := 1; size <= 48; size++ {
		rt, err := NewRange[int64](size, ints)
		require.NoError(t, err)
		ref := naive.New[int64](size, ints)

		for n := 0; n < 2*size; n++ {
			from := r.Intn(size) + 1
			to := from + r.Intn(size-from+1)
			val := r.Int63n(100) - 50

			require.NoError(t, rt.UpdateRange(from, to, val))
			ref.UpdateRange(from, to, val)
		}

		for i := 1; i <= size; i++ {
			q, err := rt.Query(i)
			require.NoError(t, err)
			assert.Equal(t, ref.Query(i), q, "size=%d Query(%d)", size, i)

			s, err := rt.ReadSingle(i)
			require.NoError(t, err)
			assert.Equal(t, ref.ReadSingle(i), s, "size=%d ReadSingle(%d)", size, i)
		}
	}
}

func TestRangeTree_SingleElementRange(t *testing.T) {
	for _, size := range []int{1, 2, 7, 16} {
		for idx := 1; idx <= size; idx++ {
			rt, err := NewRange[int64](size, ints)
			require.NoError(t, err)
			require.NoError(t, rt.UpdateRange(idx, idx, 9))

			for i := 1; i <= size; i++ {
				got, err := rt.ReadSingle(i)
				require.NoError(t, err)
				if i == idx {
					assert.Equal(t, int64(9), got)
				} else {
					assert.Zero(t, got)
				}
			}
		}
	}
}

func TestRangeTree_Modular(t *testing.T) {
	g, err := algebra.NewModular(1_000_000_007)
	require.NoError(t, err)

	rt, err := NewRange[uint64](8, g)
	require.NoError(t, err)
	ref := naive.New[uint64](8, g)

	updates := []struct {
		from, to int
		val      int64
	}{
		{1, 8, 999_999_999},
		{3, 5, -7},
		{2, 2, 123_456_789},
		{5, 8, 1_000_000_006},
	}
	for _, u := range updates {
		require.NoError(t, rt.UpdateRange(u.from, u.to, g.Reduce(u.val)))
		ref.UpdateRange(u.from, u.to, g.Reduce(u.val))
	}

	for i := 1; i <= 8; i++ {
		q, err := rt.Query(i)
		require.NoError(t, err)
		assert.Equal(t, ref.Query(i), q, "Query(%d)", i)
	}
}
