package fenwick_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpkit/fenwick"
)

func TestQuery_Empty(t *testing.T) {
	tr := fenwick.New[int](10)
	require.Equal(t, 10, tr.Len())
	for i := -1; i < 10; i++ {
		assert.Zero(t, tr.Query(i))
	}
}

func TestUpdate_IndexZero(t *testing.T) {
	tr := fenwick.New[int64](5)
	tr.Update(0, 7)
	for i := 0; i < 5; i++ {
		assert.Equal(t, int64(7), tr.Query(i), "prefix %d", i)
	}
	assert.Equal(t, int64(0), tr.Query(-1))
	assert.Equal(t, int64(7), tr.At(0))
}

func TestUpdate_LastIndex(t *testing.T) {
	tr := fenwick.New[int](8)
	tr.Update(7, 3)
	assert.Equal(t, 0, tr.Query(6))
	assert.Equal(t, 3, tr.Query(7))
}

// TestRandom_RangeSums checks every [l, r] against a plain array after random updates.
func TestRandom_RangeSums(t *testing.T) {
	const n = 37
	r := rand.New(rand.NewSource(42))
	a := make([]int, n)
	tr := fenwick.New[int](n)
	for step := 0; step < 200; step++ {
		i, v := r.Intn(n), r.Intn(201)-100
		a[i] += v
		tr.Update(i, v)
	}
	for l := 0; l < n; l++ {
		want := 0
		for rr := l; rr < n; rr++ {
			want += a[rr]
			assert.Equal(t, want, tr.Query(rr)-tr.Query(l-1), "[%d,%d]", l, rr)
			assert.Equal(t, want, tr.RangeSum(l, rr))
		}
	}
	assert.Zero(t, tr.RangeSum(5, 4))
}

func TestFromSlice_MatchesUpdates(t *testing.T) {
	a := []int64{3, -1, 4, 1, -5, 9, 2, 6, 5, 3, 5}
	built := fenwick.FromSlice(a)
	incr := fenwick.New[int64](len(a))
	for i, v := range a {
		incr.Update(i, v)
	}
	var prefix int64
	for i, v := range a {
		prefix += v
		assert.Equal(t, prefix, built.Query(i))
		assert.Equal(t, incr.Query(i), built.Query(i))
		assert.Equal(t, v, built.At(i))
	}
}

func TestReset(t *testing.T) {
	tr := fenwick.FromSlice([]float64{1.5, 2.5})
	require.InDelta(t, 4.0, tr.Query(1), 1e-9)
	tr.Reset()
	assert.Zero(t, tr.Query(1))
	assert.Equal(t, 2, tr.Len())
}
