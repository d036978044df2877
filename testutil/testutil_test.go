package testutil

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/hupe1980/rowjoin"
	"github.com/hupe1980/rowjoin/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedRowIDs(t *testing.T) {
	rng := NewRNG(4711)

	ids := rng.SortedRowIDs(32, 100)

	assert.Len(t, ids, 32)
	assert.True(t, slices.IsSorted(ids))
	for i := 1; i < len(ids); i++ {
		assert.NotEqual(t, ids[i-1], ids[i])
	}
	assert.Less(t, uint64(ids[len(ids)-1]), uint64(100))

	assert.Len(t, rng.SortedRowIDs(10, 4), 4)
}

func TestRNGReset(t *testing.T) {
	rng := NewRNG(7)
	a := rng.SortedRowIDs(8, 64)
	rng.Reset()
	b := rng.SortedRowIDs(8, 64)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(7), rng.Seed())
}

func TestMaskedRowIDs(t *testing.T) {
	assert.Equal(t, []uint64{1, 3}, toUint64(MaskedRowIDs([]bool{false, true, false, true})))
	assert.Empty(t, MaskedRowIDs(nil))
}

func TestSparseMask(t *testing.T) {
	rng := NewRNG(1)
	assert.NotContains(t, rng.SparseMask(64, 0), false)
	assert.NotContains(t, rng.SparseMask(64, 1), true)
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()
	rng := NewRNG(3)

	points, err := rowjoin.NewBatch(rng.Points(3), nil)
	require.NoError(t, err)

	first := store.Insert("world/points", points)
	second := store.Insert("world/points", points)
	assert.True(t, first.Less(second))

	id, ok := store.InsertID("world/points", model.Point2DName)
	assert.True(t, ok)
	assert.Equal(t, second, id)

	got, err := store.Fetch(context.Background(), "world/points", model.Point2DName)
	require.NoError(t, err)
	assert.Same(t, points, got)

	_, err = store.Fetch(context.Background(), "world/points", model.ColorRGBAName)
	var nf *rowjoin.ErrComponentNotFound
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, model.ColorRGBAName, nf.Component)

	assert.Equal(t, 1, store.Fetches("world/points", model.Point2DName))
}

func toUint64[T ~uint64](in []T) []uint64 {
	out := make([]uint64, len(in))
	for i, v := range in {
		out[i] = uint64(v)
	}
	return out
}
