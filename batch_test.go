package rowjoin_test

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/hupe1980/rowjoin"
	"github.com/hupe1980/rowjoin/core"
	"github.com/hupe1980/rowjoin/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBatchDense(t *testing.T) {
	points := []model.Point2D{{X: 1, Y: 2}, {X: 3, Y: 4}}

	b, err := rowjoin.NewBatch(points, nil)
	require.NoError(t, err)

	assert.Equal(t, model.Point2DName, b.Name())
	assert.Equal(t, 2, b.Len())
	assert.True(t, b.IsDense())
	assert.False(t, b.IsSplat())
	assert.Equal(t, reflect.TypeFor[model.Point2D](), b.Type())
	assert.Equal(t, core.RowID(1), b.RowIDAt(1))
	assert.Equal(t, []core.RowID{0, 1}, slices.Collect(b.RowIDs()))

	pos, ok := b.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, 1, pos)
	_, ok = b.Lookup(2)
	assert.False(t, ok)
}

func TestNewBatchExplicit(t *testing.T) {
	ids := []core.RowID{0, 17, 42}
	b, err := rowjoin.NewBatch([]model.ColorRGBA{1, 2, 3}, ids)
	require.NoError(t, err)

	assert.False(t, b.IsDense())
	assert.Equal(t, core.RowID(42), b.RowIDAt(2))

	pos, ok := b.Lookup(17)
	assert.True(t, ok)
	assert.Equal(t, 1, pos)
	_, ok = b.Lookup(18)
	assert.False(t, ok)

	// Inputs are copied.
	ids[1] = 99
	assert.Equal(t, core.RowID(17), b.RowIDAt(1))
}

func TestNewBatchLengthMismatch(t *testing.T) {
	_, err := rowjoin.NewBatch([]model.Point2D{{}, {}}, []core.RowID{0})

	var lm *rowjoin.ErrLengthMismatch
	require.True(t, errors.As(err, &lm))
	assert.Equal(t, model.Point2DName, lm.Component)
	assert.Equal(t, 2, lm.Values)
	assert.Equal(t, 1, lm.RowIDs)
}

func TestNewNamedBatch(t *testing.T) {
	b, err := rowjoin.NewNamedBatch[float64]("ext.confidence", []float64{0.5}, nil)
	require.NoError(t, err)
	assert.Equal(t, core.ComponentName("ext.confidence"), b.Name())
	assert.Equal(t, "Batch(ext.confidence, float64, dense, 1 rows)", b.String())
}

func TestNewBatchEmpty(t *testing.T) {
	b, err := rowjoin.NewBatch[model.Label](nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())

	vals, err := rowjoin.Values[model.Label](b)
	require.NoError(t, err)
	assert.Empty(t, vals)
}

func TestNewSplat(t *testing.T) {
	b := rowjoin.NewSplat(model.Radius(2.5))

	assert.True(t, b.IsSplat())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, core.SplatRowID, b.RowIDAt(0))
	assert.Contains(t, b.String(), "splat")
}

func TestBatchValidate(t *testing.T) {
	valid, err := rowjoin.NewBatch([]model.Label{"a", "b"}, []core.RowID{3, 9})
	require.NoError(t, err)
	assert.NoError(t, valid.Validate())

	dense, err := rowjoin.NewBatch([]model.Label{"a", "b"}, nil)
	require.NoError(t, err)
	assert.NoError(t, dense.Validate())

	unsorted, err := rowjoin.NewBatch([]model.Label{"a", "b", "c"}, []core.RowID{3, 9, 4})
	require.NoError(t, err)

	var inv *rowjoin.ErrInvalidRowIDs
	require.True(t, errors.As(unsorted.Validate(), &inv))
	assert.Equal(t, model.LabelName, inv.Component)
	assert.Equal(t, 2, inv.Index)
	assert.NotNil(t, errors.Unwrap(inv))

	dup, err := rowjoin.NewBatch([]model.Label{"a", "b"}, []core.RowID{3, 3})
	require.NoError(t, err)
	require.True(t, errors.As(dup.Validate(), &inv))
	assert.Equal(t, 1, inv.Index)
}
