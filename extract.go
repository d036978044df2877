package rowjoin

import (
	"iter"
	"reflect"
	"slices"

	"github.com/hupe1980/rowjoin/core"
)

// column recovers the native slice behind b. The type assertion is the only
// way values leave a batch.
func column[T any](b *Batch) ([]T, error) {
	if b == nil {
		return nil, ErrNilBatch
	}
	vals, ok := b.values.([]T)
	if !ok {
		return nil, &ErrTypeMismatch{Component: b.name, Stored: b.typ, Requested: reflect.TypeFor[T]()}
	}
	return vals, nil
}

// IterValues iterates every value of b in row order. All items are present.
// The sequence may be ranged over any number of times.
func IterValues[T any](b *Batch) (iter.Seq[Optional[T]], error) {
	vals, err := column[T](b)
	if err != nil {
		return nil, err
	}
	return func(yield func(Optional[T]) bool) {
		for _, v := range vals {
			if !yield(Some(v)) {
				return
			}
		}
	}, nil
}

// Values returns a copy of the column as a native slice.
func Values[T any](b *Batch) ([]T, error) {
	vals, err := column[T](b)
	if err != nil {
		return nil, err
	}
	return slices.Clone(vals), nil
}

// Lookup returns the value stored for row id, or None if b has no such row.
func Lookup[T any](b *Batch, id core.RowID) (Optional[T], error) {
	vals, err := column[T](b)
	if err != nil {
		return None[T](), err
	}
	if b.IsSplat() {
		return Some(vals[0]), nil
	}
	pos, ok := b.Lookup(id)
	if !ok {
		return None[T](), nil
	}
	return Some(vals[pos]), nil
}
