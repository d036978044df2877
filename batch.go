package rowjoin

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/hupe1980/rowjoin/core"
	"github.com/hupe1980/rowjoin/internal/rowid"
)

// Batch is one component column of an entity: type-erased values plus the row
// ids they belong to. A batch without explicit row ids is dense: value i
// belongs to row i.
//
// Batches are immutable. Constructors copy their inputs, so the caller may
// reuse its slices afterwards.
type Batch struct {
	name   core.ComponentName
	rowIDs rowid.Sequence
	values any // []T
	typ    reflect.Type
	length int
}

// NewBatch builds a batch named after the component type C.
//
// rowIDs may be nil for a dense batch. Otherwise it must have the same length
// as values and be sorted ascending without duplicates; sortedness is not
// checked here, see Batch.Validate.
func NewBatch[C core.Component](values []C, rowIDs []core.RowID) (*Batch, error) {
	return NewNamedBatch(core.NameOf[C](), values, rowIDs)
}

// NewNamedBatch builds a batch of an arbitrary native type under an explicit name.
func NewNamedBatch[T any](name core.ComponentName, values []T, rowIDs []core.RowID) (*Batch, error) {
	if rowIDs != nil && len(rowIDs) != len(values) {
		return nil, &ErrLengthMismatch{Component: name, Values: len(values), RowIDs: len(rowIDs)}
	}

	seq := rowid.Dense(len(values))
	if rowIDs != nil {
		seq = rowid.Explicit(slices.Clone(rowIDs))
	}

	vals := slices.Clone(values)
	if vals == nil {
		vals = []T{}
	}

	return &Batch{
		name:   name,
		rowIDs: seq,
		values: vals,
		typ:    reflect.TypeFor[T](),
		length: len(values),
	}, nil
}

// NewSplat builds a single-value batch that, joined as a secondary component,
// is present on every row of the primary.
func NewSplat[C core.Component](value C) *Batch {
	b, _ := NewNamedBatch(core.NameOf[C](), []C{value}, []core.RowID{core.SplatRowID})
	return b
}

// Name returns the component name.
func (b *Batch) Name() core.ComponentName { return b.name }

// Len returns the number of rows.
func (b *Batch) Len() int { return b.length }

// Type returns the native element type the batch was built from.
func (b *Batch) Type() reflect.Type { return b.typ }

// IsDense reports whether row ids are implicit positions.
func (b *Batch) IsDense() bool { return b.rowIDs.IsDense() }

// IsSplat reports whether the batch is a single value broadcast to every row.
func (b *Batch) IsSplat() bool { return b.rowIDs.IsSplat() }

// RowIDAt returns the row id at position i.
func (b *Batch) RowIDAt(i int) core.RowID { return b.rowIDs.At(i) }

// Lookup returns the position holding id.
func (b *Batch) Lookup(id core.RowID) (int, bool) { return b.rowIDs.Lookup(id) }

// RowIDs iterates the row ids in order.
func (b *Batch) RowIDs() iter.Seq[core.RowID] {
	return func(yield func(core.RowID) bool) {
		for _, id := range b.rowIDs.All() {
			if !yield(id) {
				return
			}
		}
	}
}

// Validate reports row ids that are unsorted or repeated. Joins assume valid
// row ids and do not call this themselves.
func (b *Batch) Validate() error {
	return translateError(b.name, b.rowIDs.Validate())
}

func (b *Batch) String() string {
	layout := "sparse"
	switch {
	case b.IsSplat():
		layout = "splat"
	case b.IsDense():
		layout = "dense"
	}
	return fmt.Sprintf("Batch(%s, %v, %s, %d rows)", b.name, b.typ, layout, b.length)
}
