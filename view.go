package rowjoin

import (
	"iter"
	"maps"
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/rowjoin/core"
	"github.com/hupe1980/rowjoin/internal/join"
)

// EntityView joins the component batches of one entity into logical rows.
//
// The primary batch defines the rows: a view has exactly as many rows as the
// primary, in primary order. Every secondary batch is joined against those rows
// independently and never adds, drops or reorders a row.
//
// A view is immutable and safe for concurrent reads.
type EntityView struct {
	primary    *Batch
	components map[core.ComponentName]*Batch
}

// FromPrimary creates a view whose rows are the rows of primary.
// primary must not be nil.
func FromPrimary(primary *Batch) *EntityView {
	return &EntityView{
		primary:    primary,
		components: map[core.ComponentName]*Batch{},
	}
}

// WithComponent returns a new view with b joined as a secondary component.
// The receiver is left unchanged.
func (v *EntityView) WithComponent(b *Batch) (*EntityView, error) {
	if b == nil {
		return nil, ErrNilBatch
	}
	if b.name == v.primary.name {
		return nil, &ErrDuplicateComponent{Component: b.name}
	}
	if _, ok := v.components[b.name]; ok {
		return nil, &ErrDuplicateComponent{Component: b.name}
	}

	components := maps.Clone(v.components)
	components[b.name] = b

	return &EntityView{
		primary:    v.primary,
		components: components,
	}, nil
}

// Len returns the number of rows, which is the length of the primary batch.
func (v *EntityView) Len() int { return v.primary.Len() }

// Primary returns the primary batch.
func (v *EntityView) Primary() *Batch { return v.primary }

// Component returns the batch stored under name, primary included.
func (v *EntityView) Component(name core.ComponentName) (*Batch, bool) {
	if name == v.primary.name {
		return v.primary, true
	}
	b, ok := v.components[name]
	return b, ok
}

// Components returns the sorted names of the secondary components.
func (v *EntityView) Components() []core.ComponentName {
	return slices.Sorted(maps.Keys(v.components))
}

// RowIDs iterates the row ids of the view.
func (v *EntityView) RowIDs() iter.Seq[core.RowID] { return v.primary.RowIDs() }

// IterComponent iterates the named component over the rows of the view.
//
// For the primary every item is present. For a secondary the item at row i is
// present iff the secondary batch holds the row id of row i.
func IterComponent[T any](v *EntityView, name core.ComponentName) (iter.Seq[Optional[T]], error) {
	if name == v.primary.name {
		return IterValues[T](v.primary)
	}

	b, ok := v.components[name]
	if !ok {
		return nil, &ErrComponentNotFound{Component: name}
	}
	vals, err := column[T](b)
	if err != nil {
		return nil, err
	}

	return func(yield func(Optional[T]) bool) {
		col := joined[T]{cursor: join.NewCursor(v.primary.rowIDs, b.rowIDs), values: vals}
		for {
			item, ok := col.next()
			if !ok || !yield(item) {
				return
			}
		}
	}, nil
}

// Presence returns the row positions of v at which the named component has a value.
func (v *EntityView) Presence(name core.ComponentName) (*roaring64.Bitmap, error) {
	rb := roaring64.New()
	if name == v.primary.name {
		if n := v.primary.Len(); n > 0 {
			rb.AddRange(0, uint64(n))
		}
		return rb, nil
	}

	b, ok := v.components[name]
	if !ok {
		return nil, &ErrComponentNotFound{Component: name}
	}
	for i, pos := range join.Align(v.primary.rowIDs, b.rowIDs) {
		if pos != join.Absent {
			rb.Add(uint64(i))
		}
	}
	return rb, nil
}

// joined pulls one secondary column through a join cursor, one primary row at a time.
type joined[T any] struct {
	cursor *join.Cursor
	values []T
}

func (j *joined[T]) next() (Optional[T], bool) {
	pos, ok := j.cursor.Next()
	if !ok {
		return None[T](), false
	}
	if pos == join.Absent {
		return None[T](), true
	}
	return Some(j.values[pos]), true
}

// secondary resolves the joined column for component C. Naming the primary
// yields an all-present column, as IterComponent does.
func secondary[C core.Component](v *EntityView) (*joined[C], error) {
	name := core.NameOf[C]()
	b, ok := v.Component(name)
	if !ok {
		return nil, &ErrComponentNotFound{Component: name}
	}
	vals, err := column[C](b)
	if err != nil {
		return nil, err
	}
	return &joined[C]{cursor: join.NewCursor(v.primary.rowIDs, b.rowIDs), values: vals}, nil
}
