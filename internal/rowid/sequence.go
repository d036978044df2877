package rowid

import (
	"fmt"
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/rowjoin/core"
)

// Sequence is an ordered run of row identifiers.
// The zero value is an empty dense sequence.
type Sequence struct {
	ids []core.RowID // nil when dense
	n   int
}

// Dense returns the implicit sequence 0..n-1.
func Dense(n int) Sequence {
	return Sequence{n: n}
}

// Explicit wraps ids. The slice is borrowed, not copied.
func Explicit(ids []core.RowID) Sequence {
	if ids == nil {
		ids = []core.RowID{}
	}
	return Sequence{ids: ids, n: len(ids)}
}

// Len returns the number of identifiers.
func (s Sequence) Len() int { return s.n }

// IsDense reports whether identifiers are implicit positions.
func (s Sequence) IsDense() bool { return s.ids == nil }

// IsSplat reports whether the sequence holds only core.SplatRowID.
func (s Sequence) IsSplat() bool {
	return len(s.ids) == 1 && s.ids[0] == core.SplatRowID
}

// At returns the identifier at position i.
func (s Sequence) At(i int) core.RowID {
	if s.ids == nil {
		return core.RowID(i)
	}
	return s.ids[i]
}

// Lookup returns the position of id.
func (s Sequence) Lookup(id core.RowID) (int, bool) {
	if s.ids == nil {
		if id < core.RowID(s.n) {
			return int(id), true
		}
		return 0, false
	}
	return slices.BinarySearch(s.ids, id)
}

// All iterates positions and identifiers in order.
func (s Sequence) All() iter.Seq2[int, core.RowID] {
	return func(yield func(int, core.RowID) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// Validate checks that an explicit sequence is strictly ascending.
func (s Sequence) Validate() error {
	for i := 1; i < len(s.ids); i++ {
		prev, cur := s.ids[i-1], s.ids[i]
		switch {
		case cur == prev:
			return &ErrDuplicate{Index: i, RowID: cur}
		case cur < prev:
			return &ErrUnsorted{Index: i, Prev: prev, Cur: cur}
		}
	}
	return nil
}

// Set returns the identifiers as a roaring64 bitmap.
func (s Sequence) Set() *roaring64.Bitmap {
	rb := roaring64.New()
	if s.ids == nil {
		if s.n > 0 {
			rb.AddRange(0, uint64(s.n))
		}
		return rb
	}
	for _, id := range s.ids {
		rb.Add(uint64(id))
	}
	return rb
}

// ErrUnsorted is returned by Validate when an identifier is smaller than its predecessor.
type ErrUnsorted struct {
	Index int
	Prev  core.RowID
	Cur   core.RowID
}

func (e *ErrUnsorted) Error() string {
	return fmt.Sprintf("row ids not sorted at index %d: %d follows %d", e.Index, e.Cur, e.Prev)
}

// ErrDuplicate is returned by Validate when an identifier repeats.
type ErrDuplicate struct {
	Index int
	RowID core.RowID
}

func (e *ErrDuplicate) Error() string {
	return fmt.Sprintf("duplicate row id %d at index %d", e.RowID, e.Index)
}
