package join

import (
	"iter"

	"github.com/hupe1980/rowjoin/core"
	"github.com/hupe1980/rowjoin/internal/rowid"
)

// Absent is the position reported for primary rows without a secondary match.
const Absent = -1

type strategy uint8

const (
	strategyMerge strategy = iota
	strategyDense
	strategySplat
)

// Cursor walks the primary sequence once, in order, reporting the matching
// secondary position for each row.
type Cursor struct {
	primary   rowid.Sequence
	secondary rowid.Sequence
	strategy  strategy

	i int // next primary position
	j int // merge position in secondary
}

// NewCursor creates a cursor positioned before the first primary row.
func NewCursor(primary, secondary rowid.Sequence) *Cursor {
	c := &Cursor{
		primary:   primary,
		secondary: secondary,
	}
	switch {
	case secondary.IsSplat():
		c.strategy = strategySplat
	case secondary.IsDense():
		c.strategy = strategyDense
	default:
		c.strategy = strategyMerge
	}
	return c
}

// Next advances to the next primary row. It returns the matching secondary
// position, or Absent, and ok=false once the primary sequence is exhausted.
func (c *Cursor) Next() (pos int, ok bool) {
	if c.i >= c.primary.Len() {
		return Absent, false
	}
	id := c.primary.At(c.i)
	c.i++

	switch c.strategy {
	case strategySplat:
		return 0, true
	case strategyDense:
		if id < core.RowID(c.secondary.Len()) {
			return int(id), true
		}
		return Absent, true
	}

	n := c.secondary.Len()
	for c.j < n && c.secondary.At(c.j) < id {
		c.j++
	}
	if c.j < n && c.secondary.At(c.j) == id {
		pos = c.j
		c.j++
		return pos, true
	}
	return Absent, true
}

// Reset rewinds the cursor to the first primary row.
func (c *Cursor) Reset() {
	c.i = 0
	c.j = 0
}

// Align yields (primary position, secondary position or Absent) pairs for
// every primary row. Each range over the result starts a fresh join.
func Align(primary, secondary rowid.Sequence) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		c := NewCursor(primary, secondary)
		for i := 0; ; i++ {
			pos, ok := c.Next()
			if !ok || !yield(i, pos) {
				return
			}
		}
	}
}

// Positions materializes the join into a slice of length primary.Len().
func Positions(primary, secondary rowid.Sequence) []int {
	out := make([]int, 0, primary.Len())
	for _, pos := range Align(primary, secondary) {
		out = append(out, pos)
	}
	return out
}
