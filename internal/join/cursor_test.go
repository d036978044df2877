package join

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/hupe1980/rowjoin/core"
	"github.com/hupe1980/rowjoin/internal/rowid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(v ...core.RowID) rowid.Sequence { return rowid.Explicit(v) }

func TestPositions(t *testing.T) {
	tests := []struct {
		name      string
		primary   rowid.Sequence
		secondary rowid.Sequence
		want      []int
	}{
		{
			name:      "dense on dense",
			primary:   rowid.Dense(3),
			secondary: rowid.Dense(3),
			want:      []int{0, 1, 2},
		},
		{
			name:      "short dense secondary",
			primary:   rowid.Dense(4),
			secondary: rowid.Dense(2),
			want:      []int{0, 1, Absent, Absent},
		},
		{
			name:      "explicit secondary on dense primary",
			primary:   rowid.Dense(3),
			secondary: ids(1, 2),
			want:      []int{Absent, 0, 1},
		},
		{
			name:      "sparse primary selects from dense secondary",
			primary:   ids(0, 2, 4),
			secondary: rowid.Dense(5),
			want:      []int{0, 2, 4},
		},
		{
			name:      "explicit on explicit",
			primary:   ids(0, 17, 42, 96),
			secondary: ids(17, 19, 44, 96, 254),
			want:      []int{Absent, 0, Absent, 3},
		},
		{
			name:      "empty secondary",
			primary:   rowid.Dense(2),
			secondary: ids(),
			want:      []int{Absent, Absent},
		},
		{
			name:      "empty primary",
			primary:   ids(),
			secondary: rowid.Dense(3),
			want:      []int{},
		},
		{
			name:      "splat",
			primary:   ids(3, 9, 11),
			secondary: ids(core.SplatRowID),
			want:      []int{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Positions(tt.primary, tt.secondary))
		})
	}
}

func TestCursorReset(t *testing.T) {
	c := NewCursor(ids(1, 2, 3), ids(2, 3))

	var first []int
	for pos, ok := c.Next(); ok; pos, ok = c.Next() {
		first = append(first, pos)
	}
	assert.Equal(t, []int{Absent, 0, 1}, first)

	_, ok := c.Next()
	assert.False(t, ok)

	c.Reset()
	pos, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, Absent, pos)
}

func TestAlignEarlyStop(t *testing.T) {
	seen := 0
	for range Align(rowid.Dense(10), rowid.Dense(10)) {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestAlignMatchesLookup(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		primary := randomSequence(rng, rng.Intn(64), 128)
		secondary := randomSequence(rng, rng.Intn(64), 128)

		got := Positions(primary, secondary)
		require.Len(t, got, primary.Len())

		for i, pos := range got {
			want, ok := secondary.Lookup(primary.At(i))
			if !ok {
				assert.Equal(t, Absent, pos, "round %d row %d", round, i)
				continue
			}
			assert.Equal(t, want, pos, "round %d row %d", round, i)
		}
	}
}

// randomSequence returns either a dense sequence of length n or n sorted unique
// ids drawn from [0, universe).
func randomSequence(rng *rand.Rand, n, universe int) rowid.Sequence {
	if rng.Intn(4) == 0 {
		return rowid.Dense(n)
	}
	perm := rng.Perm(universe)[:n]
	out := make([]core.RowID, n)
	for i, v := range perm {
		out[i] = core.RowID(v)
	}
	slices.Sort(out)
	return rowid.Explicit(out)
}
