package testutil

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/rowjoin/core"
	"github.com/hupe1980/rowjoin/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// SortedRowIDs returns n distinct row ids drawn from [0, universe), ascending.
// n is capped at universe.
func (r *RNG) SortedRowIDs(n, universe int) []core.RowID {
	r.mu.Lock()
	defer r.mu.Unlock()

	n = min(n, universe)
	perm := r.rand.Perm(universe)[:n]

	ids := make([]core.RowID, n)
	for i, v := range perm {
		ids[i] = core.RowID(v)
	}
	slices.Sort(ids)
	return ids
}

// SparseMask reports, for each of n rows, whether it is present.
// missingRate is the probability that a row is missing (0.3 = 30% missing).
func (r *RNG) SparseMask(n int, missingRate float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	present := make([]bool, n)
	for i := range n {
		present[i] = r.rand.Float64() >= missingRate
	}

	return present
}

// Points returns n random points in [0, 1)².
func (r *RNG) Points(n int) []model.Point2D {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]model.Point2D, n)
	for i := range pts {
		pts[i] = model.Point2D{X: r.rand.Float32(), Y: r.rand.Float32()}
	}
	return pts
}

// Colors returns n random colors.
func (r *RNG) Colors(n int) []model.ColorRGBA {
	r.mu.Lock()
	defer r.mu.Unlock()

	colors := make([]model.ColorRGBA, n)
	for i := range colors {
		colors[i] = model.ColorRGBA(r.rand.Uint32())
	}
	return colors
}

// MaskedRowIDs returns the positions in [0, len(mask)) whose mask entry is true.
func MaskedRowIDs(mask []bool) []core.RowID {
	ids := make([]core.RowID, 0, len(mask))
	for i, ok := range mask {
		if ok {
			ids = append(ids, core.RowID(i))
		}
	}
	return ids
}
