package tuid

import (
	"cmp"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"
)

// Tuid is a time-ordered unique identifier.
type Tuid struct {
	// TimeNs is approximate nanoseconds since epoch.
	TimeNs uint64
	// Inc starts at a random value per generator and grows by one per id.
	Inc uint64
}

var (
	// Zero is the smallest Tuid.
	Zero = Tuid{}
	// Max is the largest Tuid.
	Max = Tuid{TimeNs: math.MaxUint64, Inc: math.MaxUint64}
)

// Compare orders ids by time, then by counter.
func (t Tuid) Compare(o Tuid) int {
	if c := cmp.Compare(t.TimeNs, o.TimeNs); c != 0 {
		return c
	}
	return cmp.Compare(t.Inc, o.Inc)
}

// Less reports whether t sorts before o.
func (t Tuid) Less(o Tuid) bool { return t.Compare(o) < 0 }

// IsZero reports whether t is Zero.
func (t Tuid) IsZero() bool { return t == Zero }

// Time returns the wall-clock time encoded in t.
func (t Tuid) Time() time.Time {
	return time.Unix(0, int64(t.TimeNs)) //nolint:gosec // nanos since epoch fit in int64 until 2262
}

// String returns the id as 32 upper-case hex digits.
func (t Tuid) String() string {
	return fmt.Sprintf("%016X%016X", t.TimeNs, t.Inc)
}

// Clock returns nanoseconds since the unix epoch.
type Clock func() uint64

// MonotonicClock returns a Clock anchored at the current wall time and advanced
// by the monotonic clock, so it never goes backwards.
func MonotonicClock() Clock {
	start := time.Now()
	epoch := uint64(start.UnixNano()) //nolint:gosec // pre-1970 clocks are not supported
	return func() uint64 {
		return epoch + uint64(time.Since(start).Nanoseconds()) //nolint:gosec // monotonic, non-negative
	}
}

// Generator issues strictly increasing ids. It is safe for concurrent use.
type Generator struct {
	mu     sync.Mutex
	clock  Clock
	latest Tuid
}

// NewGenerator returns a generator on the monotonic clock with a random counter seed.
func NewGenerator() *Generator {
	return NewGeneratorWithClock(MonotonicClock(), randomSeed())
}

// NewGeneratorWithClock returns a generator on clock whose counter starts at seed.
// The top bit of seed is cleared to leave room to grow.
func NewGeneratorWithClock(clock Clock, seed uint64) *Generator {
	return &Generator{
		clock:  clock,
		latest: Tuid{Inc: seed &^ (1 << 63)},
	}
}

// Next returns a new id greater than every id previously returned by g.
func (g *Generator) Next() Tuid {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock()
	if now < g.latest.TimeNs {
		now = g.latest.TimeNs
	}
	g.latest = Tuid{TimeNs: now, Inc: g.latest.Inc + 1}
	return g.latest
}

func randomSeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Errorf("tuid: read random seed: %w", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}
