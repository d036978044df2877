package core

import "math"

// RowID identifies one logical row (instance) within a single component batch
// of an entity. It is unrelated to the time-based identifiers used to tag stored
// data.
//
// Sequences of RowIDs taking part in a join must be sorted ascending and free of
// duplicates.
type RowID uint64

// SplatRowID marks a single-value batch whose value applies to every row of the
// entity it is joined against.
const SplatRowID = RowID(math.MaxUint64)

// EntityPath names an entity in the store, e.g. "world/points".
type EntityPath string
