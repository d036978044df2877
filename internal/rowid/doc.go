// Package rowid implements row-identifier sequences for component batches.
//
// A sequence is either explicit (a sorted, duplicate-free []core.RowID) or dense,
// in which case row i has identifier i and nothing is stored:
//
//	ids := rowid.Explicit([]core.RowID{0, 17, 42})
//	all := rowid.Dense(3) // 0, 1, 2
//
// Sortedness is a precondition. Validate checks it on demand; nothing else does.
package rowid
