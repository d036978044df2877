// Package testutil provides testing utilities for rowjoin.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Row Ids
//
//	rng := testutil.NewRNG(seed)
//	ids := rng.SortedRowIDs(32, 1000) // 32 sorted unique ids in [0, 1000)
//	pts := rng.Points(32)
//
// # In-Memory Source
//
//	store := testutil.NewMemStore()
//	store.Insert("world/points", points)
//	engine := rowjoin.NewEngine(store)
package testutil
