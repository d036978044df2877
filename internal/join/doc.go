// Package join aligns a secondary row-identifier sequence against a primary one.
//
// For every primary position the join yields the secondary position holding the
// same row id, or Absent. Both sequences must be sorted ascending and free of
// duplicates; the join never checks this and returns garbage if it is violated.
//
// Three strategies, chosen once per cursor:
//   - splat secondary: every primary row maps to secondary position 0
//   - dense secondary: a bounds check, id i lives at position i
//   - explicit secondary: two-pointer merge, O(P+S)
package join
