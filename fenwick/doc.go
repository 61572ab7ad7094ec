// Package fenwick implements a Fenwick tree (binary indexed tree) for prefix
// sums over an implicit array A[0…n-1] under point updates.
//
// Both operations run in O(log n):
//
//   - Update(i, v) adds v to A[i].
//   - Query(i) returns A[0] + … + A[i].
//
// Internally the tree is 1-based: slot 0 of the backing slice is never written,
// since index 0 is where the i -= i & -i walk terminates. Range sums follow as
// Query(r) - Query(l-1); RangeSum is provided for convenience and Query(-1) is 0.
//
// Indices are not validated beyond the slice bounds checks Go already does.
package fenwick
