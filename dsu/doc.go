// Package dsu provides a disjoint-set union (union-find) forest over a fixed
// universe of integers 0…n-1.
//
// The forest owns two slices sized once by New: parent pointers and a rank
// heuristic. Find applies full path compression (every node on the walk is
// pointed straight at the root) and Unite merges by rank, so a sequence of m
// operations costs O(m·α(n)).
//
// Sets only ever get coarser: there is no split or delete. To reuse the same
// storage for an independent instance call Reset.
//
// Indices are not validated; an index outside [0, n) panics with the usual
// slice bounds error.
//
// Example:
//
//	d := dsu.New(4)
//	d.Unite(0, 1)
//	d.Unite(2, 3)
//	fmt.Println(d.Same(1, 0), d.Same(1, 2), d.Sets()) // true false 2
package dsu
