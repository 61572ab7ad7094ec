// Package dijkstra computes single-source shortest paths on graphs with
// non-negative integer edge weights.
//
// Overview:
//
//   - Vertices are the integers 0…n-1; Graph stores an adjacency list of
//     (neighbor, weight) pairs in insertion order.
//   - A Runner owns the distance slice and a binary min-heap keyed by
//     (tentative distance, vertex id).
//   - The heap uses lazy deletion: a relaxation pushes a duplicate entry instead
//     of decreasing a key, and a popped entry whose distance no longer matches
//     dist[u] is stale and skipped. Duplicates grow the heap but never change
//     the result.
//   - Once a vertex is popped with its current distance that distance is final.
//     This greedy property needs non-negative weights, so Run scans all edges
//     first and fails fast with ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), with up to E stale entries in the heap.
//
// Options:
//
//   - WithReturnPath():          record predecessors; Prev and Path become usable.
//   - WithMaxDistance(d):        do not settle vertices farther than d.
//   - WithInfEdgeThreshold(t):   edges with weight ≥ t are impassable.
//   - WithOnSettle(fn):          hook called once per vertex when its distance is final.
//
// Errors (sentinel):
//
//   - ErrNilGraph          graph pointer is nil.
//   - ErrSourceOutOfRange  source is not in [0, n).
//   - ErrNegativeWeight    some edge has a negative weight.
//   - ErrBadMaxDistance    (panic) WithMaxDistance got a negative value.
//   - ErrBadInfThreshold   (panic) WithInfEdgeThreshold got a non-positive value.
//
// Unreachable vertices keep the distance Inf (math.MaxInt64).
//
// Thread safety: a Runner and its Graph belong to one goroutine at a time. Give
// independent instances their own Runner to run them in parallel.
package dijkstra
