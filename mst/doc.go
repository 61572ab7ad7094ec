// Package mst builds minimum spanning trees by composing the cpkit primitives
// at the call site: Kruskal sorts edges and merges components with a dsu.DSU,
// Prim grows a tree over a dijkstra.Graph with a min-heap of candidate arcs.
//
// Both return the tree edges and their total weight, or ErrDisconnected when
// no spanning tree exists. A graph with a single vertex has an empty tree of
// weight 0.
//
// Complexity:
//
//   - Kruskal: O(E log E + E·α(V)) time, O(V + E) memory.
//   - Prim:    O(E log E) time, O(V + E) memory.
package mst
