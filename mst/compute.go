package mst

import (
	"fmt"

	"github.com/katalvlaran/cpkit/dijkstra"
)

// Compute runs the named method on an edge list over n vertices. Prim starts
// from vertex 0. An unknown method yields ErrInvalidGraph.
func Compute(method string, n int, edges []WeightedEdge) ([]WeightedEdge, int64, error) {
	switch method {
	case MethodKruskal:
		return Kruskal(n, edges)
	case MethodPrim:
		if n <= 0 {
			return nil, 0, fmt.Errorf("%w: n=%d", ErrInvalidGraph, n)
		}
		g := dijkstra.NewGraph(n)
		for i, e := range edges {
			if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
				return nil, 0, fmt.Errorf("%w: edge %d (%d—%d) n=%d", ErrInvalidGraph, i, e.U, e.V, n)
			}
			g.AddUndirected(e.U, e.V, e.W)
		}
		return Prim(g, 0)
	default:
		return nil, 0, fmt.Errorf("%w: unknown method %q", ErrInvalidGraph, method)
	}
}
