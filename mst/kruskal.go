package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cpkit/dsu"
)

// Kruskal returns a minimum spanning tree of the undirected graph on vertices
// 0…n-1 given by edges.
//
// Steps:
//  1. Validate n > 0 and every endpoint.
//  2. Sort a copy of edges by weight; the stable sort keeps input order on ties.
//  3. Walk the sorted edges, keeping each edge whose endpoints the DSU can still unite.
//  4. Stop at n-1 edges; fewer means the graph is disconnected.
func Kruskal(n int, edges []WeightedEdge) ([]WeightedEdge, int64, error) {
	if n <= 0 {
		return nil, 0, fmt.Errorf("%w: n=%d", ErrInvalidGraph, n)
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, 0, fmt.Errorf("%w: edge %d (%d—%d) n=%d", ErrInvalidGraph, i, e.U, e.V, n)
		}
	}
	if n == 1 {
		return []WeightedEdge{}, 0, nil
	}

	sorted := make([]WeightedEdge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].W < sorted[j].W
	})

	var (
		d     = dsu.New(n)
		tree  = make([]WeightedEdge, 0, n-1)
		total int64
	)
	for _, e := range sorted {
		// Self-loops never unite anything, so Unite filters them too.
		if !d.Unite(e.U, e.V) {
			continue
		}
		tree = append(tree, e)
		total += e.W
		if len(tree) == n-1 {
			break
		}
	}
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
