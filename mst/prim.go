package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/cpkit/dijkstra"
)

// Prim grows a minimum spanning tree from root over g. g is read as an
// undirected graph, so every edge must be stored in both directions
// (dijkstra.Graph.AddUndirected does that).
//
// Steps:
//  1. Validate g and root.
//  2. Mark root and push its arcs into a min-heap.
//  3. Pop the lightest arc; skip it if its head is already in the tree,
//     otherwise add it and push the new vertex's arcs.
//  4. Fewer than n-1 edges at the end means the graph is disconnected.
func Prim(g *dijkstra.Graph, root int) ([]WeightedEdge, int64, error) {
	if g == nil || g.Len() == 0 {
		return nil, 0, ErrInvalidGraph
	}
	n := g.Len()
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("%w: root=%d n=%d", ErrRootOutOfRange, root, n)
	}
	if n == 1 {
		return []WeightedEdge{}, 0, nil
	}

	var (
		inTree = make([]bool, n)
		tree   = make([]WeightedEdge, 0, n-1)
		total  int64
		pq     = make(edgePQ, 0, n)
	)
	visit := func(u int) {
		inTree[u] = true
		for _, e := range g.Neighbors(u) {
			if !inTree[e.To] {
				heap.Push(&pq, WeightedEdge{U: u, V: e.To, W: e.Weight})
			}
		}
	}

	visit(root)
	for pq.Len() > 0 && len(tree) < n-1 {
		e := heap.Pop(&pq).(WeightedEdge)
		if inTree[e.V] {
			continue
		}
		tree = append(tree, e)
		total += e.W
		visit(e.V)
	}
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// edgePQ is a min-heap of candidate edges ordered by weight.
type edgePQ []WeightedEdge

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return pq[i].W < pq[j].W }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x any)        { *pq = append(*pq, x.(WeightedEdge)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
