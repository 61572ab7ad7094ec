package dijkstra

import (
	"container/heap"
	"fmt"
)

// ShortestPaths runs Dijkstra from source on g and returns the distance slice.
// Unreachable vertices hold Inf.
func ShortestPaths(g *Graph, source int, opts ...Option) ([]int64, error) {
	r, err := NewRunner(g, opts...)
	if err != nil {
		return nil, err
	}
	if err = r.Run(source); err != nil {
		return nil, err
	}

	return r.Dist(), nil
}

// Runner holds the mutable state of Dijkstra over one graph. Its slices are
// allocated once and reused by every Run, so a Runner can serve many sources
// or many instances of the same size without reallocating.
type Runner struct {
	g       *Graph
	options Options
	dist    []int64 // best known distance per vertex
	prev    []int   // predecessor on a shortest path, -1 if none; nil unless ReturnPath
	pq      nodePQ
}

// NewRunner validates g and allocates storage for it.
func NewRunner(g *Graph, opts ...Option) (*Runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Len()
	r := &Runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	return r, nil
}

// Run computes distances from source, overwriting the previous run.
func (r *Runner) Run(source int) error {
	if source < 0 || source >= r.g.Len() {
		return fmt.Errorf("%w: source=%d n=%d", ErrSourceOutOfRange, source, r.g.Len())
	}
	// Pre-scan all arcs so a negative weight fails before any work is done.
	for u, es := range r.g.adj {
		for _, e := range es {
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	r.init(source)
	r.process()

	return nil
}

// Dist returns the distance slice of the last Run. It aliases the Runner's
// storage and is overwritten by the next Run.
func (r *Runner) Dist() []int64 { return r.dist }

// Prev returns the predecessor slice of the last Run, or nil without WithReturnPath.
func (r *Runner) Prev() []int { return r.prev }

// Path returns the vertices of a shortest path from the last source to v, or
// nil if v was not reached or paths are not recorded.
func (r *Runner) Path(v int) []int {
	if r.prev == nil || r.dist[v] == Inf {
		return nil
	}
	var rev []int
	for u := v; u != -1; u = r.prev[u] {
		rev = append(rev, u)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// init resets distances to Inf, predecessors to -1 and seeds the heap with
// (0, source).
func (r *Runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = Inf
	}
	for v := range r.prev {
		r.prev[v] = -1
	}
	r.dist[source] = 0

	r.pq = r.pq[:0]
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})
}

// process pops the closest frontier vertex until the heap is empty or the
// closest candidate lies beyond MaxDistance.
func (r *Runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)

		// Stale: u was improved after this entry was pushed.
		if item.dist != r.dist[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		if r.options.OnSettle != nil {
			r.options.OnSettle(item.id, item.dist)
		}
		r.relax(item.id)
	}
}

// relax tries to improve every neighbor of the settled vertex u.
func (r *Runner) relax(u int) {
	du := r.dist[u]
	for _, e := range r.g.adj[u] {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		nd := du + e.Weight
		// Overflow guard: weights near Inf must not wrap around.
		if nd < du || nd > r.options.MaxDistance {
			continue
		}
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, nodeItem{id: e.To, dist: nd})
	}
}

// nodeItem is a heap entry (tentative distance, vertex).
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
