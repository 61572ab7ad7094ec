package dijkstra

// Edge is one adjacency entry: an arc to To with weight Weight.
type Edge struct {
	To     int
	Weight int64
}

// Graph is an adjacency list over vertices 0…n-1. Neighbors keep insertion
// order and parallel edges are allowed.
type Graph struct {
	adj [][]Edge
}

// NewGraph returns an empty graph with n vertices.
func NewGraph(n int) *Graph {
	return &Graph{adj: make([][]Edge, n)}
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.adj) }

// AddEdge appends the directed arc u→v with weight w.
func (g *Graph) AddEdge(u, v int, w int64) {
	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w})
}

// AddUndirected appends both u→v and v→u with weight w.
func (g *Graph) AddUndirected(u, v int, w int64) {
	g.AddEdge(u, v, w)
	if u != v {
		g.AddEdge(v, u, w)
	}
}

// Neighbors returns u's adjacency list. The slice is shared, not copied.
func (g *Graph) Neighbors(u int) []Edge { return g.adj[u] }

// EdgeCount returns the number of stored arcs.
func (g *Graph) EdgeCount() int {
	m := 0
	for _, es := range g.adj {
		m += len(es)
	}

	return m
}

// Reset drops all edges but keeps the vertex count and slice capacity.
func (g *Graph) Reset() {
	for u := range g.adj {
		g.adj[u] = g.adj[u][:0]
	}
}
