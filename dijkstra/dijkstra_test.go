// Package dijkstra_test validates the lazy-deletion Dijkstra: input checks,
// options, stale-entry handling and agreement with Bellman-Ford on random graphs.
package dijkstra_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/cpkit/dijkstra"
)

const inf = dijkstra.Inf

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPaths_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPaths(nil, 0)
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPaths_SourceOutOfRange(t *testing.T) {
	g := dijkstra.NewGraph(3)
	for _, s := range []int{-1, 3} {
		_, err := dijkstra.ShortestPaths(g, s)
		if !errors.Is(err, dijkstra.ErrSourceOutOfRange) {
			t.Fatalf("source %d: expected ErrSourceOutOfRange, got %v", s, err)
		}
	}
}

func TestShortestPaths_NegativeWeight(t *testing.T) {
	g := dijkstra.NewGraph(3)
	g.AddEdge(0, 1, 2)
	g.AddEdge(1, 2, -1)
	_, err := dijkstra.ShortestPaths(g, 0)
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("expected ErrNegativeWeight, got %v", err)
	}
}

func TestOptions_PanicOnBadValues(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected panic", name)
			}
		}()
		fn()
	}
	mustPanic("max distance", func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) })
	mustPanic("inf threshold", func() { dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Core behavior
// ------------------------------------------------------------------------

func TestShortestPaths_Basic(t *testing.T) {
	// 0 -1-> 1 -2-> 2, 0 -5-> 2, 3 isolated.
	g := dijkstra.NewGraph(4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)
	g.AddEdge(0, 2, 5)
	dist, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{0, 1, 3, inf}
	if diff := cmp.Diff(want, dist); diff != "" {
		t.Fatalf("dist mismatch (-want +got):\n%s", diff)
	}
}

func TestShortestPaths_Directed(t *testing.T) {
	g := dijkstra.NewGraph(2)
	g.AddEdge(1, 0, 4)
	dist, _ := dijkstra.ShortestPaths(g, 0)
	if dist[1] != inf {
		t.Fatalf("arc 1→0 must not be walked backwards, dist[1]=%d", dist[1])
	}
}

func TestShortestPaths_ZeroWeightsAndSelfLoops(t *testing.T) {
	g := dijkstra.NewGraph(3)
	g.AddEdge(0, 0, 0)
	g.AddUndirected(0, 1, 0)
	g.AddUndirected(1, 2, 0)
	g.AddUndirected(2, 2, 9)
	dist, _ := dijkstra.ShortestPaths(g, 2)
	if diff := cmp.Diff([]int64{0, 0, 0}, dist); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

// TestStaleEntries builds a graph where vertex 3 is improved twice before it is
// popped, leaving two stale heap entries, and checks both the answer and that
// every vertex is settled exactly once.
func TestStaleEntries(t *testing.T) {
	g := dijkstra.NewGraph(4)
	g.AddEdge(0, 3, 10) // first, worst estimate for 3
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 2)
	g.AddEdge(1, 3, 7) // improves 3 to 8
	g.AddEdge(2, 3, 3) // improves 3 to 5
	settled := make(map[int]int)
	var order []int64
	dist, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithOnSettle(func(u int, d int64) {
		settled[u]++
		order = append(order, d)
	}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int64{0, 1, 2, 5}, dist); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	for u, c := range settled {
		if c != 1 {
			t.Fatalf("vertex %d settled %d times", u, c)
		}
	}
	for i := 1; i < len(order); i++ {
		if order[i] < order[i-1] {
			t.Fatalf("settle order not monotone: %v", order)
		}
	}
}

func TestRunner_ReturnPath(t *testing.T) {
	g := dijkstra.NewGraph(5)
	g.AddEdge(0, 1, 3)
	g.AddEdge(0, 2, 1)
	g.AddEdge(2, 1, 1)
	g.AddEdge(1, 3, 3)
	g.AddEdge(2, 3, 5)
	r, err := dijkstra.NewRunner(g, dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if err = r.Run(0); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 2, 1, 3}, r.Path(3)); diff != "" {
		t.Fatalf("path (-want +got):\n%s", diff)
	}
	if r.Path(4) != nil {
		t.Fatalf("unreachable vertex must have nil path")
	}
	if r.Prev()[0] != -1 {
		t.Fatalf("source predecessor = %d, want -1", r.Prev()[0])
	}
}

// TestRunner_TieKeepsFirstPredecessor checks that an equal-cost route does not
// replace a predecessor: relaxation only accepts strictly shorter distances.
func TestRunner_TieKeepsFirstPredecessor(t *testing.T) {
	g := dijkstra.NewGraph(4)
	g.AddEdge(0, 1, 2) // settles dist[1]=2 first
	g.AddEdge(0, 2, 1)
	g.AddEdge(2, 1, 1) // ties at 2, must not take over
	g.AddEdge(1, 3, 3)
	r, err := dijkstra.NewRunner(g, dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if err = r.Run(0); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 1, 3}, r.Path(3)); diff != "" {
		t.Fatalf("path (-want +got):\n%s", diff)
	}
	if r.Dist()[3] != 5 {
		t.Fatalf("dist[3]=%d, want 5", r.Dist()[3])
	}
}

func TestRunner_ReuseAcrossSources(t *testing.T) {
	g := dijkstra.NewGraph(3)
	g.AddUndirected(0, 1, 4)
	g.AddUndirected(1, 2, 6)
	r, _ := dijkstra.NewRunner(g)
	_ = r.Run(0)
	if got := r.Dist()[2]; got != 10 {
		t.Fatalf("from 0: dist[2]=%d, want 10", got)
	}
	_ = r.Run(2)
	if diff := cmp.Diff([]int64{10, 6, 0}, r.Dist()); diff != "" {
		t.Fatalf("from 2 (-want +got):\n%s", diff)
	}
}

func TestOptions_Thresholds(t *testing.T) {
	g := dijkstra.NewGraph(4)
	g.AddUndirected(0, 1, 2)
	g.AddUndirected(1, 2, 4)
	g.AddUndirected(0, 2, 10)
	g.AddUndirected(2, 3, 1)

	dist, _ := dijkstra.ShortestPaths(g, 0, dijkstra.WithInfEdgeThreshold(5))
	if dist[2] != 6 {
		t.Fatalf("wall ignored: dist[2]=%d", dist[2])
	}
	dist, _ = dijkstra.ShortestPaths(g, 0, dijkstra.WithMaxDistance(6))
	if diff := cmp.Diff([]int64{0, 2, 6, inf}, dist); diff != "" {
		t.Fatalf("max distance (-want +got):\n%s", diff)
	}
}

func TestOverflowGuard(t *testing.T) {
	g := dijkstra.NewGraph(3)
	g.AddEdge(0, 1, inf-1)
	g.AddEdge(1, 2, inf-1)
	dist, _ := dijkstra.ShortestPaths(g, 0)
	if dist[1] != inf-1 || dist[2] != inf {
		t.Fatalf("unexpected distances %v", dist)
	}
}

// ------------------------------------------------------------------------
// 3. Randomized agreement with Bellman-Ford
// ------------------------------------------------------------------------

func bellmanFord(n int, arcs [][3]int64, s int) []int64 {
	d := make([]int64, n)
	for i := range d {
		d[i] = inf
	}
	d[s] = 0
	for it := 0; it < n; it++ {
		for _, a := range arcs {
			u, v, w := a[0], a[1], a[2]
			if d[u] != inf && d[u]+w < d[v] {
				d[v] = d[u] + w
			}
		}
	}

	return d
}

func TestRandom_AgainstBellmanFord(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 30; round++ {
		n := 1 + r.Intn(25)
		m := r.Intn(4 * n)
		g := dijkstra.NewGraph(n)
		arcs := make([][3]int64, 0, m)
		for i := 0; i < m; i++ {
			u, v, w := r.Intn(n), r.Intn(n), int64(r.Intn(20))
			g.AddEdge(u, v, w)
			arcs = append(arcs, [3]int64{int64(u), int64(v), w})
		}
		s := r.Intn(n)
		got, err := dijkstra.ShortestPaths(g, s)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(bellmanFord(n, arcs, s), got); diff != "" {
			t.Fatalf("round %d (-want +got):\n%s", round, diff)
		}
	}
}
