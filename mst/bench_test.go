package mst_test

import (
	"testing"

	"github.com/katalvlaran/cpkit/mst"
)

// BenchmarkKruskal measures a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	edges := randomConnected(500, 1501, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = mst.Kruskal(500, edges)
	}
}

// BenchmarkPrim measures the same graph through Compute.
func BenchmarkPrim(b *testing.B) {
	edges := randomConnected(500, 1501, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = mst.Compute(mst.MethodPrim, 500, edges)
	}
}
