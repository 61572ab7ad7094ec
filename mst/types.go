package mst

import "errors"

// Sentinel errors returned by the mst package.
var (
	// ErrInvalidGraph indicates a nil graph, a non-positive vertex count or an
	// edge endpoint outside [0, n).
	ErrInvalidGraph = errors.New("mst: invalid graph")

	// ErrRootOutOfRange indicates a Prim root outside [0, n).
	ErrRootOutOfRange = errors.New("mst: root vertex out of range")

	// ErrDisconnected indicates that no spanning tree covers every vertex.
	ErrDisconnected = errors.New("mst: graph is disconnected")
)

// WeightedEdge is an undirected edge U—V with weight W.
type WeightedEdge struct {
	U, V int
	W    int64
}

// Method names accepted by Compute.
const (
	MethodKruskal = "kruskal"
	MethodPrim    = "prim"
)
