package dijkstra

import (
	"errors"
	"math"
)

// Inf is the distance of a vertex not (yet) reached from the source.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates a source vertex outside [0, n).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was found.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a zero or negative InfEdgeThreshold,
	// which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a Runner.
//
// ReturnPath       – record predecessors so paths can be rebuilt.
// MaxDistance      – vertices whose distance would exceed this are not settled.
//
//	Must be ≥ 0. Default is Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this are skipped.
//
//	Must be > 0. Default is Inf (no walls).
//
// OnSettle         – optional hook, called with (u, dist[u]) when u becomes final.
type Options struct {
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
	OnSettle         func(u int, d int64)
}

// Option is a functional option for NewRunner and ShortestPaths.
type Option func(*Options)

// WithReturnPath enables the predecessor slice.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration at max. Panics on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// Panics on a zero or negative threshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnSettle registers fn to be called once per settled vertex, in
// non-decreasing order of distance.
func WithOnSettle(fn func(u int, d int64)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// DefaultOptions returns Options with no path recording and no limits.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      Inf,
		InfEdgeThreshold: Inf,
	}
}
