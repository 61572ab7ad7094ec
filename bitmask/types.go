package bitmask

import (
	"errors"
	"math"
)

// Inf marks an unreachable DP state or a forbidden worker/job pair in cost.
const Inf int64 = math.MaxInt64

// MaxBits bounds n so that a table of 2ⁿ int64 values stays at 8 MiB.
const MaxBits = 20

// Sentinel errors returned by the bitmask package.
var (
	// ErrNotSquare indicates a cost matrix whose rows are not all of length n.
	ErrNotSquare = errors.New("bitmask: cost matrix must be n×n")

	// ErrTooLarge indicates n > MaxBits.
	ErrTooLarge = errors.New("bitmask: too many bits")

	// ErrShortBuffer indicates a caller-supplied dp buffer shorter than 2ⁿ.
	ErrShortBuffer = errors.New("bitmask: dp buffer too short")
)
