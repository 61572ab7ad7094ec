package bitmask

import (
	"fmt"
	"math/bits"
)

// Assignment fills a fresh dp table for the n×n matrix cost, where
// cost[k][j] is the price of giving job j to worker k, and returns it together
// with the optimal total dp[(1<<n)-1]. The best value is Inf when no complete
// assignment avoids forbidden (Inf) pairs.
func Assignment(cost [][]int64) ([]int64, int64, error) {
	n := len(cost)
	if n > MaxBits {
		return nil, Inf, fmt.Errorf("%w: n=%d max=%d", ErrTooLarge, n, MaxBits)
	}
	dp := make([]int64, 1<<n)
	best, err := AssignmentInto(dp, cost)
	if err != nil {
		return nil, Inf, err
	}

	return dp, best, nil
}

// AssignmentInto is Assignment on a caller-owned table; dp must hold at least
// 1<<n entries and only the first 1<<n are written. Reusing one buffer across
// instances avoids reallocating the 2ⁿ table.
//
// Steps:
//  1. Validate: n ≤ MaxBits, cost is n×n, dp holds 1<<n entries.
//  2. Base case dp[0] = 0.
//  3. For mask = 1…2ⁿ-1 in ascending order: k = popcount(mask)-1 is the worker
//     taking the last job; try every set bit j and keep the cheapest
//     dp[mask^(1<<j)] + cost[k][j], skipping Inf states and Inf pairs.
//  4. Return dp[2ⁿ-1].
//
// Ascending order is enough: clearing a bit always gives a smaller mask, so
// every state a mask reads has already been written.
//
// Complexity: O(n·2ⁿ) time, O(2ⁿ) memory (the caller's buffer).
func AssignmentInto(dp []int64, cost [][]int64) (int64, error) {
	// 1) Validate input shape and buffer.
	n := len(cost)
	if n > MaxBits {
		return Inf, fmt.Errorf("%w: n=%d max=%d", ErrTooLarge, n, MaxBits)
	}
	for k, row := range cost {
		if len(row) != n {
			return Inf, fmt.Errorf("%w: row %d has length %d, want %d", ErrNotSquare, k, len(row), n)
		}
	}
	size := 1 << n
	if len(dp) < size {
		return Inf, fmt.Errorf("%w: len=%d need=%d", ErrShortBuffer, len(dp), size)
	}

	// 2) Base case.
	dp[0] = 0
	// 3) Ascending sweep over masks.
	for mask := 1; mask < size; mask++ {
		k := bits.OnesCount(uint(mask)) - 1 // worker taking the last job
		best := Inf
		for rest := uint(mask); rest != 0; rest &= rest - 1 {
			j := bits.TrailingZeros(rest)
			prev := dp[mask^(1<<j)]
			c := cost[k][j]
			if prev == Inf || c == Inf {
				continue
			}
			if cand := prev + c; cand < best {
				best = cand
			}
		}
		dp[mask] = best
	}

	// 4) Full mask holds the optimum.
	return dp[size-1], nil
}

// Reconstruct recovers an optimal assignment from a table filled by
// Assignment: job[k] is the job given to worker k. It returns nil when the
// full mask is unreachable.
//
// Steps:
//  1. Start from the full mask.
//  2. Worker k = popcount(mask)-1 took the job j whose removal explains
//     dp[mask]; record it and clear bit j.
//  3. Repeat until the mask is empty.
//
// Complexity: O(n²).
func Reconstruct(dp []int64, cost [][]int64) []int {
	n := len(cost)
	mask := 1<<n - 1
	if dp[mask] == Inf {
		return nil
	}
	job := make([]int, n)
	for mask != 0 {
		k := bits.OnesCount(uint(mask)) - 1
		for j := 0; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev := dp[mask^(1<<j)]
			if prev != Inf && cost[k][j] != Inf && prev+cost[k][j] == dp[mask] {
				job[k] = j
				mask ^= 1 << j
				break
			}
		}
	}

	return job
}
