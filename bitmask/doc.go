// Package bitmask provides dynamic programming over subsets encoded as the
// bits of an integer.
//
// Assignment solves the n×n assignment problem with the recurrence
//
//	dp[0]    = 0
//	dp[mask] = min over j ∈ mask of dp[mask ^ 1<<j] + cost[popcount(mask)-1][j]
//
// where dp[mask] is the cheapest way to hand the first popcount(mask) workers
// the jobs in mask. Removing a bit always yields a smaller integer, so a single
// ascending sweep over masks resolves every dependency first.
// Time O(n·2ⁿ), memory O(2ⁿ).
//
// Subsets walks every subset of a fixed mask with the j = (j-1) & i descent,
// from i itself down to the empty set. Running it for every i < 2ⁿ
// (ForEachSubsetPair) costs O(3ⁿ) in total.
//
// Unreachable states and forbidden assignments use the sentinel Inf.
package bitmask
