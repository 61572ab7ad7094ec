package bitmask

import "math/bits"

// Subsets calls fn(sub, i^sub) for every subset sub of i, starting at i itself
// and descending with sub = (sub-1) & i until the empty set has been visited.
// Exactly 2^popcount(i) calls are made unless fn returns false, which stops
// the walk early.
func Subsets(i uint, fn func(sub, rest uint) bool) {
	for j := i; ; j = (j - 1) & i {
		if !fn(j, i^j) {
			return
		}
		if j == 0 {
			return
		}
	}
}

// ForEachSubsetPair runs Subsets for every mask i in [0, 2ⁿ), calling
// fn(i, sub, i^sub). The whole sweep makes 3ⁿ calls.
func ForEachSubsetPair(n int, fn func(i, sub, rest uint)) {
	size := uint(1) << n
	for i := uint(0); i < size; i++ {
		Subsets(i, func(sub, rest uint) bool {
			fn(i, sub, rest)
			return true
		})
	}
}

// SubsetSums returns s with s[mask] = sum of vals[j] over bits j in mask,
// built in O(2ⁿ) from the lowest set bit.
func SubsetSums(vals []int64) []int64 {
	n := len(vals)
	s := make([]int64, 1<<n)
	for mask := 1; mask < len(s); mask++ {
		j := bits.TrailingZeros(uint(mask))
		s[mask] = s[mask&(mask-1)] + vals[j]
	}

	return s
}
