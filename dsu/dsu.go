package dsu

// DSU is a disjoint-set forest with union by rank and path compression.
// It is not safe for concurrent use.
//
// Fields:
//
//	rep  – parent pointers; rep[u] == u exactly when u is a root.
//	rank – per-root upper bound on tree height, only grown by Unite on ties.
//	sets – number of disjoint sets, n after New or Reset, minus one per merge.
type DSU struct {
	rep  []int // rep[u] is u's parent; roots point at themselves
	rank []int // upper bound on the height of the tree rooted at u
	sets int   // number of disjoint sets
}

// New returns a forest of n singleton sets.
//
// Complexity: O(n) time and memory.
func New(n int) *DSU {
	d := &DSU{
		rep:  make([]int, n),
		rank: make([]int, n),
	}
	d.Reset()

	return d
}

// Reset turns every element back into its own singleton set without reallocating.
func (d *DSU) Reset() {
	for i := range d.rep {
		d.rep[i] = i
		d.rank[i] = 0
	}
	d.sets = len(d.rep)
}

// Len returns the size of the universe.
func (d *DSU) Len() int { return len(d.rep) }

// Sets returns the current number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

// Find returns the root of u's set and points every node on the path at it.
// Two passes keep the walk iterative, so deep chains cannot overflow the stack.
//
// Steps:
//  1. Walk parent pointers from u until a node is its own parent: the root.
//  2. Walk the same path again, redirecting each node straight to the root.
//
// Complexity: amortized O(α(n)) together with union by rank.
func (d *DSU) Find(u int) int {
	// 1) Locate the root.
	root := u
	for d.rep[root] != root {
		root = d.rep[root]
	}
	// 2) Path compression: every visited node now points at root.
	for d.rep[u] != root {
		u, d.rep[u] = d.rep[u], root
	}

	return root
}

// Unite merges the sets holding i and j and reports whether a merge happened.
// The lower-rank root is attached under the higher-rank one; on a tie j's root
// goes under i's root and i's root gains one rank. When i and j already share
// a set nothing changes and Unite returns false.
//
// Steps:
//  1. Resolve both roots with Find.
//  2. Same root: return false, no state is touched.
//  3. Attach by rank, bump the rank on a tie, decrement the set count.
//
// Complexity: amortized O(α(n)).
func (d *DSU) Unite(i, j int) bool {
	// 1) Resolve roots (compressing both paths on the way).
	ri, rj := d.Find(i), d.Find(j)
	// 2) Already joined.
	if ri == rj {
		return false
	}
	// 3) Union by rank.
	switch {
	case d.rank[ri] < d.rank[rj]:
		d.rep[ri] = rj
	case d.rank[ri] > d.rank[rj]:
		d.rep[rj] = ri
	default:
		d.rep[rj] = ri
		d.rank[ri]++
	}
	d.sets--

	return true
}

// Same reports whether i and j are in the same set.
func (d *DSU) Same(i, j int) bool {
	return d.Find(i) == d.Find(j)
}

// Rank returns the rank stored at root r. It is only meaningful for roots.
func (d *DSU) Rank(r int) int { return d.rank[r] }
