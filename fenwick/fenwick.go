package fenwick

// Number is the set of element types a Tree can sum.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Tree maintains prefix sums of an implicit array of length n.
// It is not safe for concurrent use.
type Tree[T Number] struct {
	f []T // f[k] covers A[k-lowbit(k) … k-1]; f[0] is unused
}

// New returns a tree over n zeros.
func New[T Number](n int) *Tree[T] {
	return &Tree[T]{f: make([]T, n+1)}
}

// FromSlice builds a tree over a copy of a in O(n) by pushing each node's
// total to its parent once.
//
// Steps:
//  1. Allocate n+1 zeroed slots.
//  2. For k = 1…n: add a[k-1] into f[k]; f[k] is now complete, so add it
//     into its parent k + lowbit(k) if that parent exists.
//
// Complexity: O(n) time, O(n) memory (versus O(n log n) for n Updates).
func FromSlice[T Number](a []T) *Tree[T] {
	// 1) Storage.
	t := New[T](len(a))
	n := len(a)
	// 2) Single bottom-up pass.
	for k := 1; k <= n; k++ {
		t.f[k] += a[k-1]
		if parent := k + k&-k; parent <= n {
			t.f[parent] += t.f[k]
		}
	}

	return t
}

// Len returns n, the length of the implicit array.
func (t *Tree[T]) Len() int { return len(t.f) - 1 }

// Reset zeroes the implicit array in place.
func (t *Tree[T]) Reset() {
	clear(t.f)
}

// Update adds v to A[i] and to every node whose range covers i.
//
// Steps:
//  1. Shift i to the 1-based index i+1, so index 0 never enters the walk.
//  2. While the index is within n: add v to that node, then step to the next
//     covering node with i += i & -i.
//
// Complexity: O(log n).
func (t *Tree[T]) Update(i int, v T) {
	n := len(t.f) - 1
	for i++; i <= n; i += i & -i {
		t.f[i] += v
	}
}

// Query returns A[0] + … + A[i]. Query(-1) is the empty sum.
//
// Steps:
//  1. Shift i to the 1-based index i+1.
//  2. While the index is positive: accumulate that node, then drop its lowest
//     set bit with i -= i & -i. Reaching 0 terminates the walk.
//
// Complexity: O(log n).
func (t *Tree[T]) Query(i int) T {
	var sum T
	for i++; i > 0; i -= i & -i {
		sum += t.f[i]
	}

	return sum
}

// RangeSum returns A[l] + … + A[r], or zero when l > r.
func (t *Tree[T]) RangeSum(l, r int) T {
	if l > r {
		var zero T
		return zero
	}

	return t.Query(r) - t.Query(l-1)
}

// At returns A[i].
func (t *Tree[T]) At(i int) T {
	return t.RangeSum(i, i)
}
