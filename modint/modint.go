package modint

import (
	"math/bits"
	"strconv"
)

// Int is an element of Z/PZ where P = M.Mod().
// The zero value is the additive identity.
type Int[M Modulus] struct {
	x int64
}

// modulus returns P for the type parameter.
func modulus[M Modulus]() int64 {
	var m M
	return m.Mod()
}

// New reduces any integer into [0, P). Negative inputs wrap to the positive residue.
func New[M Modulus](v int64) Int[M] {
	p := modulus[M]()
	v %= p
	if v < 0 {
		v += p
	}

	return Int[M]{x: v}
}

// norm folds a value in (-P, 2P) back into [0, P).
func norm(x, p int64) int64 {
	if x < 0 {
		return x + p
	}
	if x >= p {
		return x - p
	}

	return x
}

// Value returns the canonical representative in [0, P).
func (a Int[M]) Value() int64 { return a.x }

// Modulus returns P.
func (a Int[M]) Modulus() int64 { return modulus[M]() }

// IsZero reports whether a is the additive identity.
func (a Int[M]) IsZero() bool { return a.x == 0 }

// Equal reports whether a and b are the same field element.
func (a Int[M]) Equal(b Int[M]) bool { return a.x == b.x }

// Add returns a + b.
func (a Int[M]) Add(b Int[M]) Int[M] {
	return Int[M]{x: norm(a.x+b.x, modulus[M]())}
}

// Sub returns a - b.
func (a Int[M]) Sub(b Int[M]) Int[M] {
	return Int[M]{x: norm(a.x-b.x, modulus[M]())}
}

// Neg returns -a.
func (a Int[M]) Neg() Int[M] {
	return Int[M]{}.Sub(a)
}

// Mul returns a * b. The 128-bit product keeps moduli up to 2^62 exact.
func (a Int[M]) Mul(b Int[M]) Int[M] {
	hi, lo := bits.Mul64(uint64(a.x), uint64(b.x))
	r := bits.Rem64(hi, lo, uint64(modulus[M]()))

	return Int[M]{x: int64(r)}
}

// Inv returns the multiplicative inverse of a, computed by the extended
// Euclidean algorithm on (a, P) while tracking the Bézout coefficient of a.
// Panics with ErrDivisionByZero if a is zero.
func (a Int[M]) Inv() Int[M] {
	if a.x == 0 {
		panic(ErrDivisionByZero)
	}
	p := modulus[M]()
	x, y := a.x, p
	u, v := int64(1), int64(0)
	for y != 0 {
		t := x / y
		x, y = y, x-t*y
		u, v = v, u-t*v
	}

	return New[M](u)
}

// Div returns a / b. Panics with ErrDivisionByZero if b is zero.
func (a Int[M]) Div(b Int[M]) Int[M] {
	if b.x == 0 {
		panic(ErrDivisionByZero)
	}

	return a.Mul(b.Inv())
}

// String prints the representative.
func (a Int[M]) String() string {
	return strconv.FormatInt(a.x, 10)
}
