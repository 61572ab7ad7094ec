package modint

// Pow returns a^b by square-and-multiply in O(log b) multiplications.
// Pow(a, 0) is 1 for every a, zero included.
// Panics with ErrNegativeExponent if b < 0.
func Pow[M Modulus](a Int[M], b int64) Int[M] {
	if b < 0 {
		panic(ErrNegativeExponent)
	}
	ans := New[M](1)
	for ; b > 0; b >>= 1 {
		if b&1 == 1 {
			ans = ans.Mul(a)
		}
		a = a.Mul(a)
	}

	return ans
}

// Pow is the method form of the package-level Pow.
func (a Int[M]) Pow(b int64) Int[M] { return Pow(a, b) }

// InvOf returns the field inverse of the integer v, i.e. y with y*v ≡ 1 (mod P),
// computed by Fermat's little theorem as v^(P-2).
// Panics with ErrDivisionByZero if v ≡ 0 (mod P).
//
// Typical use is a package-level constant such as
//
//	var inv2 = modint.InvOf[modint.Mod1e9_7](2)
func InvOf[M Modulus](v int64) Int[M] {
	a := New[M](v)
	if a.IsZero() {
		panic(ErrDivisionByZero)
	}

	return Pow(a, modulus[M]()-2)
}
