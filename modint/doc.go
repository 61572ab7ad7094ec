// Package modint implements exact arithmetic in the prime field Z/PZ.
//
// The modulus is a type parameter: Int[M] is specialized at compile time for the
// Modulus M, so values built for different moduli cannot be mixed by accident.
// Every operation returns a fresh, normalized value in [0, P); Int is a plain
// value type and is safe to copy.
//
// Operations:
//
//   - Add, Sub, Mul, Neg: closed field operations, O(1).
//   - Inv: multiplicative inverse via the extended Euclidean algorithm, O(log P).
//   - Div: multiplication by the inverse of a non-zero divisor.
//   - Pow: binary exponentiation (square-and-multiply), O(log b).
//   - InvOf: inverse of a fixed integer constant, computed as V^(P-2).
//   - FindFraction: brute-force recovery of a small fraction p/q equal to the value.
//
// Error handling:
//
// Division by zero and negative exponents are precondition violations and panic
// with ErrDivisionByZero / ErrNegativeExponent. FindFraction is the only
// recoverable case: absence of a small fraction is reported by ok == false.
//
// Example:
//
//	a := modint.NewZ(2)
//	half := modint.NewZ(1).Div(a)          // 500000004
//	fmt.Println(half.Mul(a))               // 1
//	f, ok := modint.InvOf[modint.Mod1e9_7](3).FindFraction()
//	fmt.Println(f, ok)                     // 1/3 true
package modint
