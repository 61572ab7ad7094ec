package modint

import "fmt"

// FindFraction searches for a fraction p/q whose field value equals a.
//
// Denominators q = 1, 2, …, MaxDenominator are tried in order and the first q
// with (a*q) mod P ≤ MaxNumerator is accepted, giving p = (a*q) mod P.
// The result is the first hit of a bounded linear scan, not necessarily the
// fraction of least height. ok is false when no denominator within the bound
// qualifies.
//
// Complexity: O(MaxDenominator) time, O(1) memory.
func (a Int[M]) FindFraction(opts ...FractionOption) (f Fraction, ok bool) {
	cfg := DefaultFractionOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// (a*q) is advanced by repeated addition instead of a multiplication per step.
	acc := Int[M]{}
	for q := int64(1); q <= cfg.MaxDenominator; q++ {
		acc = acc.Add(a)
		if acc.x <= cfg.MaxNumerator {
			return Fraction{Num: acc.x, Den: q}, true
		}
	}

	return Fraction{}, false
}

// FractionOf is FindFraction with the miss reported as ErrFractionNotFound.
func FractionOf[M Modulus](a Int[M], opts ...FractionOption) (Fraction, error) {
	f, ok := a.FindFraction(opts...)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: value=%d", ErrFractionNotFound, a.x)
	}

	return f, nil
}

// FractionString renders the FindFraction result as "p/q", or "not find."
// when the search fails.
func (a Int[M]) FractionString(opts ...FractionOption) string {
	f, ok := a.FindFraction(opts...)
	if !ok {
		return notFound
	}

	return f.String()
}
