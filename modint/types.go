package modint

import (
	"errors"
	"fmt"
)

// Sentinel errors used by the modint package.
var (
	// ErrDivisionByZero is the panic value of Inv and Div on the additive identity.
	ErrDivisionByZero = errors.New("modint: division by zero")

	// ErrNegativeExponent is the panic value of Pow for a negative exponent.
	ErrNegativeExponent = errors.New("modint: negative exponent")

	// ErrFractionNotFound is returned by FractionOf when no fraction within
	// the configured bounds maps to the value.
	ErrFractionNotFound = errors.New("modint: no small fraction found")

	// ErrBadBound indicates a non-positive search bound passed to a fraction option.
	ErrBadBound = errors.New("modint: fraction bound must be positive")
)

// Modulus supplies the prime modulus P of a field at the type level.
// Implementations are empty structs; Mod must return the same prime every call,
// and P must be below 2^62 so that a sum of two residues fits in an int64.
type Modulus interface {
	Mod() int64
}

// Mod1e9_7 is the prime 1_000_000_007.
type Mod1e9_7 struct{}

// Mod returns 1_000_000_007.
func (Mod1e9_7) Mod() int64 { return 1_000_000_007 }

// Mod998244353 is the NTT-friendly prime 998_244_353.
type Mod998244353 struct{}

// Mod returns 998_244_353.
func (Mod998244353) Mod() int64 { return 998_244_353 }

// Z is the field element type for the default modulus 1e9+7.
type Z = Int[Mod1e9_7]

// NewZ reduces v into Z.
func NewZ(v int64) Z { return New[Mod1e9_7](v) }

// Fraction is a rational p/q recovered from a field element.
type Fraction struct {
	Num int64 // numerator p, 0 ≤ p ≤ MaxNumerator
	Den int64 // denominator q, 1 ≤ q ≤ MaxDenominator
}

// String formats the fraction as "p/q".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Default search bounds for FindFraction.
const (
	DefaultMaxNumerator   int64 = 100
	DefaultMaxDenominator int64 = 1_000_000
)

// notFound is what FractionString prints when the search fails.
const notFound = "not find."

// FractionOptions bounds the brute-force search of FindFraction.
//
// MaxNumerator   – largest accepted residue (value*q) mod P.
// MaxDenominator – last denominator q tried; the scan is O(MaxDenominator).
type FractionOptions struct {
	MaxNumerator   int64
	MaxDenominator int64
}

// FractionOption is a functional option for FindFraction.
type FractionOption func(*FractionOptions)

// WithMaxNumerator sets the largest acceptable numerator. Panics if n ≤ 0.
func WithMaxNumerator(n int64) FractionOption {
	return func(o *FractionOptions) {
		if n <= 0 {
			panic(ErrBadBound.Error())
		}
		o.MaxNumerator = n
	}
}

// WithMaxDenominator sets the last denominator tried. Panics if q ≤ 0.
func WithMaxDenominator(q int64) FractionOption {
	return func(o *FractionOptions) {
		if q <= 0 {
			panic(ErrBadBound.Error())
		}
		o.MaxDenominator = q
	}
}

// DefaultFractionOptions returns the bounds 100 / 1e6.
func DefaultFractionOptions() FractionOptions {
	return FractionOptions{
		MaxNumerator:   DefaultMaxNumerator,
		MaxDenominator: DefaultMaxDenominator,
	}
}
