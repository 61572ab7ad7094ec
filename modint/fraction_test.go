package modint_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpkit/modint"
)

func TestFindFraction_OneThird(t *testing.T) {
	v := modint.InvOf[modint.Mod1e9_7](3)
	f, ok := v.FindFraction()
	require.True(t, ok)
	assert.Equal(t, modint.Fraction{Num: 1, Den: 3}, f)
	assert.LessOrEqual(t, f.Den, int64(1_000_000))
	assert.LessOrEqual(t, f.Num, int64(100))
	// p/q must reproduce the value.
	assert.True(t, modint.NewZ(f.Num).Div(modint.NewZ(f.Den)).Equal(v))
	assert.Equal(t, "1/3", v.FractionString())
}

func TestFindFraction_SmallIntegers(t *testing.T) {
	f, ok := modint.NewZ(0).FindFraction()
	require.True(t, ok)
	assert.Equal(t, modint.Fraction{Num: 0, Den: 1}, f)

	f, ok = modint.NewZ(100).FindFraction()
	require.True(t, ok)
	assert.Equal(t, modint.Fraction{Num: 100, Den: 1}, f)
}

func TestFindFraction_Reproduces(t *testing.T) {
	for _, pq := range [][2]int64{{7, 12}, {99, 1000}, {3, 999_983}} {
		v := modint.NewZ(pq[0]).Div(modint.NewZ(pq[1]))
		f, ok := v.FindFraction()
		require.True(t, ok, "%d/%d", pq[0], pq[1])
		assert.True(t, modint.NewZ(f.Num).Div(modint.NewZ(f.Den)).Equal(v), "%d/%d -> %v", pq[0], pq[1], f)
		assert.LessOrEqual(t, f.Den, pq[1])
	}
}

func TestFindFraction_NotFound(t *testing.T) {
	// 101/1 is outside the numerator bound at q=1 and a tiny denominator bound stops the scan.
	v := modint.NewZ(101)
	_, ok := v.FindFraction(modint.WithMaxDenominator(1))
	assert.False(t, ok)
	assert.Equal(t, "not find.", v.FractionString(modint.WithMaxDenominator(1)))

	_, err := modint.FractionOf(v, modint.WithMaxDenominator(1))
	assert.True(t, errors.Is(err, modint.ErrFractionNotFound))

	f, ok := v.FindFraction(modint.WithMaxNumerator(101), modint.WithMaxDenominator(1))
	require.True(t, ok)
	assert.Equal(t, "101/1", f.String())
}

func TestFractionOptions_RejectNonPositive(t *testing.T) {
	assert.Panics(t, func() { modint.WithMaxNumerator(0)(&modint.FractionOptions{}) })
	assert.Panics(t, func() { modint.WithMaxDenominator(-3)(&modint.FractionOptions{}) })
}
