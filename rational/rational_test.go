package rational_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/groebner/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Normalization checks sign placement and gcd reduction.
func TestNew_Normalization(t *testing.T) {
	tests := []struct {
		name             string
		num, den         int64
		wantNum, wantDen int64
	}{
		{"simple fraction", 3, 4, 3, 4},
		{"reduces to lowest terms", 5, 10, 1, 2},
		{"negative numerator", -3, 4, -3, 4},
		{"negative denominator", 3, -4, -3, 4},
		{"both negative", -6, -8, 3, 4},
		{"zero numerator", 0, 57, 0, 1},
		{"zero over negative", 0, -3, 0, 1},
		{"integer", 12, 4, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := rational.New(tt.num, tt.den)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNum, r.Num().Int64())
			assert.Equal(t, tt.wantDen, r.Den().Int64())
		})
	}
}

// TestNew_NormalizationProperty sweeps a small grid and checks the invariants
// gcd(|n|, d) == 1 and d > 0 for every non-zero denominator.
func TestNew_NormalizationProperty(t *testing.T) {
	for n := int64(-12); n <= 12; n++ {
		for d := int64(-12); d <= 12; d++ {
			if d == 0 {
				continue
			}
			r, err := rational.New(n, d)
			require.NoError(t, err)
			assert.Equal(t, 1, r.Den().Sign(), "denominator must be positive for %d/%d", n, d)
			g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(r.Num()), r.Den())
			assert.Equal(t, int64(1), g.Int64(), "gcd must be 1 for %d/%d", n, d)
			if n == 0 {
				assert.True(t, r.Equal(rational.Zero()), "0/%d must equal 0/1", d)
			}
		}
	}
}

// TestNew_ZeroDenominator verifies ErrDivisionByZero on construction.
func TestNew_ZeroDenominator(t *testing.T) {
	_, err := rational.New(5, 0)
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)

	_, err = rational.New(0, 0)
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)

	_, err = rational.NewBig(big.NewInt(1), nil)
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)

	assert.Panics(t, func() { rational.MustNew(1, 0) })
}

// TestNewBig_NoAliasing ensures caller-owned big.Ints are not retained.
func TestNewBig_NoAliasing(t *testing.T) {
	n, d := big.NewInt(2), big.NewInt(3)
	r, err := rational.NewBig(n, d)
	require.NoError(t, err)
	n.SetInt64(100)
	d.SetInt64(7)
	assert.Equal(t, "2/3", r.String())

	got := r.Num()
	got.SetInt64(9)
	assert.Equal(t, "2/3", r.String())
}

// TestArithmetic covers the four field operations on a few representative values.
func TestArithmetic(t *testing.T) {
	half := rational.MustNew(1, 2)
	third := rational.MustNew(1, 3)
	negQuarter := rational.MustNew(-1, 4)

	assert.Equal(t, "5/6", half.Add(third).String())
	assert.Equal(t, "1/6", half.Sub(third).String())
	assert.Equal(t, "-1/6", third.Sub(half).String())
	assert.Equal(t, "1/6", half.Mul(third).String())
	assert.Equal(t, "-1/8", half.Mul(negQuarter).String())

	q, err := half.Div(third)
	require.NoError(t, err)
	assert.Equal(t, "3/2", q.String())

	q, err = negQuarter.Div(half)
	require.NoError(t, err)
	assert.Equal(t, "-1/2", q.String())

	_, err = half.Div(rational.Zero())
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)

	assert.True(t, half.Add(half.Neg()).IsZero())
	assert.True(t, half.Add(half).IsOne())
}

// TestUnary covers Neg, Abs, Reciprocal and Sign.
func TestUnary(t *testing.T) {
	r := rational.MustNew(-3, 7)

	assert.Equal(t, "3/7", r.Neg().String())
	assert.Equal(t, "3/7", r.Abs().String())
	assert.Equal(t, "3/7", r.Neg().Abs().String())
	assert.Equal(t, -1, r.Sign())
	assert.Equal(t, 1, r.Neg().Sign())
	assert.Equal(t, 0, rational.Zero().Sign())
	assert.True(t, rational.Zero().Neg().IsZero())

	inv, err := r.Reciprocal()
	require.NoError(t, err)
	assert.Equal(t, "-7/3", inv.String())

	_, err = rational.Zero().Reciprocal()
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)
}

// TestPredicates covers IsZero/IsOne/Equal/Cmp and the usable zero value.
func TestPredicates(t *testing.T) {
	var zero rational.Rational
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsOne())
	assert.Equal(t, "0", zero.String())
	assert.True(t, zero.Equal(rational.MustNew(0, 57)))

	assert.True(t, rational.One().IsOne())
	assert.False(t, rational.MustNew(1, 2).IsOne())
	assert.False(t, rational.MustNew(1, 2).IsZero())
	assert.True(t, rational.MustNew(2, 4).Equal(rational.MustNew(-1, -2)))
	assert.False(t, rational.MustNew(1, 2).Equal(rational.MustNew(-1, 2)))

	assert.Equal(t, -1, rational.MustNew(1, 3).Cmp(rational.MustNew(1, 2)))
	assert.Equal(t, 1, rational.MustNew(1, 2).Cmp(rational.MustNew(1, 3)))
	assert.Equal(t, 0, rational.MustNew(2, 6).Cmp(rational.MustNew(1, 3)))
}

// TestString checks the "n" / "n/d" rendering.
func TestString(t *testing.T) {
	assert.Equal(t, "1/2", rational.MustNew(5, 10).String())
	assert.Equal(t, "0", rational.MustNew(0, 3).String())
	assert.Equal(t, "1", rational.One().String())
	assert.Equal(t, "-4", rational.FromInt(-4).String())
	assert.Equal(t, "-2/5", rational.MustNew(2, -5).String())
}
