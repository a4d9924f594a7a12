package poly_test

import (
	"testing"

	"github.com/katalvlaran/groebner/poly"
	"github.com/katalvlaran/groebner/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVariableOrder_Dedup verifies first-occurrence-wins deduplication and value equality.
func TestVariableOrder_Dedup(t *testing.T) {
	v := poly.NewVariableOrder("x", "y", "x", "z", "y")
	assert.Equal(t, []string{"x", "y", "z"}, v.Names())
	assert.Equal(t, 3, v.Len())
	assert.True(t, v.Equal(xyz), "independently built orders must be equal")
	assert.False(t, v.Equal(poly.NewVariableOrder("y", "x", "z")))

	i, ok := v.Index("z")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = v.Index("w")
	assert.False(t, ok)
	assert.Equal(t, "(x, y, z)", v.String())
}

// TestNewTerm_Validation covers negative exponents, unknown variables and
// the zero-term invariant.
func TestNewTerm_Validation(t *testing.T) {
	_, err := poly.NewTerm(rational.One(), map[string]int{"x": -1}, xyz)
	assert.ErrorIs(t, err, poly.ErrNegativeExponent)

	_, err = poly.TermOf(rational.One(), xyz, 1, -2)
	assert.ErrorIs(t, err, poly.ErrNegativeExponent)

	_, err = poly.NewTerm(rational.One(), map[string]int{"w": 1}, xyz)
	assert.ErrorIs(t, err, poly.ErrVariableMismatch)

	_, err = poly.TermOf(rational.One(), xyz, 1, 2, 3, 4)
	assert.ErrorIs(t, err, poly.ErrVariableMismatch)

	z, err := poly.NewTerm(rational.Zero(), map[string]int{"x": 3}, xyz)
	require.NoError(t, err)
	assert.True(t, z.IsZero())
	assert.True(t, z.HasNoVariables(), "zero term carries no exponents")
	assert.Empty(t, z.Exponents())

	tm, err := poly.NewTerm(rational.FromInt(-2), map[string]int{"x": 3, "y": 2, "z": 0}, xyz)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"x": 3, "y": 2}, tm.Exponents())
	assert.Equal(t, []int{3, 2, 0}, tm.MultiDegree())
	assert.Equal(t, 5, tm.Degree())
	assert.Equal(t, 3, tm.Exponent("x"))
	assert.Equal(t, 0, tm.Exponent("z"))
	assert.Equal(t, -1, tm.Sign())
}

// TestTerm_Add checks that only like terms combine.
func TestTerm_Add(t *testing.T) {
	a := mono(t, xyz, 2, 1, 1, 1)
	b := mono(t, xyz, 3, 1, 1, 1)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "5xy", sum.String())

	diff, err := a.Sub(a)
	require.NoError(t, err)
	assert.True(t, diff.IsZero())

	_, err = a.Add(mono(t, xyz, 1, 1, 1))
	assert.ErrorIs(t, err, poly.ErrVariableMismatch, "unlike terms must not add")

	other := poly.NewVariableOrder("x", "y")
	_, err = a.Add(mono(t, other, 1, 1, 1, 1))
	assert.ErrorIs(t, err, poly.ErrVariableMismatch, "different variable orders must not add")
}

// TestTerm_Mul checks exponent addition and coefficient product.
func TestTerm_Mul(t *testing.T) {
	a := mono(t, xyz, 1, 2, 2, 1)     // 1/2 x^2 y
	b := mono(t, xyz, -3, 1, 1, 0, 1) // -3 x z
	p, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, "-3/2x^3yz", p.String())

	_, err = a.Mul(mono(t, poly.NewVariableOrder("y", "x"), 1, 1, 1))
	assert.ErrorIs(t, err, poly.ErrVariableMismatch)
}

// TestTerm_DivMod covers exact division, non-divisibility and zero divisors.
func TestTerm_DivMod(t *testing.T) {
	a := mono(t, xyz, 3, 1, 3, 2)    // 3x^3y^2
	b := mono(t, xyz, 2, 1, 1, 1)    // 2xy
	c := mono(t, xyz, 1, 1, 0, 0, 1) // z

	q, r, err := a.DivMod(b)
	require.NoError(t, err)
	assert.Equal(t, "3/2x^2y", q.String())
	assert.True(t, r.IsZero())

	q, r, err = a.DivMod(c)
	require.NoError(t, err)
	assert.True(t, q.IsZero(), "missing variable: division must not proceed")
	assert.True(t, r.Equal(a))

	q, r, err = b.DivMod(a)
	require.NoError(t, err)
	assert.True(t, q.IsZero(), "exponent would go negative")
	assert.True(t, r.Equal(b))

	q, r, err = a.DivMod(poly.ConstantTerm(rational.FromInt(3), xyz))
	require.NoError(t, err)
	assert.Equal(t, "x^3y^2", q.String())
	assert.True(t, r.IsZero())

	_, _, err = a.DivMod(poly.ZeroTerm(xyz))
	assert.ErrorIs(t, err, poly.ErrDivisionByZero)
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)

	assert.True(t, b.Divides(a))
	assert.False(t, a.Divides(b))
	assert.False(t, c.Divides(a))
}

// TestTerm_LCM checks per-variable maxima and the unit coefficient.
func TestTerm_LCM(t *testing.T) {
	a := mono(t, xyz, 5, 1, 2, 1)     // 5x^2y
	b := mono(t, xyz, -7, 3, 1, 0, 3) // -7/3xz^3
	l, err := a.LCM(b)
	require.NoError(t, err)
	assert.Equal(t, "x^2yz^3", l.String())
	assert.True(t, l.Coefficient().IsOne())

	_, err = a.LCM(mono(t, poly.NewVariableOrder("x"), 1, 1, 1))
	assert.ErrorIs(t, err, poly.ErrVariableMismatch)
}

// TestTerm_String covers the rendering rules for coefficients and exponents.
func TestTerm_String(t *testing.T) {
	tests := []struct {
		name string
		term poly.Term
		want string
	}{
		{"negative integer coefficient", mono(t, xyz, -2, 1, 3, 2), "-2x^3y^2"},
		{"fraction coefficient", mono(t, xyz, 4, 5, 1, 1), "4/5xy"},
		{"unit coefficient elided", mono(t, xyz, 1, 1, 3, 1, 1), "x^3yz"},
		{"minus one elided to sign", mono(t, xyz, -1, 1, 0, 1), "-y"},
		{"constant", mono(t, xyz, 7, 1), "7"},
		{"unit constant kept", mono(t, xyz, -1, 1), "-1"},
		{"zero", poly.ZeroTerm(xyz), "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.term.String())
		})
	}
}

// TestTerm_Equal distinguishes structural equality from power-product equality.
func TestTerm_Equal(t *testing.T) {
	a := mono(t, xyz, 2, 1, 1, 1)
	b := mono(t, xyz, 3, 1, 1, 1)
	assert.True(t, a.SamePowerProduct(b))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(mono(t, poly.NewVariableOrder("x", "y", "z"), 2, 1, 1, 1)))
	assert.False(t, a.Neg().Equal(a))
	assert.True(t, a.Neg().Neg().Equal(a))
}
