package poly_test

import (
	"testing"

	"github.com/katalvlaran/groebner/poly"
	"github.com/katalvlaran/groebner/rational"
	"github.com/stretchr/testify/require"
)

// xyz is the variable order used by most fixtures (x > y > z).
var xyz = poly.NewVariableOrder("x", "y", "z")

// mono builds num/den · x^a y^b z^c over vars, failing the test on error.
func mono(tb testing.TB, vars poly.VariableOrder, num, den int64, exps ...int) poly.Term {
	tb.Helper()
	c, err := rational.New(num, den)
	require.NoError(tb, err)
	t, err := poly.TermOf(c, vars, exps...)
	require.NoError(tb, err)

	return t
}

// mustPoly builds a polynomial, failing the test on error.
func mustPoly(tb testing.TB, order poly.TermOrder, terms ...poly.Term) poly.Polynomial {
	tb.Helper()
	p, err := poly.NewPolynomial(order, terms...)
	require.NoError(tb, err)

	return p
}

// reconstruct returns Σ quotients[i]·divisors[i] + remainder.
func reconstruct(tb testing.TB, quotients, divisors []poly.Polynomial, remainder poly.Polynomial) poly.Polynomial {
	tb.Helper()
	sum := remainder
	for i := range divisors {
		prod, err := quotients[i].Mul(divisors[i])
		require.NoError(tb, err)
		sum, err = sum.Add(prod)
		require.NoError(tb, err)
	}

	return sum
}
