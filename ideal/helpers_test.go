package ideal_test

import (
	"testing"

	"github.com/katalvlaran/groebner/ideal"
	"github.com/katalvlaran/groebner/poly"
	"github.com/katalvlaran/groebner/rational"
	"github.com/stretchr/testify/require"
)

var (
	xyz  = poly.NewVariableOrder("x", "y", "z")
	txyz = poly.NewVariableOrder("t", "x", "y", "z")
)

// tm is num/den times the power product given by exps (positional).
type tm struct {
	num, den int64
	exps     []int
}

// m is shorthand for tm{num, den, exps}.
func m(num, den int64, exps ...int) tm { return tm{num: num, den: den, exps: exps} }

// polyOf builds a polynomial over vars under order, failing the test on error.
func polyOf(tb testing.TB, vars poly.VariableOrder, order poly.TermOrder, terms ...tm) poly.Polynomial {
	tb.Helper()
	ts := make([]poly.Term, len(terms))
	for i, t := range terms {
		c, err := rational.New(t.num, t.den)
		require.NoError(tb, err)
		ts[i], err = poly.TermOf(c, vars, t.exps...)
		require.NoError(tb, err)
	}
	p, err := poly.NewPolynomial(order, ts...)
	require.NoError(tb, err)

	return p
}

// mustIdeal wraps ideal.New.
func mustIdeal(tb testing.TB, gens ...poly.Polynomial) *ideal.Ideal {
	tb.Helper()
	id, err := ideal.New(gens)
	require.NoError(tb, err)

	return id
}

// strs renders every polynomial.
func strs(ps []poly.Polynomial) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}

	return out
}

// requireGroebner checks Buchberger's criterion: every S-polynomial of the
// basis reduces to zero modulo the basis.
func requireGroebner(tb testing.TB, basis []poly.Polynomial) {
	tb.Helper()
	for i := range basis {
		for j := i + 1; j < len(basis); j++ {
			s, err := basis[i].SPolynomial(basis[j])
			require.NoError(tb, err)
			r, err := s.Remainder(basis...)
			require.NoError(tb, err)
			require.True(tb, r.IsZero(), "S(%s, %s) leaves %s", basis[i], basis[j], r)
		}
	}
}

// cox is <x^3-2xy, x^2y-2y^2+x> over (x, y, z).
func cox(tb testing.TB, order poly.TermOrder) *ideal.Ideal {
	tb.Helper()
	return mustIdeal(tb,
		polyOf(tb, xyz, order, m(1, 1, 3), m(-2, 1, 1, 1)),
		polyOf(tb, xyz, order, m(1, 1, 2, 1), m(-2, 1, 0, 2), m(1, 1, 1)),
	)
}

// circle is <xy-1, x^2+y^2-4> over (x, y, z).
func circle(tb testing.TB, order poly.TermOrder) *ideal.Ideal {
	tb.Helper()
	return mustIdeal(tb,
		polyOf(tb, xyz, order, m(1, 1, 1, 1), m(-1, 1)),
		polyOf(tb, xyz, order, m(1, 1, 2), m(1, 1, 0, 2), m(-4, 1)),
	)
}

// lines is <-x-y, 2x-1> over (x, y, z).
func lines(tb testing.TB, order poly.TermOrder) *ideal.Ideal {
	tb.Helper()
	return mustIdeal(tb,
		polyOf(tb, xyz, order, m(-1, 1, 1), m(-1, 1, 0, 1)),
		polyOf(tb, xyz, order, m(2, 1, 1), m(-1, 1)),
	)
}
