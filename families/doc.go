// SPDX-License-Identifier: MIT

// Package families builds generating sets of standard benchmark ideals for
// the Gröbner basis engine in package ideal.
//
// What
//
//   - Cyclic(n):           the cyclic n-roots system in n unknowns.
//   - Katsura(n):          the Katsura-n system in n+1 unknowns.
//   - MonomialCurve(e...): t^e_i - y_i, the implicitization input for a
//     monomial curve.
//
// Each constructor returns a Family; Generators resolves options and
// produces the polynomials, Build wraps them in an ideal.Ideal.
//
// Options
//
//   - WithTermOrder(o):        term order of every generator (default Grevlex).
//   - WithVariablePrefix(p):   variables p0, p1, ... (default "x").
//   - WithVariables(names...): explicit names; count must match the family.
//
// Determinism
//
//	Variables are named in index order and terms are emitted in a fixed
//	order, so equal parameters and options always yield equal generators.
//
// Errors
//
//   - ErrTooFewVariables  size parameter below the family minimum.
//   - ErrBadExponent      MonomialCurve with an exponent < 1.
//   - ErrVariableCount    WithVariables supplied the wrong number of names.
//   - ErrNilFamily        nil Family.
//
// Usage
//
//	id, err := families.Build(families.MonomialCurve(3, 4, 5),
//		families.WithTermOrder(poly.Lex{}),
//		families.WithVariables("t", "x", "y", "z"),
//	)
//	basis, err := id.GroebnerBasis()
package families
