// SPDX-License-Identifier: MIT

// Package poly implements multivariate polynomials over Q: variable orders,
// terms, term orders and polynomials with multi-divisor division and
// S-polynomials.
//
// What
//
//   - VariableOrder: ordered, duplicate-free variable names shared by every
//     value taking part in one computation (compared by value).
//   - Term: rational coefficient times a power product. Supports Neg, Add
//     (like terms only), Mul, DivMod (exact divisibility), LCM, Degree and
//     MultiDegree.
//   - TermOrder: Lex, Grlex, Grevlex. Stateless; equality is by Kind.
//   - Polynomial: terms sorted strictly descending by the term order with like
//     terms combined; the zero polynomial is a single zero term. Supports Add,
//     Sub, Neg, Mul, Scale, Monic, DivMod against an ordered divisor list,
//     SPolynomial and VariablePart.
//
// Why
//
//	These are the building blocks of Buchberger's algorithm (package ideal):
//	division decides whether an S-polynomial is already covered by a basis,
//	and S-polynomials surface new basis elements.
//
// Determinism
//
//	Every value is immutable. Sorting is stable and like-term combination is
//	exact, so identical inputs always produce identical term sequences and
//	identical String renderings.
//
// Errors
//
//   - ErrNegativeExponent   negative exponent at term construction.
//   - ErrVariableMismatch   different VariableOrders, unknown variables,
//     or Term.Add on unlike terms.
//   - ErrTermOrderMismatch  polynomials under different strategies.
//   - ErrEmptyTerms         NewPolynomial with no terms.
//   - ErrEmptyDivisors      DivMod/Remainder with no divisors.
//   - ErrDivisionByZero     division by a zero term/polynomial.
//   - ErrUnknownTermOrder   ParseTermOrder with an unsupported name.
//
// Usage
//
//	vars := poly.NewVariableOrder("x", "y")
//	one := rational.One()
//	xy, _ := poly.TermOf(one, vars, 1, 1)
//	c, _ := poly.TermOf(rational.FromInt(-1), vars)
//	f, _ := poly.NewPolynomial(poly.Lex{}, xy, c) // xy-1
//	fmt.Println(f)
package poly
