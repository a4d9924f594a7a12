// SPDX-License-Identifier: MIT

// Package groebner computes Gröbner bases of polynomial ideals over the
// rationals with Buchberger's algorithm, in pure Go and exact arithmetic.
//
// 🚀 What is groebner?
//
//	A small, dependency-light library that brings together:
//		• Exact rationals: always reduced, arbitrary precision
//		• Multivariate terms and polynomials over a shared variable order
//		• Term orders: Lex, Grlex, Grevlex
//		• Division by an ordered list of divisors, S-polynomials
//		• Buchberger's algorithm: naive and optimized (pair queue + criteria)
//		• Reduction of a generated basis to minimal/reduced form
//		• Benchmark ideals: cyclic n-roots, Katsura, monomial curves
//
// ✨ Why choose groebner?
//
//   - No floating point anywhere: every coefficient is an exact fraction
//   - Deterministic: same input, same basis, same order
//   - Observable: hooks report every resolved pair and every new element
//   - Cancellable: context-aware generation, bounded-parallel batch runs
//
// Everything is organized under four subpackages:
//
//	rational/  exact fraction arithmetic (math/big backed)
//	poly/      VariableOrder, Term, TermOrder, Polynomial, division
//	ideal/     Ideal, GroebnerBasis, BasicGroebnerBasis, Reduce, ComputeAll
//	families/  Cyclic, Katsura, MonomialCurve generator sets
//
// Quick example (lex eliminates x from xy-1 = x^2+y^2-4 = 0):
//
//	x+y^3-4y
//	y^4-4y^2+1
//
//	go get github.com/katalvlaran/groebner
package groebner
