// SPDX-License-Identifier: MIT
// Package: groebner/poly
//
// errors.go — sentinel errors for terms, term orders and polynomials.
//
// Error policy (explicit and strict):
//   • Only sentinel variables are exposed; callers MUST use errors.Is.
//   • Call sites attach method context with %w ("Add: %w", "DivMod: divisor 2: %w").
//   • Every failure is a precondition violation: no partial value is ever
//     returned alongside a non-nil error.

package poly

import (
	"errors"

	"github.com/katalvlaran/groebner/rational"
)

var (
	// ErrNegativeExponent is returned when a term is built with an exponent < 0.
	ErrNegativeExponent = errors.New("poly: negative exponent")

	// ErrVariableMismatch is returned when operands use different variable
	// orders, when an unknown variable is referenced, or when Term.Add is
	// applied to unlike terms.
	ErrVariableMismatch = errors.New("poly: variable mismatch")

	// ErrTermOrderMismatch is returned when polynomials combined in one
	// operation use different term order strategies (or none at all).
	ErrTermOrderMismatch = errors.New("poly: term order mismatch")

	// ErrEmptyTerms is returned by NewPolynomial when no terms are supplied.
	ErrEmptyTerms = errors.New("poly: empty term list")

	// ErrEmptyDivisors is returned by DivMod/Remainder with no divisors.
	ErrEmptyDivisors = errors.New("poly: empty divisor list")

	// ErrUnknownTermOrder is returned by ParseTermOrder for unsupported names.
	ErrUnknownTermOrder = errors.New("poly: unknown term order")
)

// ErrDivisionByZero aliases the rational sentinel so callers of this package
// can match coefficient division failures without importing rational.
var ErrDivisionByZero = rational.ErrDivisionByZero
