// SPDX-License-Identifier: MIT
// Package: groebner/rational
//
// errors.go — sentinel errors for the rational package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors and Div/Reciprocal return the sentinel wrapped with the
//     method name ("Reciprocal: %w") so messages stay greppable.

package rational

import "errors"

// ErrDivisionByZero is returned when a zero denominator is requested, or when
// Div/Reciprocal is applied to a zero value.
var ErrDivisionByZero = errors.New("rational: division by zero")
