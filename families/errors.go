// SPDX-License-Identifier: MIT
// Package: groebner/families
//
// errors.go — sentinel errors for the families package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with %w ("Cyclic: n=1 < min=2: %w").
//   • Option constructors panic on meaningless input; families never panic.

package families

import "errors"

// ErrTooFewVariables indicates a size parameter below the family's minimum.
var ErrTooFewVariables = errors.New("families: too few variables")

// ErrBadExponent indicates a non-positive exponent in MonomialCurve.
var ErrBadExponent = errors.New("families: exponent must be positive")

// ErrVariableCount indicates that WithVariables supplied a different number
// of distinct names than the family needs.
var ErrVariableCount = errors.New("families: variable count mismatch")

// ErrNilFamily indicates a nil Family passed to Build or Generators.
var ErrNilFamily = errors.New("families: family is nil")
