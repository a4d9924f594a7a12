// SPDX-License-Identifier: MIT

// Package rational provides exact arbitrary-precision fractions used as
// polynomial coefficients.
//
// What
//
//   - Rational is an immutable value: every operation returns a new value
//     that is already in lowest terms with a strictly positive denominator.
//   - Zero is always represented as 0/1. The Go zero value of Rational is a
//     valid zero and can be used without a constructor.
//   - Division by zero (zero denominator, Div by zero, Reciprocal of zero)
//     is reported as ErrDivisionByZero; no method panics except MustNew.
//
// Rendering
//
//	String returns "n" when the denominator is 1 and "n/d" otherwise,
//	e.g. "-1/2", "3", "0".
//
// Complexity
//
//	Every operation is dominated by one big.Int gcd on the result, i.e.
//	quadratic in the bit length of the operands in the worst case.
//
// Usage
//
//	half, err := rational.New(5, 10) // 1/2
//	if err != nil {
//		// ErrDivisionByZero
//	}
//	sum := half.Add(rational.FromInt(1)) // 3/2
//	fmt.Println(sum)                     // "3/2"
package rational
