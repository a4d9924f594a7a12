// SPDX-License-Identifier: MIT
// Package: groebner/poly
//
// division.go — multivariate division by an ordered list of divisors.
//
// Algorithm Outline:
//  1. working := p; quotients[i] := 0; remainder := 0.
//  2. While working != 0, take lt := LT(working) and scan divisors in the
//     given order:
//     - first i with LT(divisors[i]) | lt: q := lt / LT(divisors[i]);
//     quotients[i] += q; working -= q·divisors[i]; rescan.
//     - none divides: move lt from working into remainder.
//  3. Result satisfies p = Σ quotients[i]·divisors[i] + remainder, and no
//     term of remainder is divisible by any LT(divisors[i]).
//
// Termination: every step removes the current leading term of working and
// only introduces smaller terms under the (well-)order.
//
// Complexity: dominated by the number of reduction steps times the cost of
// one polynomial subtraction, O(s · (|working| + |divisor|) log) per step.

package poly

import "fmt"

// DivMod divides p by divisors (in the given order) and returns one
// quotient per divisor plus the remainder.
//
// Errors: ErrEmptyDivisors with no divisors, ErrTermOrderMismatch /
// ErrVariableMismatch on incompatible operands, ErrDivisionByZero when a
// divisor is the zero polynomial.
func (p Polynomial) DivMod(divisors ...Polynomial) (quotients []Polynomial, remainder Polynomial, err error) {
	if len(divisors) == 0 {
		return nil, Polynomial{}, fmt.Errorf("DivMod: %w", ErrEmptyDivisors)
	}
	for i, d := range divisors {
		if err := p.compatible("DivMod", d); err != nil {
			return nil, Polynomial{}, fmt.Errorf("divisor %d: %w", i, err)
		}
	}

	quotientTerms := make([][]Term, len(divisors))
	var remTerms []Term

	working := p
	for !working.IsZero() {
		lt := working.LeadingTerm()
		divided := false
		for i, d := range divisors {
			q, r, err := lt.DivMod(d.LeadingTerm())
			if err != nil {
				return nil, Polynomial{}, fmt.Errorf("DivMod: divisor %d: %w", i, err)
			}
			if !r.IsZero() {
				continue
			}
			quotientTerms[i] = append(quotientTerms[i], q)
			working = working.sub(d.mulTerm(q))
			divided = true

			break
		}
		if !divided {
			remTerms = append(remTerms, lt)
			working = working.dropLeading()
		}
	}

	quotients = make([]Polynomial, len(divisors))
	for i, qs := range quotientTerms {
		if len(qs) == 0 {
			quotients[i] = ZeroPolynomial(p.vars, p.order)

			continue
		}
		quotients[i] = build(p.order, p.vars, qs)
	}
	remainder = ZeroPolynomial(p.vars, p.order)
	if len(remTerms) > 0 {
		remainder = build(p.order, p.vars, remTerms)
	}

	return quotients, remainder, nil
}

// Remainder returns only the remainder of DivMod.
func (p Polynomial) Remainder(divisors ...Polynomial) (Polynomial, error) {
	_, r, err := p.DivMod(divisors...)

	return r, err
}

// DivModBy divides p by a single divisor.
func (p Polynomial) DivModBy(divisor Polynomial) (quotient, remainder Polynomial, err error) {
	qs, r, err := p.DivMod(divisor)
	if err != nil {
		return Polynomial{}, Polynomial{}, err
	}

	return qs[0], r, nil
}

// dropLeading returns p without its leading term (p - LT(p)).
func (p Polynomial) dropLeading() Polynomial {
	if len(p.terms) <= 1 {
		return ZeroPolynomial(p.vars, p.order)
	}

	return Polynomial{terms: p.terms[1:], vars: p.vars, order: p.order}
}
