// SPDX-License-Identifier: MIT
// Package: groebner/ideal
//
// reduce.go — minimal/reduced filtering of a generated basis.
//
// Steps:
//  1. Scale every element to leading coefficient 1.
//  2. For element i let V_i be its non-constant part and L the leading
//     terms of every other element, skipping any that equals V_i.
//     Element i is dropped when some LT_j ≠ LT_i divides LT_i, or when
//     V_i mod L is a constant.
//  3. Survivors are kept in visit order, skipping structural duplicates.
//
// A basis containing a non-zero constant generates the unit ideal and
// reduces to [1].

package ideal

import (
	"fmt"

	"github.com/katalvlaran/groebner/poly"
	"github.com/katalvlaran/groebner/rational"
)

// Reduce filters basis to its minimal/reduced form. Zero elements are
// ignored; an empty input yields an empty result.
// Elements must share variables and term order.
func Reduce(basis []poly.Polynomial) ([]poly.Polynomial, error) {
	if len(basis) == 0 {
		return []poly.Polynomial{}, nil
	}
	if err := checkShared("Reduce", basis); err != nil {
		return nil, err
	}

	return reduce(basis, basis[0].Variables(), basis[0].Order())
}

func reduce(basis []poly.Polynomial, vars poly.VariableOrder, order poly.TermOrder) ([]poly.Polynomial, error) {
	monic := make([]poly.Polynomial, 0, len(basis))
	for _, b := range basis {
		if b.IsZero() {
			continue
		}
		if b.IsConstant() {
			return []poly.Polynomial{poly.ConstantPolynomial(rational.One(), vars, order)}, nil
		}
		if !b.LeadingCoefficient().IsOne() {
			m, err := b.Monic()
			if err != nil {
				return nil, fmt.Errorf("Reduce: %w", err)
			}
			b = m
		}
		monic = append(monic, b)
	}

	out := make([]poly.Polynomial, 0, len(monic))
	for i, f := range monic {
		keep, err := survives(monic, i)
		if err != nil {
			return nil, err
		}
		if !keep || contains(out, f) {
			continue
		}
		out = append(out, f)
	}

	return out, nil
}

// survives applies the minimality and remainder tests to monic[i].
func survives(monic []poly.Polynomial, i int) (bool, error) {
	f := monic[i]
	lti := f.LeadingTerm()
	divided := f.VariablePart()

	leading := make([]poly.Polynomial, 0, len(monic)-1)
	for j, g := range monic {
		if j == i {
			continue
		}
		ltj := g.LeadingTerm()
		lt := poly.FromTerm(ltj, g.Order())
		if divided.Equal(lt) {
			continue
		}
		leading = append(leading, lt)
		if !lti.Equal(ltj) && ltj.Divides(lti) {
			return false, nil
		}
	}
	if len(leading) == 0 {
		return !divided.IsConstant(), nil
	}
	r, err := divided.Remainder(leading...)
	if err != nil {
		return false, fmt.Errorf("Reduce: element %d: %w", i, err)
	}

	return !r.IsConstant(), nil
}

func contains(ps []poly.Polynomial, p poly.Polynomial) bool {
	for _, q := range ps {
		if q.Equal(p) {
			return true
		}
	}

	return false
}
