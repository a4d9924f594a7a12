// SPDX-License-Identifier: MIT
// Package: groebner/ideal
//
// criteria.go — Buchberger's pair elimination criteria.

package ideal

import "github.com/katalvlaran/groebner/poly"

// coprime reports whether lcm equals LT_i·LT_j as a term, coefficient
// included. Pairs whose leading coefficients do not multiply to 1 are
// therefore never skipped here.
func coprime(lti, ltj, lcm poly.Term) (bool, error) {
	prod, err := ltj.Mul(lti)
	if err != nil {
		return false, err
	}

	return lcm.Equal(prod), nil
}

// redundant reports whether some k ∉ {p.i, p.j} has a leading term dividing
// lcm while neither (i, k) nor (j, k), in either orientation, is pending.
func (e *engine) redundant(p pair, lcm poly.Term) bool {
	for k := range e.basis {
		if k == p.i || k == p.j {
			continue
		}
		if e.linked(p, k) {
			continue
		}
		if e.basis[k].LeadingTerm().Divides(lcm) {
			return true
		}
	}

	return false
}

// linked reports whether a pending pair joins k to p.i or p.j.
func (e *engine) linked(p pair, k int) bool {
	for _, q := range e.pending {
		switch {
		case q.i == p.i && q.j == k, q.i == k && q.j == p.i:
			return true
		case q.i == p.j && q.j == k, q.i == k && q.j == p.j:
			return true
		}
	}

	return false
}
