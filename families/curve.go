// SPDX-License-Identifier: MIT
// Package: groebner/families
//
// curve.go — implicitization input for the monomial curve
// t ↦ (t^e_1, ..., t^e_k).
//
// Contract:
//   • k ≥ 1 exponents, each ≥ 1 (else ErrTooFewVariables / ErrBadExponent).
//   • Variables: the parameter first, then one coordinate per exponent,
//     k+1 in total.
//   • Emits t^e_i - y_i for i = 1 .. k. Under Lex the reduced basis
//     eliminates t: its t-free elements cut out the curve.

package families

import (
	"fmt"

	"github.com/katalvlaran/groebner/poly"
)

const methodCurve = "MonomialCurve"

// MonomialCurve returns the parametrization ideal of t ↦ (t^e_1, ..., t^e_k).
func MonomialCurve(exps ...int) Family {
	return func(cfg config) ([]poly.Polynomial, error) {
		if len(exps) == 0 {
			return nil, fmt.Errorf("%s: no exponents: %w", methodCurve, ErrTooFewVariables)
		}
		for i, e := range exps {
			if e < 1 {
				return nil, fmt.Errorf("%s: exponent %d is %d: %w", methodCurve, i, e, ErrBadExponent)
			}
		}
		k := len(exps)
		vars, err := cfg.variables(methodCurve, k+1)
		if err != nil {
			return nil, err
		}

		gens := make([]poly.Polynomial, 0, k)
		for i, e := range exps {
			param, err := product(vars, 1, []int{e})
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodCurve, err)
			}
			coord := make([]int, k+1)
			coord[i+1] = 1
			y, err := product(vars, -1, coord)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodCurve, err)
			}
			p, err := poly.NewPolynomial(cfg.order, param, y)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodCurve, err)
			}
			gens = append(gens, p)
		}

		return gens, nil
	}
}
