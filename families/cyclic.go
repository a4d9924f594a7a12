// SPDX-License-Identifier: MIT
// Package: groebner/families
//
// cyclic.go — the cyclic n-roots system.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVariables).
//   • For d = 1 .. n-1 emits Σ_i Π_{k<d} x_{(i+k) mod n}.
//   • Emits x_0 x_1 ... x_{n-1} - 1 last.
//
// Complexity: O(n²) terms overall.

package families

import (
	"fmt"

	"github.com/katalvlaran/groebner/poly"
)

const (
	methodCyclic   = "Cyclic"
	minCyclicNodes = 2
)

// Cyclic returns the cyclic n-roots family.
func Cyclic(n int) Family {
	return func(cfg config) ([]poly.Polynomial, error) {
		if n < minCyclicNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCyclic, n, minCyclicNodes, ErrTooFewVariables)
		}
		vars, err := cfg.variables(methodCyclic, n)
		if err != nil {
			return nil, err
		}

		gens := make([]poly.Polynomial, 0, n)
		for d := 1; d < n; d++ {
			terms := make([]poly.Term, 0, n)
			for i := 0; i < n; i++ {
				exps := make([]int, n)
				for k := 0; k < d; k++ {
					exps[(i+k)%n]++
				}
				t, err := product(vars, 1, exps)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", methodCyclic, err)
				}
				terms = append(terms, t)
			}
			p, err := poly.NewPolynomial(cfg.order, terms...)
			if err != nil {
				return nil, fmt.Errorf("%s: degree %d: %w", methodCyclic, d, err)
			}
			gens = append(gens, p)
		}

		all := make([]int, n)
		for i := range all {
			all[i] = 1
		}
		lead, err := product(vars, 1, all)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodCyclic, err)
		}
		one, err := product(vars, -1, nil)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodCyclic, err)
		}
		p, err := poly.NewPolynomial(cfg.order, lead, one)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodCyclic, err)
		}

		return append(gens, p), nil
	}
}
