// SPDX-License-Identifier: MIT
// Package: groebner/families
//
// katsura.go — the Katsura-n system in n+1 unknowns u_0 .. u_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVariables).
//   • First generator: u_0 + 2 Σ_{i≥1} u_i - 1.
//   • Then for m = 0 .. n-1: Σ_{l=-n..n} u_|l| u_|m-l| - u_m, where
//     u_k = 0 for k > n.

package families

import (
	"fmt"

	"github.com/katalvlaran/groebner/poly"
)

const (
	methodKatsura = "Katsura"
	minKatsura    = 1
)

// Katsura returns the Katsura-n family.
func Katsura(n int) Family {
	return func(cfg config) ([]poly.Polynomial, error) {
		if n < minKatsura {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodKatsura, n, minKatsura, ErrTooFewVariables)
		}
		vars, err := cfg.variables(methodKatsura, n+1)
		if err != nil {
			return nil, err
		}
		unit := func(i int) []int {
			exps := make([]int, n+1)
			exps[i] = 1
			return exps
		}
		abs := func(v int) int {
			if v < 0 {
				return -v
			}
			return v
		}

		gens := make([]poly.Polynomial, 0, n+1)

		terms := make([]poly.Term, 0, n+2)
		for i := 0; i <= n; i++ {
			c := int64(2)
			if i == 0 {
				c = 1
			}
			t, err := product(vars, c, unit(i))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodKatsura, err)
			}
			terms = append(terms, t)
		}
		one, err := product(vars, -1, nil)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodKatsura, err)
		}
		p, err := poly.NewPolynomial(cfg.order, append(terms, one)...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodKatsura, err)
		}
		gens = append(gens, p)

		for m := 0; m < n; m++ {
			terms := make([]poly.Term, 0, 2*n+2)
			for l := -n; l <= n; l++ {
				a, b := abs(l), abs(m-l)
				if b > n {
					continue
				}
				exps := make([]int, n+1)
				exps[a]++
				exps[b]++
				t, err := product(vars, 1, exps)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", methodKatsura, err)
				}
				terms = append(terms, t)
			}
			t, err := product(vars, -1, unit(m))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodKatsura, err)
			}
			p, err := poly.NewPolynomial(cfg.order, append(terms, t)...)
			if err != nil {
				return nil, fmt.Errorf("%s: m=%d: %w", methodKatsura, m, err)
			}
			gens = append(gens, p)
		}

		return gens, nil
	}
}
