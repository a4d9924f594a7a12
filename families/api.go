// SPDX-License-Identifier: MIT
// Package: groebner/families
//
// api.go — entry points shared by every family.

package families

import (
	"fmt"

	"github.com/katalvlaran/groebner/ideal"
	"github.com/katalvlaran/groebner/poly"
	"github.com/katalvlaran/groebner/rational"
)

// Family produces the generators of one benchmark ideal from a resolved
// configuration. Families validate their parameters and return sentinel
// errors; they never panic.
type Family func(cfg config) ([]poly.Polynomial, error)

// Generators resolves opts and returns fam's generators.
func Generators(fam Family, opts ...Option) ([]poly.Polynomial, error) {
	if fam == nil {
		return nil, fmt.Errorf("Generators: %w", ErrNilFamily)
	}

	return fam(newConfig(opts...))
}

// Build resolves opts and returns fam as an ideal.Ideal.
func Build(fam Family, opts ...Option) (*ideal.Ideal, error) {
	gens, err := Generators(fam, opts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return ideal.New(gens)
}

// product returns coef · Π vars[i]^exps[i].
func product(vars poly.VariableOrder, coef int64, exps []int) (poly.Term, error) {
	return poly.TermOf(rational.FromInt(coef), vars, exps...)
}
