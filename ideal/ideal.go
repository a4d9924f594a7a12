// SPDX-License-Identifier: MIT
// Package: groebner/ideal
//
// ideal.go — Ideal: an immutable generating set and its basis entry points.

package ideal

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/groebner/poly"
)

// Ideal holds a non-empty generating set whose polynomials share one
// VariableOrder and one TermOrder strategy.
type Ideal struct {
	generators []poly.Polynomial
	vars       poly.VariableOrder
	order      poly.TermOrder
}

// New copies generators into a new Ideal.
// Returns ErrEmptyGenerators for an empty list, and poly.ErrTermOrderMismatch
// or poly.ErrVariableMismatch when the generators disagree.
func New(generators []poly.Polynomial) (*Ideal, error) {
	if len(generators) == 0 {
		return nil, fmt.Errorf("New: %w", ErrEmptyGenerators)
	}
	if err := checkShared("New", generators); err != nil {
		return nil, err
	}

	return &Ideal{
		generators: slices.Clone(generators),
		vars:       generators[0].Variables(),
		order:      generators[0].Order(),
	}, nil
}

// checkShared verifies that every polynomial matches the first one.
func checkShared(op string, ps []poly.Polynomial) error {
	if len(ps) == 0 {
		return nil
	}
	vars, order := ps[0].Variables(), ps[0].Order()
	for i, p := range ps[1:] {
		if !poly.SameOrder(order, p.Order()) {
			return fmt.Errorf("%s: element %d uses %v, want %v: %w", op, i+1, p.Order(), order, poly.ErrTermOrderMismatch)
		}
		if !vars.Equal(p.Variables()) {
			return fmt.Errorf("%s: element %d over %s, want %s: %w", op, i+1, p.Variables(), vars, poly.ErrVariableMismatch)
		}
	}

	return nil
}

// Generators returns a copy of the generating set in construction order.
func (id *Ideal) Generators() []poly.Polynomial { return slices.Clone(id.generators) }

// Len returns the number of generators.
func (id *Ideal) Len() int { return len(id.generators) }

// Variables returns the shared variable order.
func (id *Ideal) Variables() poly.VariableOrder { return id.vars }

// Order returns the shared term order strategy.
func (id *Ideal) Order() poly.TermOrder { return id.order }

// String renders the generators as <f1, f2, ...>.
func (id *Ideal) String() string {
	parts := make([]string, len(id.generators))
	for i, g := range id.generators {
		parts[i] = g.String()
	}

	return "<" + strings.Join(parts, ", ") + ">"
}

// GroebnerBasis runs the optimized generation and reduces the result.
func (id *Ideal) GroebnerBasis(opts ...Option) ([]poly.Polynomial, error) {
	return id.reduced(Optimized, opts)
}

// BasicGroebnerBasis runs the naive generation and reduces the result.
func (id *Ideal) BasicGroebnerBasis(opts ...Option) ([]poly.Polynomial, error) {
	return id.reduced(Naive, opts)
}

func (id *Ideal) reduced(s Strategy, opts []Option) ([]poly.Polynomial, error) {
	basis, err := id.Basis(s, opts...)
	if err != nil {
		return nil, err
	}

	return reduce(basis, id.vars, id.order)
}

// Basis returns the unreduced basis produced by strategy s: the non-zero
// generators followed by every element appended during generation, in
// append order. An ideal of zero polynomials yields an empty basis.
func (id *Ideal) Basis(s Strategy, opts ...Option) ([]poly.Polynomial, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	e := newEngine(id.generators, o)
	switch s {
	case Optimized:
		err = e.optimized()
	case Naive:
		err = e.naive()
	default:
		return nil, fmt.Errorf("Basis: %v: %w", s, ErrUnknownStrategy)
	}
	if err != nil {
		return nil, err
	}

	return e.basis, nil
}
