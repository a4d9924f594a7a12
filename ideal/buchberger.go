// SPDX-License-Identifier: MIT
// Package: groebner/ideal
//
// buchberger.go — basis generation: naive pair scan and the optimized
// pair-queue method.
//
// Optimized method outline:
//  1. pending := all (i, j), i < j, over the starting basis, in index order.
//  2. Take the head (i, j) of pending:
//     - coprime leading terms (criterion 1) → skip;
//     - some k ∉ {i, j} whose leading term divides lcm(LT_i, LT_j) while no
//     pair linking k to i or j is pending (criterion 2) → skip;
//     - otherwise r := S(f_i, f_j) mod basis. If r = 0 and another element
//     has the leading power product of S(f_i, f_j), r := S(f_i, f_j).
//     A non-zero r is appended at index n and (k, n) is queued for all k < n.
//  3. Pop the head; repeat until pending is empty.
//
// Indices are stable: elements are only ever appended, so a pair keeps
// referring to the same two polynomials for its whole lifetime.

package ideal

import (
	"context"
	"fmt"
	"maps"

	"github.com/katalvlaran/groebner/poly"
)

// pair is an index pair into the working basis, i < j.
type pair struct{ i, j int }

// engine encapsulates mutable generation state for one run.
type engine struct {
	opts    Options
	ctx     context.Context
	basis   []poly.Polynomial
	pending []pair
}

// newEngine seeds the working basis with the non-zero generators.
func newEngine(generators []poly.Polynomial, o Options) *engine {
	basis := make([]poly.Polynomial, 0, len(generators))
	for _, g := range generators {
		if !g.IsZero() {
			basis = append(basis, g)
		}
	}

	return &engine{opts: o, ctx: o.Ctx, basis: basis}
}

// cancelled reports a pending cancellation.
func (e *engine) cancelled() error {
	select {
	case <-e.ctx.Done():
		return fmt.Errorf("ideal: generation cancelled: %w", e.ctx.Err())
	default:
		return nil
	}
}

// appendElement grows the basis by p and returns its index.
func (e *engine) appendElement(p poly.Polynomial) (int, error) {
	if e.opts.MaxBasisSize > 0 && len(e.basis) >= e.opts.MaxBasisSize {
		return 0, fmt.Errorf("%w: %d elements", ErrBasisLimit, e.opts.MaxBasisSize)
	}
	e.basis = append(e.basis, p)
	n := len(e.basis) - 1
	e.opts.OnBasisGrowth(n, p)

	return n, nil
}

// naive tries every pair (i, j), i < j, over the live basis. Elements
// appended during the scan take part in later pairs.
func (e *engine) naive() error {
	for i := 0; i < len(e.basis); i++ {
		for j := i + 1; j < len(e.basis); j++ {
			if err := e.cancelled(); err != nil {
				return err
			}
			s, err := e.basis[i].SPolynomial(e.basis[j])
			if err != nil {
				return fmt.Errorf("naive: pair (%d, %d): %w", i, j, err)
			}
			r, err := s.Remainder(e.basis...)
			if err != nil {
				return fmt.Errorf("naive: pair (%d, %d): %w", i, j, err)
			}
			if r.IsZero() {
				e.opts.OnPair(i, j, PairReducedToZero)

				continue
			}
			if _, err = e.appendElement(r); err != nil {
				return err
			}
			e.opts.OnPair(i, j, PairAdded)
		}
	}

	return nil
}

// optimized runs the pair-queue method.
func (e *engine) optimized() error {
	n := len(e.basis)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			e.pending = append(e.pending, pair{i, j})
		}
	}
	for len(e.pending) > 0 {
		if err := e.cancelled(); err != nil {
			return err
		}
		p := e.pending[0]
		outcome, err := e.process(p)
		if err != nil {
			return err
		}
		e.pending = e.pending[1:]
		e.opts.OnPair(p.i, p.j, outcome)
	}

	return nil
}

// process resolves the head pair p while it is still pending.
func (e *engine) process(p pair) (PairOutcome, error) {
	fi, fj := e.basis[p.i], e.basis[p.j]
	lti, ltj := fi.LeadingTerm(), fj.LeadingTerm()
	lcm, err := lti.LCM(ltj)
	if err != nil {
		return 0, fmt.Errorf("optimized: pair (%d, %d): %w", p.i, p.j, err)
	}
	ok, err := coprime(lti, ltj, lcm)
	if err != nil {
		return 0, fmt.Errorf("optimized: pair (%d, %d): %w", p.i, p.j, err)
	}
	if ok {
		return PairCoprime, nil
	}
	if e.redundant(p, lcm) {
		return PairRedundant, nil
	}

	s, err := fi.SPolynomial(fj)
	if err != nil {
		return 0, fmt.Errorf("optimized: pair (%d, %d): %w", p.i, p.j, err)
	}
	r, err := s.Remainder(e.basis...)
	if err != nil {
		return 0, fmt.Errorf("optimized: pair (%d, %d): %w", p.i, p.j, err)
	}
	outcome := PairAdded
	if r.IsZero() {
		outcome = PairReducedToZero
		sexps := s.LeadingExponents()
		for _, b := range e.basis {
			if maps.Equal(b.LeadingExponents(), sexps) && !b.Equal(s) {
				r, outcome = s, PairFallback

				break
			}
		}
	}
	if r.IsZero() {
		return outcome, nil
	}

	n, err := e.appendElement(r)
	if err != nil {
		return 0, err
	}
	for k := 0; k < n; k++ {
		e.pending = append(e.pending, pair{k, n})
	}

	return outcome, nil
}
