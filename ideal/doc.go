// SPDX-License-Identifier: MIT

// Package ideal computes Gröbner bases of polynomial ideals over Q with
// Buchberger's algorithm and filters them to minimal/reduced form.
//
// What
//
//   - Ideal: an immutable, non-empty generating set sharing one
//     poly.VariableOrder and one poly.TermOrder.
//   - GroebnerBasis: optimized generation (FIFO pair queue, Buchberger's
//     two criteria) followed by Reduce.
//   - BasicGroebnerBasis: naive generation (every pair of the growing
//     basis) followed by Reduce.
//   - Basis: the unreduced output of either strategy.
//   - Reduce: monic normalization, minimality filter, structural dedup.
//   - ComputeAll: many independent ideals on a bounded worker pool.
//
// Why
//
//	A Gröbner basis turns ideal questions into division questions: f lies
//	in the ideal exactly when its remainder modulo the basis is zero, and
//	a lex basis exposes elimination ideals (the last element of a
//	zero-dimensional lex basis is univariate).
//
// Determinism
//
//	Pairs are processed in FIFO order, new pairs are queued in index order
//	and elements are only ever appended, so a given input always yields the
//	same basis in the same order. Reduce keeps survivors in visit order;
//	callers must not assume any further sorting.
//
// Optimized pair handling
//
//	Criterion 1 compares lcm(LT_i, LT_j) to LT_i·LT_j as terms, coefficient
//	included. Criterion 2 looks for a third element whose leading term
//	divides the lcm with no pending pair linking it to i or j.
//	When an S-polynomial reduces to zero but another basis element has the
//	same leading power product while differing from it, the S-polynomial is
//	appended anyway (reported as PairFallback).
//
// Reduction
//
//	Reduce keeps an element only if its variable part leaves a non-constant
//	remainder modulo the other leading terms. Elements that share a leading
//	term therefore eliminate each other: <x+y, x+2y> reduces to [y].
//
// Options
//
//   - DefaultOptions(): background context, no-op hooks, no basis cap.
//   - WithContext(ctx):          cancellation, checked once per pair.
//   - WithOnPair(fn):            observe every resolved pair.
//   - WithOnBasisGrowth(fn):     observe every appended element.
//   - WithMaxBasisSize(n):       abort with ErrBasisLimit past n elements.
//
// Errors
//
//   - ErrEmptyGenerators   New with no polynomials.
//   - ErrOptionViolation   invalid Option or worker count.
//   - ErrBasisLimit        MaxBasisSize exceeded.
//   - ErrUnknownStrategy   Basis with an unsupported Strategy.
//   - ErrNilIdeal          nil entry passed to ComputeAll.
//   - poly.ErrTermOrderMismatch, poly.ErrVariableMismatch from mixed inputs.
//   - Wrapped context errors on cancellation.
//
// Usage
//
//	id, err := ideal.New([]poly.Polynomial{f, g})
//	if err != nil {
//		// ErrEmptyGenerators or a poly mismatch error
//	}
//	basis, err := id.GroebnerBasis(
//		ideal.WithContext(ctx),
//		ideal.WithOnPair(func(i, j int, o ideal.PairOutcome) { /* ... */ }),
//	)
package ideal
