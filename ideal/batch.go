// SPDX-License-Identifier: MIT
// Package: groebner/ideal
//
// batch.go — bounded-parallel reduced bases for independent ideals.

package ideal

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/groebner/poly"
	"golang.org/x/sync/errgroup"
)

// ComputeAll runs GroebnerBasis for every ideal on at most workers
// goroutines. results[i] belongs to ideals[i]. The first failure cancels
// the remaining runs and is returned.
//
// Hooks in opts are shared by all runs and must be safe for concurrent use.
// A context supplied through WithContext is ignored in favour of ctx.
func ComputeAll(ctx context.Context, ideals []*Ideal, workers int, opts ...Option) ([][]poly.Polynomial, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, workers)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([][]poly.Polynomial, len(ideals))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, id := range ideals {
		i, id := i, id
		g.Go(func() error {
			if id == nil {
				return fmt.Errorf("ComputeAll: ideal %d: %w", i, ErrNilIdeal)
			}
			basis, err := id.GroebnerBasis(append(slices.Clone(opts), WithContext(gctx))...)
			if err != nil {
				return fmt.Errorf("ComputeAll: ideal %d: %w", i, err)
			}
			results[i] = basis

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
