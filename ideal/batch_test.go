package ideal_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/groebner/ideal"
	"github.com/katalvlaran/groebner/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputeAll checks index alignment against sequential runs.
func TestComputeAll(t *testing.T) {
	ideals := []*ideal.Ideal{
		cox(t, poly.Grlex{}),
		circle(t, poly.Lex{}),
		lines(t, poly.Grevlex{}),
		cox(t, poly.Lex{}),
		circle(t, poly.Grevlex{}),
	}
	var pairs atomic.Int64
	results, err := ideal.ComputeAll(context.Background(), ideals, 2,
		ideal.WithOnPair(func(int, int, ideal.PairOutcome) { pairs.Add(1) }),
	)
	require.NoError(t, err)
	require.Len(t, results, len(ideals))
	for i, id := range ideals {
		want, err := id.GroebnerBasis()
		require.NoError(t, err)
		assert.Equal(t, strs(want), strs(results[i]), "ideal %d", i)
	}
	assert.Positive(t, pairs.Load())

	empty, err := ideal.ComputeAll(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestComputeAll_Errors covers bad worker counts, nil entries, cancellation
// and per-ideal failures.
func TestComputeAll_Errors(t *testing.T) {
	ideals := []*ideal.Ideal{cox(t, poly.Grlex{}), circle(t, poly.Lex{})}

	_, err := ideal.ComputeAll(context.Background(), ideals, 0)
	assert.ErrorIs(t, err, ideal.ErrOptionViolation)

	_, err = ideal.ComputeAll(context.Background(), []*ideal.Ideal{ideals[0], nil}, 2)
	assert.ErrorIs(t, err, ideal.ErrNilIdeal)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ideal.ComputeAll(ctx, ideals, 2)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = ideal.ComputeAll(context.Background(), ideals, 1, ideal.WithMaxBasisSize(2))
	assert.ErrorIs(t, err, ideal.ErrBasisLimit)
}
