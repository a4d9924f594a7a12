package ideal_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/groebner/ideal"
	"github.com/katalvlaran/groebner/poly"
)

// BenchmarkGroebnerBasis_Optimized runs the pair-queue method on the
// sphere/paraboloid/plane system under lex.
func BenchmarkGroebnerBasis_Optimized(b *testing.B) {
	id := sphere(b)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = id.GroebnerBasis()
	}
}

// BenchmarkGroebnerBasis_Naive runs the naive method on the same system.
func BenchmarkGroebnerBasis_Naive(b *testing.B) {
	id := sphere(b)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = id.BasicGroebnerBasis()
	}
}

// BenchmarkComputeAll runs eight copies of the grlex cubic pair on four workers.
func BenchmarkComputeAll(b *testing.B) {
	ideals := make([]*ideal.Ideal, 8)
	for i := range ideals {
		ideals[i] = cox(b, poly.Grlex{})
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = ideal.ComputeAll(ctx, ideals, 4)
	}
}

func sphere(tb testing.TB) *ideal.Ideal {
	tb.Helper()
	return mustIdeal(tb,
		polyOf(tb, xyz, poly.Lex{}, m(1, 1, 2), m(1, 1, 0, 2), m(1, 1, 0, 0, 2), m(-1, 1)),
		polyOf(tb, xyz, poly.Lex{}, m(1, 1, 2), m(1, 1, 0, 0, 2), m(-1, 1, 0, 1)),
		polyOf(tb, xyz, poly.Lex{}, m(1, 1, 1), m(-1, 1, 0, 0, 1)),
	)
}
