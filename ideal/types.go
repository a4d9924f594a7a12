// SPDX-License-Identifier: MIT

// Package ideal provides tunable options, hook types and error definitions
// for Gröbner basis computation over a poly.Polynomial generating set.
package ideal

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/groebner/poly"
)

// Sentinel errors for basis computation.
var (
	// ErrEmptyGenerators is returned when an Ideal is built from no polynomials.
	ErrEmptyGenerators = errors.New("ideal: empty generator list")

	// ErrNilIdeal is returned by ComputeAll when an entry is nil.
	ErrNilIdeal = errors.New("ideal: ideal is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ideal: invalid option supplied")

	// ErrBasisLimit is returned when generation would grow the working
	// basis beyond the configured MaxBasisSize.
	ErrBasisLimit = errors.New("ideal: basis size limit exceeded")

	// ErrUnknownStrategy is returned by Basis for an unsupported Strategy.
	ErrUnknownStrategy = errors.New("ideal: unknown strategy")
)

// Strategy selects the generation algorithm.
type Strategy int

const (
	// Optimized runs Buchberger's algorithm over a FIFO pair queue with
	// both of Buchberger's criteria.
	Optimized Strategy = iota
	// Naive tries every pair of the growing basis in index order.
	Naive
)

// String returns "optimized" or "naive".
func (s Strategy) String() string {
	switch s {
	case Optimized:
		return "optimized"
	case Naive:
		return "naive"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// PairOutcome reports how one index pair was resolved during generation.
type PairOutcome int

const (
	// PairCoprime: the lcm of the leading terms equals their product.
	PairCoprime PairOutcome = iota
	// PairRedundant: a third basis element's leading term divides the lcm
	// and neither connecting pair is still pending.
	PairRedundant
	// PairReducedToZero: the S-polynomial reduced to zero modulo the basis.
	PairReducedToZero
	// PairAdded: the non-zero remainder was appended to the basis.
	PairAdded
	// PairFallback: the remainder was zero but another basis element shares
	// the S-polynomial's leading power product, so the S-polynomial itself
	// was appended.
	PairFallback
)

// String returns a short lower-case label.
func (o PairOutcome) String() string {
	switch o {
	case PairCoprime:
		return "coprime"
	case PairRedundant:
		return "redundant"
	case PairReducedToZero:
		return "zero"
	case PairAdded:
		return "added"
	case PairFallback:
		return "fallback"
	default:
		return fmt.Sprintf("PairOutcome(%d)", int(o))
	}
}

// Option configures basis computation via functional arguments.
// If an Option is invalid (e.g. negative MaxBasisSize), it is recorded
// internally and surfaced as ErrOptionViolation when computation starts.
type Option func(*Options)

// Options holds parameters and callbacks observed during generation.
// None of them change the computed basis.
type Options struct {
	// Ctx allows cancellation; it is checked once per pair.
	Ctx context.Context

	// OnPair is called after each pair (i, j), i < j, has been resolved.
	OnPair func(i, j int, outcome PairOutcome)

	// OnBasisGrowth is called when p is appended at index in the working
	// basis. Generators are not reported.
	OnBasisGrowth func(index int, p poly.Polynomial)

	// MaxBasisSize, if > 0, caps the working basis length.
	// A value of 0 disables the cap.
	MaxBasisSize int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no-op hooks
// and no basis size cap.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnPair:        func(int, int, PairOutcome) {},
		OnBasisGrowth: func(int, poly.Polynomial) {},
		MaxBasisSize:  0,
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPair registers a callback run after every pair is resolved.
func WithOnPair(fn func(i, j int, outcome PairOutcome)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPair = fn
		}
	}
}

// WithOnBasisGrowth registers a callback run on every appended element.
func WithOnBasisGrowth(fn func(index int, p poly.Polynomial)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBasisGrowth = fn
		}
	}
}

// WithMaxBasisSize aborts generation with ErrBasisLimit once the working
// basis would hold more than n elements.
//
//	n > 0: cap at n
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxBasisSize(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxBasisSize cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxBasisSize = n
		}
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
