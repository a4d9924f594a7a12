// SPDX-License-Identifier: MIT
// Package: groebner/families
//
// options.go — functional options for the families package.
//
// Option constructors panic on meaningless input (nil order, no names);
// families themselves only return sentinel errors.

package families

import (
	"slices"

	"github.com/katalvlaran/groebner/poly"
)

// Option customizes a family by mutating its config before construction.
type Option func(*config)

// WithTermOrder sets the term order of every generated polynomial.
// Panics on nil.
func WithTermOrder(o poly.TermOrder) Option {
	if o == nil {
		panic("families: WithTermOrder(nil)")
	}
	return func(c *config) {
		c.order = o
	}
}

// WithVariablePrefix names variables prefix0, prefix1, ...
// An empty prefix restores the default "x".
func WithVariablePrefix(prefix string) Option {
	return func(c *config) {
		c.prefix = prefix
	}
}

// WithVariables uses the given names, in order. The family fails with
// ErrVariableCount when the number of distinct names does not match.
// Panics when called with no names.
func WithVariables(names ...string) Option {
	if len(names) == 0 {
		panic("families: WithVariables()")
	}
	names = slices.Clone(names)
	return func(c *config) {
		c.names = names
	}
}
