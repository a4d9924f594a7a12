// SPDX-License-Identifier: MIT
// Package: groebner/families
//
// config.go — resolved configuration and deterministic defaults.
//
// Defaults:
//   • order  = poly.Grevlex{}
//   • prefix = "x"       (variables x0, x1, ...)
//   • names  = nil       (derive from prefix)

package families

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/groebner/poly"
)

const defaultPrefix = "x"

// config aggregates all knobs used by families. Passed by value.
type config struct {
	order  poly.TermOrder
	prefix string
	names  []string
}

// newConfig applies opts in order over the defaults; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		order:  poly.Grevlex{},
		prefix: defaultPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.prefix == "" {
		cfg.prefix = defaultPrefix
	}

	return cfg
}

// variables returns the n variables a family asks for: the explicit names
// when set, otherwise prefix0 .. prefix(n-1).
func (c config) variables(method string, n int) (poly.VariableOrder, error) {
	if c.names != nil {
		vars := poly.NewVariableOrder(c.names...)
		if vars.Len() != n {
			return poly.VariableOrder{}, fmt.Errorf("%s: %d distinct names, need %d: %w", method, vars.Len(), n, ErrVariableCount)
		}

		return vars, nil
	}
	names := make([]string, n)
	for i := range names {
		names[i] = c.prefix + strconv.Itoa(i)
	}

	return poly.NewVariableOrder(names...), nil
}
