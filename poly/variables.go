// SPDX-License-Identifier: MIT

package poly

import (
	"slices"
	"strings"
)

// VariableOrder is an ordered, duplicate-free list of variable names.
// Position i is the index of the variable in every exponent vector built
// against this order; earlier variables rank higher in Lex.
//
// Two orders are interchangeable iff Equal reports true; identity of the
// underlying slice is never compared.
type VariableOrder struct {
	names []string
}

// NewVariableOrder returns the order given by names, dropping repeated
// names (first occurrence wins).
func NewVariableOrder(names ...string) VariableOrder {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return VariableOrder{names: out}
}

// Names returns a copy of the variable names in order.
func (v VariableOrder) Names() []string { return slices.Clone(v.names) }

// Len returns the number of variables.
func (v VariableOrder) Len() int { return len(v.names) }

// Name returns the i-th variable name.
func (v VariableOrder) Name(i int) string { return v.names[i] }

// Index returns the position of name, or (-1, false) if it is not part of the order.
func (v VariableOrder) Index(name string) (int, bool) {
	i := slices.Index(v.names, name)

	return i, i >= 0
}

// Equal reports whether v and w list the same names in the same order.
func (v VariableOrder) Equal(w VariableOrder) bool { return slices.Equal(v.names, w.names) }

// String renders the order as "(x, y, z)".
func (v VariableOrder) String() string {
	return "(" + strings.Join(v.names, ", ") + ")"
}
