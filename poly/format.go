// SPDX-License-Identifier: MIT

package poly

import (
	"strconv"
	"strings"
)

// String renders a term as [sign][coefficient](var[^exp])*.
// A coefficient of ±1 in front of at least one variable is elided to "" or
// "-"; the zero term renders as "0". Exponents of 1 are omitted.
//
//	-2x^3y^2   1/2x   -y   7   0
func (t Term) String() string {
	if t.coef.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i := 0; i < t.vars.Len(); i++ {
		e := t.exp(i)
		if e == 0 {
			continue
		}
		b.WriteString(t.vars.Name(i))
		if e != 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(e))
		}
	}
	vs := b.String()
	if vs != "" && t.coef.Abs().IsOne() {
		if t.coef.Sign() > 0 {
			return vs
		}

		return "-" + vs
	}

	return t.coef.String() + vs
}

// String renders the terms in order, inserting "+" before every
// non-leading term whose coefficient is non-negative.
//
//	x^2y+xy^2-4   y^2-1/2x
func (p Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.terms {
		if i > 0 && t.Sign() >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(t.String())
	}

	return b.String()
}
