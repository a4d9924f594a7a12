// SPDX-License-Identifier: MIT
// Package: groebner/poly
//
// term.go — Term: a rational coefficient times a power product.
//
// Representation:
//   • exps is a dense exponent vector indexed by VariableOrder position;
//     absent variables have exponent 0, so the "map of positive exponents"
//     view (Exponents) is derived, never stored.
//   • A zero coefficient forces the all-zero vector (canonical zero term).
//   • Terms are immutable; every method returns fresh values and never
//     shares the exps backing array with its result.
//
// Errors:
//   • Binary operations across different VariableOrders → ErrVariableMismatch.
//   • Add/Sub on unlike power products → ErrVariableMismatch.
//   • Negative exponents at construction → ErrNegativeExponent.
//   • DivMod by the zero term → ErrDivisionByZero.

package poly

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/groebner/rational"
)

// Term is coefficient · Π var_i^exps[i] over a fixed VariableOrder.
type Term struct {
	coef rational.Rational
	exps []int
	vars VariableOrder
}

// makeTerm takes ownership of exps and enforces the zero-term invariant.
func makeTerm(coef rational.Rational, exps []int, vars VariableOrder) Term {
	if len(exps) != vars.Len() {
		full := make([]int, vars.Len())
		copy(full, exps)
		exps = full
	}
	if coef.IsZero() {
		clear(exps)
	}

	return Term{coef: coef, exps: exps, vars: vars}
}

// NewTerm builds a term from a variable→exponent map. Zero exponents are
// accepted and omitted; a zero coefficient yields the zero term.
// Returns ErrNegativeExponent for e < 0 and ErrVariableMismatch for a name
// that is not part of vars.
func NewTerm(coef rational.Rational, exps map[string]int, vars VariableOrder) (Term, error) {
	vec := make([]int, vars.Len())
	for name, e := range exps {
		i, ok := vars.Index(name)
		if !ok {
			return Term{}, fmt.Errorf("NewTerm: unknown variable %q in %s: %w", name, vars, ErrVariableMismatch)
		}
		if e < 0 {
			return Term{}, fmt.Errorf("NewTerm: %s^%d: %w", name, e, ErrNegativeExponent)
		}
		vec[i] = e
	}

	return makeTerm(coef, vec, vars), nil
}

// TermOf builds a term from positional exponents: exps[i] is the exponent
// of vars.Name(i). Missing trailing exponents are 0.
func TermOf(coef rational.Rational, vars VariableOrder, exps ...int) (Term, error) {
	if len(exps) > vars.Len() {
		return Term{}, fmt.Errorf("TermOf: %d exponents for %d variables: %w", len(exps), vars.Len(), ErrVariableMismatch)
	}
	vec := make([]int, vars.Len())
	for i, e := range exps {
		if e < 0 {
			return Term{}, fmt.Errorf("TermOf: %s^%d: %w", vars.Name(i), e, ErrNegativeExponent)
		}
		vec[i] = e
	}

	return makeTerm(coef, vec, vars), nil
}

// ConstantTerm returns c with no variables.
func ConstantTerm(c rational.Rational, vars VariableOrder) Term {
	return makeTerm(c, nil, vars)
}

// ZeroTerm returns the canonical zero term over vars.
func ZeroTerm(vars VariableOrder) Term {
	return makeTerm(rational.Zero(), nil, vars)
}

// exp returns the i-th exponent, tolerating the zero-value Term.
func (t Term) exp(i int) int {
	if i < len(t.exps) {
		return t.exps[i]
	}

	return 0
}

// Coefficient returns the rational coefficient.
func (t Term) Coefficient() rational.Rational { return t.coef }

// Variables returns the variable order the term is expressed in.
func (t Term) Variables() VariableOrder { return t.vars }

// Exponent returns the exponent of name (0 when absent or unknown).
func (t Term) Exponent(name string) int {
	i, ok := t.vars.Index(name)
	if !ok {
		return 0
	}

	return t.exp(i)
}

// Exponents returns the strictly positive exponents keyed by variable name.
func (t Term) Exponents() map[string]int {
	out := make(map[string]int)
	for i := 0; i < t.vars.Len(); i++ {
		if e := t.exp(i); e > 0 {
			out[t.vars.Name(i)] = e
		}
	}

	return out
}

// MultiDegree returns the exponent vector, one entry per variable.
func (t Term) MultiDegree() []int {
	out := make([]int, t.vars.Len())
	for i := range out {
		out[i] = t.exp(i)
	}

	return out
}

// Degree returns the total degree (sum of exponents).
func (t Term) Degree() int {
	d := 0
	for i := 0; i < t.vars.Len(); i++ {
		d += t.exp(i)
	}

	return d
}

// Sign returns the sign of the coefficient.
func (t Term) Sign() int { return t.coef.Sign() }

// IsZero reports whether the coefficient is zero.
func (t Term) IsZero() bool { return t.coef.IsZero() }

// HasNoVariables reports whether every exponent is zero (a constant term).
func (t Term) HasNoVariables() bool {
	for i := 0; i < t.vars.Len(); i++ {
		if t.exp(i) != 0 {
			return false
		}
	}

	return true
}

// SamePowerProduct reports whether t and u share the variable order and
// every exponent; coefficients are ignored.
func (t Term) SamePowerProduct(u Term) bool {
	if !t.vars.Equal(u.vars) {
		return false
	}
	for i := 0; i < t.vars.Len(); i++ {
		if t.exp(i) != u.exp(i) {
			return false
		}
	}

	return true
}

// Equal reports structural equality: coefficient, exponents and variable order.
func (t Term) Equal(u Term) bool {
	return t.coef.Equal(u.coef) && t.SamePowerProduct(u)
}

// Neg returns -t.
func (t Term) Neg() Term {
	return makeTerm(t.coef.Neg(), slices.Clone(t.exps), t.vars)
}

// scale returns c·t.
func (t Term) scale(c rational.Rational) Term {
	return makeTerm(t.coef.Mul(c), slices.Clone(t.exps), t.vars)
}

// checkVars guards every binary operation.
func (t Term) checkVars(op string, u Term) error {
	if !t.vars.Equal(u.vars) {
		return fmt.Errorf("%s: %s vs %s: %w", op, t.vars, u.vars, ErrVariableMismatch)
	}

	return nil
}

// Add returns t + u. Both terms must share the exact power product.
func (t Term) Add(u Term) (Term, error) {
	if err := t.checkVars("Add", u); err != nil {
		return Term{}, err
	}
	if !t.SamePowerProduct(u) {
		return Term{}, fmt.Errorf("Add: unlike terms %s and %s: %w", t, u, ErrVariableMismatch)
	}

	return t.add(u), nil
}

// add assumes like terms.
func (t Term) add(u Term) Term {
	return makeTerm(t.coef.Add(u.coef), slices.Clone(t.exps), t.vars)
}

// Sub returns t - u. Both terms must share the exact power product.
func (t Term) Sub(u Term) (Term, error) {
	return t.Add(u.Neg())
}

// Mul returns t·u: coefficients multiply, exponents add.
func (t Term) Mul(u Term) (Term, error) {
	if err := t.checkVars("Mul", u); err != nil {
		return Term{}, err
	}

	return t.mul(u), nil
}

// mul assumes equal variable orders.
func (t Term) mul(u Term) Term {
	vec := make([]int, t.vars.Len())
	for i := range vec {
		vec[i] = t.exp(i) + u.exp(i)
	}

	return makeTerm(t.coef.Mul(u.coef), vec, t.vars)
}

// divides reports whether t's power product divides u's (equal orders assumed).
func (t Term) divides(u Term) bool {
	for i := 0; i < t.vars.Len(); i++ {
		if t.exp(i) > u.exp(i) {
			return false
		}
	}

	return true
}

// Divides reports whether the power product of t divides that of u.
// Coefficients are ignored; different variable orders never divide.
func (t Term) Divides(u Term) bool {
	return t.vars.Equal(u.vars) && t.divides(u)
}

// DivMod divides t by u.
//
// If every exponent of u is at most the matching exponent of t, the
// quotient carries t.coef/u.coef and the remainder is zero. Otherwise
// division does not proceed: the quotient is zero and the remainder is t.
// Dividing by the zero term returns ErrDivisionByZero.
func (t Term) DivMod(u Term) (quotient, remainder Term, err error) {
	if err = t.checkVars("DivMod", u); err != nil {
		return Term{}, Term{}, err
	}
	if u.IsZero() {
		return Term{}, Term{}, fmt.Errorf("DivMod: %s by zero term: %w", t, ErrDivisionByZero)
	}
	zero := ZeroTerm(t.vars)
	if !u.divides(t) {
		return zero, t, nil
	}
	c, err := t.coef.Div(u.coef)
	if err != nil {
		return Term{}, Term{}, fmt.Errorf("DivMod: %w", err)
	}
	vec := make([]int, t.vars.Len())
	for i := range vec {
		vec[i] = t.exp(i) - u.exp(i)
	}

	return makeTerm(c, vec, t.vars), zero, nil
}

// LCM returns the least common multiple of the power products of t and u,
// with coefficient 1.
func (t Term) LCM(u Term) (Term, error) {
	if err := t.checkVars("LCM", u); err != nil {
		return Term{}, err
	}

	return t.lcm(u), nil
}

// lcm assumes equal variable orders.
func (t Term) lcm(u Term) Term {
	vec := make([]int, t.vars.Len())
	for i := range vec {
		vec[i] = max(t.exp(i), u.exp(i))
	}

	return makeTerm(rational.One(), vec, t.vars)
}
