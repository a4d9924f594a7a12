// SPDX-License-Identifier: MIT
// Package: groebner/poly
//
// polynomial.go — Polynomial: a normalized, order-sorted sequence of terms.
//
// Invariants (enforced by build, relied on everywhere else):
//   • terms are sorted strictly descending under order;
//   • no two terms share a power product;
//   • no zero term appears unless it is the only term (the zero polynomial);
//   • the sequence is never empty.
//
// Binary operations require SameOrder(p.order, q.order) and equal
// VariableOrders; otherwise ErrTermOrderMismatch / ErrVariableMismatch.

package poly

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/groebner/rational"
)

// Polynomial is an immutable multivariate polynomial over Q.
type Polynomial struct {
	terms []Term
	vars  VariableOrder
	order TermOrder
}

// NewPolynomial sorts terms under order and combines like terms, dropping
// those that cancel. An input that cancels completely yields the zero
// polynomial; an empty input yields ErrEmptyTerms.
func NewPolynomial(order TermOrder, terms ...Term) (Polynomial, error) {
	if order == nil {
		return Polynomial{}, fmt.Errorf("NewPolynomial: nil term order: %w", ErrTermOrderMismatch)
	}
	if len(terms) == 0 {
		return Polynomial{}, fmt.Errorf("NewPolynomial: %w", ErrEmptyTerms)
	}
	vars := terms[0].vars
	for i, t := range terms[1:] {
		if !t.vars.Equal(vars) {
			return Polynomial{}, fmt.Errorf("NewPolynomial: term %d over %s, want %s: %w", i+1, t.vars, vars, ErrVariableMismatch)
		}
	}

	return build(order, vars, slices.Clone(terms)), nil
}

// FromTerm wraps a single term. A zero term yields the zero polynomial.
func FromTerm(t Term, order TermOrder) Polynomial {
	return build(order, t.vars, []Term{t})
}

// ZeroPolynomial returns the zero polynomial over vars under order.
func ZeroPolynomial(vars VariableOrder, order TermOrder) Polynomial {
	return Polynomial{terms: []Term{ZeroTerm(vars)}, vars: vars, order: order}
}

// ConstantPolynomial returns c as a polynomial over vars under order.
func ConstantPolynomial(c rational.Rational, vars VariableOrder, order TermOrder) Polynomial {
	return build(order, vars, []Term{ConstantTerm(c, vars)})
}

// build takes ownership of terms (all over vars) and normalizes them.
func build(order TermOrder, vars VariableOrder, terms []Term) Polynomial {
	slices.SortStableFunc(terms, func(a, b Term) int { return order.compare(b, a) })

	out := terms[:0]
	for _, t := range terms {
		if n := len(out); n > 0 && out[n-1].SamePowerProduct(t) {
			sum := out[n-1].add(t)
			if sum.IsZero() {
				out = out[:n-1]
			} else {
				out[n-1] = sum
			}

			continue
		}
		if t.IsZero() {
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		out = append(out, ZeroTerm(vars))
	}

	return Polynomial{terms: out, vars: vars, order: order}
}

// Terms returns a copy of the term sequence, leading term first.
func (p Polynomial) Terms() []Term { return slices.Clone(p.terms) }

// Len returns the number of stored terms (1 for the zero polynomial).
func (p Polynomial) Len() int { return len(p.terms) }

// Variables returns the variable order.
func (p Polynomial) Variables() VariableOrder { return p.vars }

// Order returns the term order strategy.
func (p Polynomial) Order() TermOrder { return p.order }

// LeadingTerm returns the term ranked highest by the term order.
func (p Polynomial) LeadingTerm() Term {
	if len(p.terms) == 0 {
		return ZeroTerm(p.vars)
	}

	return p.terms[0]
}

// LeadingCoefficient returns the coefficient of the leading term.
func (p Polynomial) LeadingCoefficient() rational.Rational { return p.LeadingTerm().coef }

// LeadingExponents returns the positive exponents of the leading term.
func (p Polynomial) LeadingExponents() map[string]int { return p.LeadingTerm().Exponents() }

// MultiDegree returns the exponent vector of the leading term.
func (p Polynomial) MultiDegree() []int { return p.LeadingTerm().MultiDegree() }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.terms) == 0 || (len(p.terms) == 1 && p.terms[0].IsZero())
}

// IsConstant reports whether the leading term carries no variables. By the
// ordering invariant this means p itself is a constant (possibly zero).
func (p Polynomial) IsConstant() bool { return p.LeadingTerm().HasNoVariables() }

// Equal reports structural equality: same strategy, same variables and
// identical term sequences.
func (p Polynomial) Equal(q Polynomial) bool {
	if !SameOrder(p.order, q.order) || !p.vars.Equal(q.vars) || len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if !p.terms[i].Equal(q.terms[i]) {
			return false
		}
	}

	return true
}

// compatible is the guard shared by all binary operations.
func (p Polynomial) compatible(op string, q Polynomial) error {
	if !SameOrder(p.order, q.order) {
		return fmt.Errorf("%s: %v vs %v: %w", op, p.order, q.order, ErrTermOrderMismatch)
	}
	if !p.vars.Equal(q.vars) {
		return fmt.Errorf("%s: %s vs %s: %w", op, p.vars, q.vars, ErrVariableMismatch)
	}

	return nil
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) (Polynomial, error) {
	if err := p.compatible("Add", q); err != nil {
		return Polynomial{}, err
	}

	return p.add(q), nil
}

func (p Polynomial) add(q Polynomial) Polynomial {
	terms := make([]Term, 0, len(p.terms)+len(q.terms))
	terms = append(terms, p.terms...)
	terms = append(terms, q.terms...)

	return build(p.order, p.vars, terms)
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = t.Neg()
	}

	return build(p.order, p.vars, terms)
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) (Polynomial, error) {
	if err := p.compatible("Sub", q); err != nil {
		return Polynomial{}, err
	}

	return p.sub(q), nil
}

func (p Polynomial) sub(q Polynomial) Polynomial { return p.add(q.Neg()) }

// Mul returns p·q, distributing every term of p over every term of q.
func (p Polynomial) Mul(q Polynomial) (Polynomial, error) {
	if err := p.compatible("Mul", q); err != nil {
		return Polynomial{}, err
	}
	terms := make([]Term, 0, len(p.terms)*len(q.terms))
	for _, u := range q.terms {
		for _, t := range p.terms {
			terms = append(terms, t.mul(u))
		}
	}

	return build(p.order, p.vars, terms), nil
}

// MulTerm returns p·t.
func (p Polynomial) MulTerm(t Term) (Polynomial, error) {
	if !p.vars.Equal(t.vars) {
		return Polynomial{}, fmt.Errorf("MulTerm: %s vs %s: %w", p.vars, t.vars, ErrVariableMismatch)
	}

	return p.mulTerm(t), nil
}

func (p Polynomial) mulTerm(t Term) Polynomial {
	terms := make([]Term, len(p.terms))
	for i, u := range p.terms {
		terms[i] = u.mul(t)
	}

	return build(p.order, p.vars, terms)
}

// Scale returns c·p.
func (p Polynomial) Scale(c rational.Rational) Polynomial {
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = t.scale(c)
	}

	return build(p.order, p.vars, terms)
}

// Monic returns p divided by its leading coefficient.
// The zero polynomial has no monic form and yields ErrDivisionByZero.
func (p Polynomial) Monic() (Polynomial, error) {
	inv, err := p.LeadingCoefficient().Reciprocal()
	if err != nil {
		return Polynomial{}, fmt.Errorf("Monic: %w", err)
	}

	return p.Scale(inv), nil
}

// VariablePart returns p without its constant term. A constant p yields
// the zero polynomial.
func (p Polynomial) VariablePart() Polynomial {
	terms := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		if !t.HasNoVariables() {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		return ZeroPolynomial(p.vars, p.order)
	}

	return build(p.order, p.vars, terms)
}

// SPolynomial returns (L/lt(p))·p − (L/lt(q))·q with L = lcm(lt(p), lt(q)).
// The leading terms cancel by construction. Either operand being zero
// yields ErrDivisionByZero.
func (p Polynomial) SPolynomial(q Polynomial) (Polynomial, error) {
	if err := p.compatible("SPolynomial", q); err != nil {
		return Polynomial{}, err
	}
	ltp, ltq := p.LeadingTerm(), q.LeadingTerm()
	l := ltp.lcm(ltq)
	a, _, err := l.DivMod(ltp)
	if err != nil {
		return Polynomial{}, fmt.Errorf("SPolynomial: %w", err)
	}
	b, _, err := l.DivMod(ltq)
	if err != nil {
		return Polynomial{}, fmt.Errorf("SPolynomial: %w", err)
	}

	return p.mulTerm(a).sub(q.mulTerm(b)), nil
}
