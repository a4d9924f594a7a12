// SPDX-License-Identifier: MIT
// Package: groebner/poly
//
// order.go — term order strategies (Lex, Grlex, Grevlex).
//
// Contract:
//   • Compare(a, b) > 0 means a ranks above b, i.e. a is listed first in a
//     polynomial; < 0 means below; 0 means equal power products.
//   • Only power products take part; coefficients never influence ordering.
//   • Terms over different VariableOrders are not comparable (ErrVariableMismatch).
//   • Strategies are stateless: equality is equality of Kind, so two
//     independently constructed Grlex{} values are the same order.
//
// The interface is sealed by the unexported compare method; the three
// strategies below are the complete set.

package poly

import (
	"fmt"
	"strings"
)

// OrderKind identifies a term order strategy.
type OrderKind int

const (
	// LexKind compares exponent vectors left to right.
	LexKind OrderKind = iota
	// GrlexKind compares total degree, then Lex.
	GrlexKind
	// GrevlexKind compares total degree, then the reversed, negated Lex.
	GrevlexKind
)

// String returns "lex", "grlex" or "grevlex".
func (k OrderKind) String() string {
	switch k {
	case LexKind:
		return "lex"
	case GrlexKind:
		return "grlex"
	case GrevlexKind:
		return "grevlex"
	default:
		return fmt.Sprintf("OrderKind(%d)", int(k))
	}
}

// TermOrder is a total order on power products over a shared VariableOrder.
type TermOrder interface {
	// Compare returns >0 if a ranks above b, <0 if below, 0 if a and b
	// share a power product.
	Compare(a, b Term) (int, error)
	// Kind identifies the strategy.
	Kind() OrderKind
	// String returns the strategy name.
	String() string

	compare(a, b Term) int
}

// Lex is the lexicographic order.
type Lex struct{}

// Grlex is the graded lexicographic order.
type Grlex struct{}

// Grevlex is the graded reverse lexicographic order.
type Grevlex struct{}

var (
	_ TermOrder = Lex{}
	_ TermOrder = Grlex{}
	_ TermOrder = Grevlex{}
)

// SameOrder reports whether a and b are the same strategy. nil never matches.
func SameOrder(a, b TermOrder) bool {
	return a != nil && b != nil && a.Kind() == b.Kind()
}

// ParseTermOrder resolves "lex", "grlex" or "grevlex" (case-insensitive).
func ParseTermOrder(name string) (TermOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lex":
		return Lex{}, nil
	case "grlex":
		return Grlex{}, nil
	case "grevlex":
		return Grevlex{}, nil
	default:
		return nil, fmt.Errorf("ParseTermOrder: %q: %w", name, ErrUnknownTermOrder)
	}
}

func checkComparable(a, b Term) error {
	if !a.vars.Equal(b.vars) {
		return fmt.Errorf("Compare: %s vs %s: %w", a.vars, b.vars, ErrVariableMismatch)
	}

	return nil
}

// Compare implements TermOrder.
func (o Lex) Compare(a, b Term) (int, error) {
	if err := checkComparable(a, b); err != nil {
		return 0, err
	}

	return o.compare(a, b), nil
}

// Kind implements TermOrder.
func (Lex) Kind() OrderKind { return LexKind }

func (Lex) String() string { return LexKind.String() }

func (Lex) compare(a, b Term) int { return lexCompare(a, b) }

// Compare implements TermOrder.
func (o Grlex) Compare(a, b Term) (int, error) {
	if err := checkComparable(a, b); err != nil {
		return 0, err
	}

	return o.compare(a, b), nil
}

// Kind implements TermOrder.
func (Grlex) Kind() OrderKind { return GrlexKind }

func (Grlex) String() string { return GrlexKind.String() }

func (Grlex) compare(a, b Term) int {
	if c := degreeCompare(a, b); c != 0 {
		return c
	}

	return lexCompare(a, b)
}

// Compare implements TermOrder.
func (o Grevlex) Compare(a, b Term) (int, error) {
	if err := checkComparable(a, b); err != nil {
		return 0, err
	}

	return o.compare(a, b), nil
}

// Kind implements TermOrder.
func (Grevlex) Kind() OrderKind { return GrevlexKind }

func (Grevlex) String() string { return GrevlexKind.String() }

// compare breaks degree ties on the last variable that differs: the term
// with the smaller exponent there ranks higher.
func (Grevlex) compare(a, b Term) int {
	if c := degreeCompare(a, b); c != 0 {
		return c
	}
	for i := a.vars.Len() - 1; i >= 0; i-- {
		switch d := a.exp(i) - b.exp(i); {
		case d < 0:
			return 1
		case d > 0:
			return -1
		}
	}

	return 0
}

// lexCompare: first differing exponent from the left decides; larger wins.
func lexCompare(a, b Term) int {
	for i := 0; i < a.vars.Len(); i++ {
		switch d := a.exp(i) - b.exp(i); {
		case d > 0:
			return 1
		case d < 0:
			return -1
		}
	}

	return 0
}

func degreeCompare(a, b Term) int {
	da, db := a.Degree(), b.Degree()
	switch {
	case da > db:
		return 1
	case da < db:
		return -1
	default:
		return 0
	}
}
