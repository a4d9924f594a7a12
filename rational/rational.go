// SPDX-License-Identifier: MIT
// Package: groebner/rational
//
// rational.go — immutable fraction type on top of math/big.
//
// Contract:
//   • den > 0 and gcd(|num|, den) == 1 after every operation.
//   • The zero value (nil fields) behaves exactly like 0/1.
//   • big.Int values handed in or out are copied; a Rational never aliases
//     caller-owned memory.

package rational

import (
	"fmt"
	"math/big"
)

// Rational is an exact fraction num/den kept in lowest terms.
type Rational struct {
	num *big.Int // nil means 0
	den *big.Int // nil means 1
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// New returns num/den in lowest terms.
// Returns ErrDivisionByZero when den == 0.
func New(num, den int64) (Rational, error) {
	return NewBig(big.NewInt(num), big.NewInt(den))
}

// NewBig returns num/den in lowest terms. The arguments are not retained.
// A nil numerator is treated as 0; a nil or zero denominator yields ErrDivisionByZero.
func NewBig(num, den *big.Int) (Rational, error) {
	if den == nil || den.Sign() == 0 {
		return Rational{}, fmt.Errorf("NewBig: %w", ErrDivisionByZero)
	}
	n := new(big.Int)
	if num != nil {
		n.Set(num)
	}

	return normalize(n, new(big.Int).Set(den)), nil
}

// MustNew is like New but panics on a zero denominator.
// It is meant for fixtures and package-level constants.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt returns the integer n as n/1.
func FromInt(n int64) Rational {
	return Rational{num: big.NewInt(n), den: big.NewInt(1)}
}

// Zero returns 0/1.
func Zero() Rational { return Rational{} }

// One returns 1/1.
func One() Rational { return FromInt(1) }

// normalize takes ownership of n and d (d != 0), moves the sign to the
// numerator and divides out the gcd.
func normalize(n, d *big.Int) Rational {
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	if n.Sign() == 0 {
		return Rational{}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Cmp(bigOne) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}

	return Rational{num: n, den: d}
}

// parts returns read-only views of the numerator and denominator.
func (r Rational) parts() (*big.Int, *big.Int) {
	n, d := r.num, r.den
	if n == nil {
		n = bigZero
	}
	if d == nil {
		d = bigOne
	}

	return n, d
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int {
	n, _ := r.parts()

	return new(big.Int).Set(n)
}

// Den returns a copy of the (positive) denominator.
func (r Rational) Den() *big.Int {
	_, d := r.parts()

	return new(big.Int).Set(d)
}

// Add returns r + s.
func (r Rational) Add(s Rational) Rational {
	rn, rd := r.parts()
	sn, sd := s.parts()
	n := new(big.Int).Mul(rn, sd)
	n.Add(n, new(big.Int).Mul(sn, rd))

	return normalize(n, new(big.Int).Mul(rd, sd))
}

// Sub returns r - s.
func (r Rational) Sub(s Rational) Rational {
	return r.Add(s.Neg())
}

// Mul returns r * s.
func (r Rational) Mul(s Rational) Rational {
	rn, rd := r.parts()
	sn, sd := s.parts()

	return normalize(new(big.Int).Mul(rn, sn), new(big.Int).Mul(rd, sd))
}

// Div returns r / s, or ErrDivisionByZero when s is zero.
func (r Rational) Div(s Rational) (Rational, error) {
	if s.IsZero() {
		return Rational{}, fmt.Errorf("Div: %w", ErrDivisionByZero)
	}
	rn, rd := r.parts()
	sn, sd := s.parts()

	return normalize(new(big.Int).Mul(rn, sd), new(big.Int).Mul(rd, sn)), nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	if r.IsZero() {
		return Rational{}
	}
	n, d := r.parts()

	return Rational{num: new(big.Int).Neg(n), den: new(big.Int).Set(d)}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	if r.Sign() >= 0 {
		return r
	}

	return r.Neg()
}

// Reciprocal returns 1/r, or ErrDivisionByZero when r is zero.
func (r Rational) Reciprocal() (Rational, error) {
	if r.IsZero() {
		return Rational{}, fmt.Errorf("Reciprocal: %w", ErrDivisionByZero)
	}
	n, d := r.parts()

	return normalize(new(big.Int).Set(d), new(big.Int).Set(n)), nil
}

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	n, _ := r.parts()

	return n.Sign()
}

// Cmp compares r and s and returns -1, 0 or +1.
func (r Rational) Cmp(s Rational) int {
	return r.Sub(s).Sign()
}

// Equal reports whether r and s denote the same number.
// Both sides are in lowest terms, so component equality suffices.
func (r Rational) Equal(s Rational) bool {
	rn, rd := r.parts()
	sn, sd := s.parts()

	return rn.Cmp(sn) == 0 && rd.Cmp(sd) == 0
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.Sign() == 0 }

// IsOne reports whether r == 1.
func (r Rational) IsOne() bool {
	n, d := r.parts()

	return n.Cmp(bigOne) == 0 && d.Cmp(bigOne) == 0
}

// String renders "n" for integers and "n/d" otherwise.
func (r Rational) String() string {
	n, d := r.parts()
	if d.Cmp(bigOne) == 0 {
		return n.String()
	}

	return n.String() + "/" + d.String()
}
