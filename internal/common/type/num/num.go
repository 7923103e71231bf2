// Released under an MIT license. See LICENSE.

// Package num provides osmium's numeric tower: Integer, Rational, Real and
// Complex. Arithmetic promotes both operands to the higher of their kinds
// before combining them. Equality is defined on the normalized form.
package num

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/literal"
)

// Kind is a number's rank in the promotion lattice.
type Kind int

// Number kinds, in promotion order.
const (
	Integer Kind = iota
	Rational
	Real
	Complex
)

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case Rational:
		return "Rational"
	case Real:
		return "Real"
	case Complex:
		return "Complex"
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// I (num) is any osmium number.
type I interface {
	cell.I
	literal.I

	Kind() Kind
	Neg() I
	Inv() I
	IsZero() bool
	Normalize() I

	to(k Kind) I
	same(o I) bool
}

// Is returns true if c is a number.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}

// To returns a number if c is a number; Otherwise it panics.
func To(c cell.I) I {
	if n, ok := c.(I); ok {
		return n
	}

	panic(c.Name() + " cannot be used in a numeric context")
}

// Add returns a + b.
func Add(a, b I) I {
	a, b = promote(a, b)

	switch a.Kind() {
	case Integer:
		return &integer{new(big.Int).Add(a.(*integer).v, b.(*integer).v)}
	case Rational:
		return &rational{new(big.Rat).Add(a.(*rational).v, b.(*rational).v)}
	case Real:
		return a.(float) + b.(float)
	case Complex:
		x, y := a.(*cplx), b.(*cplx)
		return &cplx{re: Add(x.re, y.re), im: Add(x.im, y.im)}
	}

	panic("unknown number kind " + a.Kind().String())
}

// Mul returns a * b.
func Mul(a, b I) I {
	a, b = promote(a, b)

	switch a.Kind() {
	case Integer:
		return &integer{new(big.Int).Mul(a.(*integer).v, b.(*integer).v)}
	case Rational:
		return &rational{new(big.Rat).Mul(a.(*rational).v, b.(*rational).v)}
	case Real:
		return a.(float) * b.(float)
	case Complex:
		x, y := a.(*cplx), b.(*cplx)
		return &cplx{
			re: Add(Mul(x.re, y.re), Mul(x.im, y.im).Neg()),
			im: Add(Mul(x.re, y.im), Mul(x.im, y.re)),
		}
	}

	panic("unknown number kind " + a.Kind().String())
}

// Sub returns a - b.
func Sub(a, b I) I {
	return Add(a, b.Neg())
}

// Quo returns a / b. It panics if b is zero.
func Quo(a, b I) I {
	return Mul(a, b.Inv())
}

// Parse reads an integer or real literal.
func Parse(s string) (I, error) {
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid number: %w", s, err)
		}

		return Float(f), nil
	}

	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%q is not a valid number", s)
	}

	return BigInt(i), nil
}

func equal(a, b I) bool {
	a, b = a.Normalize(), b.Normalize()

	return a.Kind() == b.Kind() && a.same(b)
}

func promote(a, b I) (I, I) {
	switch {
	case a.Kind() > b.Kind():
		return a, b.to(a.Kind())
	case a.Kind() < b.Kind():
		return a.to(b.Kind()), b
	}

	return a, b
}

// Int64 returns the value of c if it is an Integer that fits in an int64.
func Int64(c cell.I) (int64, bool) {
	if v, ok := c.(I); ok {
		c = v.Normalize()
	}

	n, ok := c.(*integer)
	if !ok || !n.v.IsInt64() {
		return 0, false
	}

	return n.v.Int64(), true
}
