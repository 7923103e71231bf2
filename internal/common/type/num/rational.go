// Released under an MIT license. See LICENSE.

package num

import (
	"math/big"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
)

// Rationals are always kept in lowest terms by big.Rat.
type rational struct {
	v *big.Rat
}

// Rat creates a Rational a/b. It panics if b is zero.
func Rat(a, b int64) I {
	if b == 0 {
		panic("division by zero")
	}

	return &rational{big.NewRat(a, b)}
}

// BigRat creates a Rational from a copy of r.
func BigRat(r *big.Rat) I {
	return &rational{new(big.Rat).Set(r)}
}

func (n *rational) Equal(c cell.I) bool {
	o, ok := c.(I)

	return ok && equal(n, o)
}

func (n *rational) Literal() string {
	if n.v.IsInt() {
		return n.v.Num().String()
	}

	return "Rational[" + n.v.Num().String() + ", " + n.v.Denom().String() + "]"
}

func (n *rational) Name() string {
	return "rational"
}

func (n *rational) String() string {
	return n.Literal()
}

func (n *rational) Kind() Kind {
	return Rational
}

func (n *rational) Neg() I {
	return &rational{new(big.Rat).Neg(n.v)}
}

func (n *rational) Inv() I {
	if n.IsZero() {
		panic("division by zero")
	}

	return &rational{new(big.Rat).Inv(n.v)}
}

func (n *rational) IsZero() bool {
	return n.v.Sign() == 0
}

func (n *rational) Normalize() I {
	if n.v.IsInt() {
		return &integer{new(big.Int).Set(n.v.Num())}
	}

	return n
}

func (n *rational) to(k Kind) I {
	switch k {
	case Rational:
		return n
	case Real:
		f, _ := n.v.Float64()
		return float(f)
	case Complex:
		return &cplx{re: n, im: Int(0)}
	case Integer:
		return &integer{new(big.Int).Quo(n.v.Num(), n.v.Denom())}
	}

	panic("cannot convert rational to " + k.String())
}

func (n *rational) same(o I) bool {
	return n.v.Cmp(o.(*rational).v) == 0
}
