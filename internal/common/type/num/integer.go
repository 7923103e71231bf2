// Released under an MIT license. See LICENSE.

package num

import (
	"math/big"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
)

type integer struct {
	v *big.Int
}

// Int creates an Integer from the int64 i.
func Int(i int64) I {
	return &integer{big.NewInt(i)}
}

// BigInt creates an Integer from a copy of i.
func BigInt(i *big.Int) I {
	return &integer{new(big.Int).Set(i)}
}

func (n *integer) Equal(c cell.I) bool {
	o, ok := c.(I)

	return ok && equal(n, o)
}

func (n *integer) Literal() string {
	return n.v.String()
}

func (n *integer) Name() string {
	return "integer"
}

func (n *integer) String() string {
	return n.Literal()
}

func (n *integer) Kind() Kind {
	return Integer
}

func (n *integer) Neg() I {
	return &integer{new(big.Int).Neg(n.v)}
}

func (n *integer) Inv() I {
	if n.IsZero() {
		panic("division by zero")
	}

	return &rational{new(big.Rat).SetFrac(big.NewInt(1), n.v)}
}

func (n *integer) IsZero() bool {
	return n.v.Sign() == 0
}

func (n *integer) Normalize() I {
	return n
}

func (n *integer) to(k Kind) I {
	switch k {
	case Integer:
		return n
	case Rational:
		return &rational{new(big.Rat).SetInt(n.v)}
	case Real:
		f, _ := new(big.Float).SetInt(n.v).Float64()
		return float(f)
	case Complex:
		return &cplx{re: n, im: Int(0)}
	}

	panic("cannot convert integer to " + k.String())
}

func (n *integer) same(o I) bool {
	return n.v.Cmp(o.(*integer).v) == 0
}
