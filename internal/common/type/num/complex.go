// Released under an MIT license. See LICENSE.

package num

import (
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
)

// Complex numbers hold a real and an imaginary part, each of a lower kind.
type cplx struct {
	re I
	im I
}

// Cplx creates a Complex from its real and imaginary parts.
func Cplx(re, im I) I {
	if re.Kind() == Complex || im.Kind() == Complex {
		panic("complex parts must not be complex")
	}

	return &cplx{re: re, im: im}
}

func (n *cplx) Equal(c cell.I) bool {
	o, ok := c.(I)

	return ok && equal(n, o)
}

func (n *cplx) Literal() string {
	return "Complex[" + n.re.Literal() + ", " + n.im.Literal() + "]"
}

func (n *cplx) Name() string {
	return "complex"
}

func (n *cplx) String() string {
	return n.Literal()
}

func (n *cplx) Kind() Kind {
	return Complex
}

func (n *cplx) Neg() I {
	return &cplx{re: n.re.Neg(), im: n.im.Neg()}
}

func (n *cplx) Inv() I {
	d := Add(Mul(n.re, n.re), Mul(n.im, n.im))
	if d.IsZero() {
		panic("division by zero")
	}

	return &cplx{re: Quo(n.re, d), im: Quo(n.im.Neg(), d)}
}

func (n *cplx) IsZero() bool {
	return n.re.IsZero() && n.im.IsZero()
}

// Normalize drops an exact zero imaginary part.
func (n *cplx) Normalize() I {
	im := n.im.Normalize()
	if im.Kind() == Integer && im.IsZero() {
		return n.re.Normalize()
	}

	return &cplx{re: n.re.Normalize(), im: im}
}

// Parts returns the real and imaginary parts of n.
func (n *cplx) Parts() (I, I) {
	return n.re, n.im
}

func (n *cplx) to(k Kind) I {
	if k == Complex {
		return n
	}

	return n.re.to(k)
}

func (n *cplx) same(o I) bool {
	c := o.(*cplx)

	return n.re.Equal(c.re) && n.im.Equal(c.im)
}
