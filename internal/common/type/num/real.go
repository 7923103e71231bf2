// Released under an MIT license. See LICENSE.

package num

import (
	"math"
	"strconv"
	"strings"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
)

type float float64

// Float creates a Real from the float64 f.
func Float(f float64) I {
	return float(f)
}

func (n float) Equal(c cell.I) bool {
	o, ok := c.(I)

	return ok && equal(n, o)
}

// Literal writes reals so that they always read back as reals: "2." rather than "2".
func (n float) Literal() string {
	f := float64(n)

	switch {
	case math.IsInf(f, 1):
		return "DirectedInfinity[1]"
	case math.IsInf(f, -1):
		return "DirectedInfinity[-1]"
	case math.IsNaN(f):
		return "Indeterminate"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		m, e := s[:i], s[i+1:]
		if !strings.Contains(m, ".") {
			m += "."
		}

		return m + "*^" + strings.TrimPrefix(e, "+")
	}

	if !strings.Contains(s, ".") {
		s += "."
	}

	return s
}

func (n float) Name() string {
	return "real"
}

func (n float) String() string {
	return n.Literal()
}

func (n float) Kind() Kind {
	return Real
}

func (n float) Neg() I {
	return -n
}

func (n float) Inv() I {
	if n == 0 {
		panic("division by zero")
	}

	return 1 / n
}

func (n float) IsZero() bool {
	return n == 0
}

func (n float) Normalize() I {
	return n
}

// Float64 returns the value of the real n.
func (n float) Float64() float64 {
	return float64(n)
}

func (n float) to(k Kind) I {
	switch k {
	case Real:
		return n
	case Complex:
		return &cplx{re: n, im: Int(0)}
	}

	panic("cannot convert real to " + k.String())
}

func (n float) same(o I) bool {
	return n == o.(float)
}
