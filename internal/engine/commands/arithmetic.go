// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/kernel"
	"github.com/osmium-lang/osmium/internal/common/type/expr"
	"github.com/osmium-lang/osmium/internal/common/type/num"
)

func (n *native) plus(_ kernel.I, e *expr.T) (cell.I, bool) {
	return fold(e, num.Int(0), num.Add)
}

func (n *native) times(_ kernel.I, e *expr.T) (cell.I, bool) {
	if e.Len() == 2 && e.Part(0).Equal(num.Int(-1)) {
		if v, ok := e.Part(1).(num.I); ok {
			return v.Neg().Normalize(), false
		}
	}

	return fold(e, num.Int(1), num.Mul)
}

// fold combines the numeric parts of e with op. The total replaces the
// numbers, after every other part, and is dropped when it is identity.
func fold(e *expr.T, identity num.I, op func(a, b num.I) num.I) (cell.I, bool) {
	var total num.I

	numbers := 0
	others := make([]cell.I, 0, e.Len())

	for _, p := range e.Parts() {
		v, ok := p.(num.I)
		if !ok {
			others = append(others, p)

			continue
		}

		numbers++

		if total == nil {
			total = v
		} else {
			total = op(total, v)
		}
	}

	switch {
	case total == nil && len(others) == 0:
		return identity, false
	case total == nil:
		return nil, false
	case len(others) == 0:
		return total.Normalize(), false
	case total.Equal(identity):
		if len(others) == 1 {
			return others[0], true
		}

		return expr.Own(e.Head(), others), true
	case numbers == 1:
		return nil, false
	}

	return expr.Own(e.Head(), append(others, total.Normalize())), true
}
