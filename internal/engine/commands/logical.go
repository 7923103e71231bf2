// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/kernel"
	"github.com/osmium-lang/osmium/internal/common/type/expr"
)

// and evaluates its arguments in order, stopping at the first False.
// True arguments are dropped; anything else is kept.
func (n *native) and(k kernel.I, e *expr.T) (cell.I, bool) {
	kept := make([]cell.I, 0, e.Len())

	for _, p := range e.Parts() {
		switch v := k.Evaluate(p); v {
		case cell.I(n.symbols.False):
			return n.symbols.False, false
		case cell.I(n.symbols.True):
		default:
			kept = append(kept, v)
		}
	}

	switch len(kept) {
	case 0:
		return n.symbols.True, false
	case 1:
		return kept[0], false
	}

	return expr.Own(e.Head(), kept), false
}
