// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/kernel"
	"github.com/osmium-lang/osmium/internal/common/interface/pattern"
	"github.com/osmium-lang/osmium/internal/common/type/expr"
)

func (n *native) matchQ(k kernel.I, e *expr.T) (cell.I, bool) {
	_, ok := pattern.First(k.Compile(e.Part(1)), e.Part(0), nil)

	return n.symbols.Bool(ok), false
}

func (n *native) sameQ(_ kernel.I, e *expr.T) (cell.I, bool) {
	parts := e.Parts()

	for i := 1; i < len(parts); i++ {
		if !parts[i-1].Equal(parts[i]) {
			return n.symbols.False, false
		}
	}

	return n.symbols.True, false
}
