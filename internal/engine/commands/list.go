// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/kernel"
	"github.com/osmium-lang/osmium/internal/common/type/expr"
	"github.com/osmium-lang/osmium/internal/common/type/num"
)

func (n *native) append(k kernel.I, e *expr.T) (cell.I, bool) {
	target, ok := e.Part(0).(*expr.T)
	if !ok {
		n.message(k, n.symbols.Append, "normal",
			"Nonatomic expression expected at position 1 in %s.", k.Format(e))

		return nil, false
	}

	parts := make([]cell.I, 0, target.Len()+1)
	parts = append(parts, target.Parts()...)
	parts = append(parts, e.Part(1))

	return expr.Own(target.Head(), parts), true
}

// apply replaces the head of its second argument with its first.
// Atoms are returned unchanged. Apply[f] is left for Apply[f][e].
func (n *native) apply(_ kernel.I, e *expr.T) (cell.I, bool) {
	if e.Len() == 1 {
		return nil, false
	}

	target, ok := e.Part(1).(*expr.T)
	if !ok {
		return e.Part(1), false
	}

	return expr.New(e.Part(0), target.Parts()...), true
}

func (n *native) length(_ kernel.I, e *expr.T) (cell.I, bool) {
	if target, ok := e.Part(0).(*expr.T); ok {
		return num.Int(int64(target.Len())), false
	}

	return num.Int(0), false
}
