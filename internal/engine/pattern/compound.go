// Released under an MIT license. See LICENSE.

package pattern

import (
	"iter"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/pattern"
	"github.com/osmium-lang/osmium/internal/common/struct/capture"
	"github.com/osmium-lang/osmium/internal/common/type/expr"
)

// compound matches expressions whose head matches head and whose parts
// match parts as a sequence.
type compound struct {
	head  pattern.I
	parts []pattern.I
}

func (p *compound) Match(c cell.I, b *capture.T) iter.Seq[pattern.Result] {
	return func(yield func(pattern.Result) bool) {
		e, ok := c.(*expr.T)
		if !ok {
			return
		}

		for h := range p.head.Match(e.Head(), b) {
			for r := range Sequence(p.parts, e.Parts(), h.Captures) {
				if !yield(pattern.Result{Captures: r.Captures, Values: []cell.I{c}}) {
					return
				}
			}
		}
	}
}

func (p *compound) Sequence(cs []cell.I, b *capture.T) iter.Seq2[pattern.Result, []cell.I] {
	return single(p, cs, b)
}
