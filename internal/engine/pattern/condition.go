// Released under an MIT license. See LICENSE.

package pattern

import (
	"iter"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/pattern"
	"github.com/osmium-lang/osmium/internal/common/struct/capture"
)

// condition keeps only the matches of p for which cond holds.
type condition struct {
	p    pattern.I
	cond cell.I
	test func(cell.I, *capture.T) bool
}

func (p *condition) Match(c cell.I, b *capture.T) iter.Seq[pattern.Result] {
	return func(yield func(pattern.Result) bool) {
		for r := range p.p.Match(c, b) {
			if p.test(p.cond, r.Captures) && !yield(r) {
				return
			}
		}
	}
}

func (p *condition) Sequence(cs []cell.I, b *capture.T) iter.Seq2[pattern.Result, []cell.I] {
	return func(yield func(pattern.Result, []cell.I) bool) {
		for r, rest := range p.p.Sequence(cs, b) {
			if p.test(p.cond, r.Captures) && !yield(r, rest) {
				return
			}
		}
	}
}
