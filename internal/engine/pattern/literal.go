// Released under an MIT license. See LICENSE.

package pattern

import (
	"iter"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/pattern"
	"github.com/osmium-lang/osmium/internal/common/struct/capture"
)

// lit matches values structurally equal to v.
type lit struct {
	v cell.I
}

func (p *lit) Match(c cell.I, b *capture.T) iter.Seq[pattern.Result] {
	return func(yield func(pattern.Result) bool) {
		if p.v.Equal(c) {
			yield(pattern.Result{Captures: b, Values: []cell.I{c}})
		}
	}
}

func (p *lit) Sequence(cs []cell.I, b *capture.T) iter.Seq2[pattern.Result, []cell.I] {
	return single(p, cs, b)
}
