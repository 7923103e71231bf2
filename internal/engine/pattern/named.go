// Released under an MIT license. See LICENSE.

package pattern

import (
	"iter"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/pattern"
	"github.com/osmium-lang/osmium/internal/common/struct/capture"
)

// named binds whatever p consumed to name. A name that is already bound
// only matches an equal sequence of values.
type named struct {
	name cell.I
	p    pattern.I
}

func (p *named) Match(c cell.I, b *capture.T) iter.Seq[pattern.Result] {
	return func(yield func(pattern.Result) bool) {
		for r := range p.p.Match(c, b) {
			r, ok := p.bind(r)
			if ok && !yield(r) {
				return
			}
		}
	}
}

func (p *named) Sequence(cs []cell.I, b *capture.T) iter.Seq2[pattern.Result, []cell.I] {
	return func(yield func(pattern.Result, []cell.I) bool) {
		for r, rest := range p.p.Sequence(cs, b) {
			r, ok := p.bind(r)
			if ok && !yield(r, rest) {
				return
			}
		}
	}
}

func (p *named) bind(r pattern.Result) (pattern.Result, bool) {
	if bound, ok := r.Captures.Lookup(p.name); ok {
		return r, cell.Equal(bound, r.Values)
	}

	r.Captures = r.Captures.With(p.name, r.Values)

	return r, true
}
