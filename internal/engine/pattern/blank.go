// Released under an MIT license. See LICENSE.

package pattern

import (
	"iter"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/pattern"
	"github.com/osmium-lang/osmium/internal/common/struct/capture"
)

// blank matches exactly one value.
type blank struct {
	head cell.I // Required head, or nil.
	of   func(cell.I) cell.I
}

func (p *blank) Match(c cell.I, b *capture.T) iter.Seq[pattern.Result] {
	return func(yield func(pattern.Result) bool) {
		if accepts(p.head, p.of, c) {
			yield(pattern.Result{Captures: b, Values: []cell.I{c}})
		}
	}
}

func (p *blank) Sequence(cs []cell.I, b *capture.T) iter.Seq2[pattern.Result, []cell.I] {
	return single(p, cs, b)
}

// blanks matches a run of values: one or more, or zero or more when null.
type blanks struct {
	head cell.I
	null bool
	of   func(cell.I) cell.I
}

// Match treats a sequence blank in a single-value position as a blank.
func (p *blanks) Match(c cell.I, b *capture.T) iter.Seq[pattern.Result] {
	return func(yield func(pattern.Result) bool) {
		if accepts(p.head, p.of, c) {
			yield(pattern.Result{Captures: b, Values: []cell.I{c}})
		}
	}
}

// Sequence yields the shortest split first: the empty run when null, then
// runs of increasing length until a value with the wrong head is reached.
func (p *blanks) Sequence(cs []cell.I, b *capture.T) iter.Seq2[pattern.Result, []cell.I] {
	return func(yield func(pattern.Result, []cell.I) bool) {
		if p.null && !yield(pattern.Result{Captures: b}, cs) {
			return
		}

		for i, c := range cs {
			if !accepts(p.head, p.of, c) {
				return
			}

			if !yield(pattern.Result{Captures: b, Values: cs[: i+1 : i+1]}, cs[i+1:]) {
				return
			}
		}
	}
}

func accepts(head cell.I, of func(cell.I) cell.I, c cell.I) bool {
	return head == nil || head.Equal(of(c))
}
