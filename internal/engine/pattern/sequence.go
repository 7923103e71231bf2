// Released under an MIT license. See LICENSE.

package pattern

import (
	"iter"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/pattern"
	"github.com/osmium-lang/osmium/internal/common/struct/capture"
)

// Match yields every way p matches c, starting from the bindings b.
func Match(p pattern.I, c cell.I, b *capture.T) iter.Seq[pattern.Result] {
	return p.Match(c, b)
}

// Sequence yields every way the patterns ps, in order, consume all of cs.
//
// The first pattern is tried against each prefix it accepts and the rest of
// the patterns against what remains. When the remainder cannot be matched
// the next prefix is tried. Enumeration is lazy: nothing beyond the match
// a caller stops at is ever explored.
func Sequence(ps []pattern.I, cs []cell.I, b *capture.T) iter.Seq[pattern.Result] {
	return func(yield func(pattern.Result) bool) {
		sequence(ps, cs, b, nil, yield)
	}
}

func sequence(
	ps []pattern.I,
	cs []cell.I,
	b *capture.T,
	consumed []cell.I,
	yield func(pattern.Result) bool,
) bool {
	if len(ps) == 0 {
		if len(cs) != 0 {
			return true
		}

		return yield(pattern.Result{Captures: b, Values: consumed})
	}

	for r, rest := range ps[0].Sequence(cs, b) {
		next := append(consumed[:len(consumed):len(consumed)], r.Values...)
		if !sequence(ps[1:], rest, r.Captures, next, yield) {
			return false
		}
	}

	return true
}

// single matches a pattern that always consumes exactly one value.
func single(p pattern.I, cs []cell.I, b *capture.T) iter.Seq2[pattern.Result, []cell.I] {
	return func(yield func(pattern.Result, []cell.I) bool) {
		if len(cs) == 0 {
			return
		}

		for r := range p.Match(cs[0], b) {
			if !yield(r, cs[1:]) {
				return
			}
		}
	}
}
