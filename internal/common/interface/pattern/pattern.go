// Released under an MIT license. See LICENSE.

// Package pattern defines the interface for osmium's compiled patterns.
package pattern

import (
	"iter"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/struct/capture"
)

// Result is one successful match: the bindings in effect afterwards and
// the values the pattern consumed.
type Result struct {
	Captures *capture.T
	Values   []cell.I
}

// I (pattern) is a compiled pattern.
//
// Both methods return lazy, restartable sequences. A caller that stops
// ranging early never pays for the alternatives it did not ask for.
type I interface {
	// Match yields every way the pattern matches the single value c.
	Match(c cell.I, b *capture.T) iter.Seq[Result]

	// Sequence yields every way the pattern matches a prefix of cs,
	// paired with the values that remain.
	Sequence(cs []cell.I, b *capture.T) iter.Seq2[Result, []cell.I]
}

// First returns the first match of p against c, if there is one.
func First(p I, c cell.I, b *capture.T) (Result, bool) {
	for r := range p.Match(c, b) {
		return r, true
	}

	return Result{}, false
}
