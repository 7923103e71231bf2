// Released under an MIT license. See LICENSE.

// Package subst instantiates the right-hand side of a rule under the
// bindings produced by a match.
package subst

import (
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/struct/capture"
	"github.com/osmium-lang/osmium/internal/common/type/expr"
	"github.com/osmium-lang/osmium/internal/common/type/sym"
)

// T (subst) substitutes bindings into values. Sequence is the head used to
// wrap a multi-value capture that has to stand as a single value.
type T struct {
	Sequence cell.I
}

type subst = T

// New creates a substituter that wraps multi-value captures with sequence.
func New(sequence cell.I) *subst {
	return &subst{Sequence: sequence}
}

// Apply returns c with bindings from b substituted, as a single value.
func (s *subst) Apply(c cell.I, b *capture.T) cell.I {
	if b == nil {
		return c
	}

	return s.Single(s.Values(c, b))
}

// Values returns c with bindings from b substituted. A bound symbol becomes
// its whole captured sequence, so the result may be more or fewer than one
// value. Inside an expression captured sequences are spliced into the
// parts; a head always stands as a single value.
func (s *subst) Values(c cell.I, b *capture.T) []cell.I {
	switch t := c.(type) {
	case *sym.T:
		if vs, ok := b.Lookup(t); ok {
			return vs
		}
	case *expr.T:
		parts := make([]cell.I, 0, t.Len())
		for _, p := range t.Parts() {
			parts = append(parts, s.Values(p, b)...)
		}

		return []cell.I{expr.Own(s.Single(s.Values(t.Head(), b)), parts)}
	}

	return []cell.I{c}
}

// Single returns the only value in vs or, when there are more or fewer
// than one, vs wrapped in a Sequence.
func (s *subst) Single(vs []cell.I) cell.I {
	if len(vs) == 1 {
		return vs[0]
	}

	return expr.New(s.Sequence, vs...)
}
