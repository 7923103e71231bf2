// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/kernel"
	"github.com/osmium-lang/osmium/internal/common/interface/pattern"
	"github.com/osmium-lang/osmium/internal/common/struct/message"
	"github.com/osmium-lang/osmium/internal/common/type/expr"
	"github.com/osmium-lang/osmium/internal/common/type/sym"
)

// Evaluate rewrites c until nothing more applies and returns the result.
// Evaluating a value that is already in normal form returns it unchanged.
func (e *engine) Evaluate(c cell.I) cell.I {
	if e.depth == 0 {
		clear(e.reported)
	}

	if e.depth >= e.RecursionLimit {
		e.Message(message.New(
			"$RecursionLimit", "reclim",
			"Recursion depth of %d exceeded during evaluation of %s.",
			e.RecursionLimit, e.Format(c),
		))

		return c
	}

	e.depth++
	defer func() { e.depth-- }()

	for n := 0; ; n++ {
		if n == e.IterationLimit {
			e.Message(message.New(
				"$IterationLimit", "itlim",
				"Iteration limit of %d exceeded.", e.IterationLimit,
			))

			return c
		}

		var again bool

		switch t := c.(type) {
		case *expr.T:
			c, again = e.expression(t)
		case *sym.T:
			c, again = e.symbol(t)
		default:
			return c
		}

		if !again {
			return c
		}
	}
}

func (e *engine) expression(x *expr.T) (cell.I, bool) {
	head := e.Evaluate(x.Head())

	var attrs sym.Attributes

	hs, _ := head.(*sym.T)
	if hs != nil {
		attrs = hs.Attributes()
	}

	first := attrs&(sym.HoldAll|sym.HoldAllComplete|sym.HoldFirst) == 0
	rest := attrs&(sym.HoldAll|sym.HoldAllComplete|sym.HoldRest) == 0

	parts := make([]cell.I, x.Len())
	for i, p := range x.Parts() {
		if (i == 0 && first) || (i > 0 && rest) {
			p = e.Evaluate(p)
		}

		parts[i] = p
	}

	if attrs&sym.HoldAllComplete != 0 {
		return e.down(expr.Own(head, parts))
	}

	if attrs&sym.SequenceHold == 0 {
		parts = splice(parts, e.symbols.Sequence)
	}

	if attrs&sym.Flat != 0 {
		parts = splice(parts, hs)
	}

	rebuilt := expr.Own(head, parts)

	for _, p := range parts {
		if s := dispatch(p); s != nil {
			if r := e.rules(rebuilt, s.Rules(sym.Up)); r != nil {
				return r, true
			}
		}
	}

	for _, p := range parts {
		if s := dispatch(p); s != nil {
			if r, again := e.hook(rebuilt, s.Code(sym.Up)); r != nil {
				return r, again
			}
		}
	}

	return e.down(rebuilt)
}

func (e *engine) down(x *expr.T) (cell.I, bool) {
	s := dispatch(x)
	if s == nil {
		return x, false
	}

	if r := e.rules(x, s.Rules(sym.Down)); r != nil {
		return r, true
	}

	if r, again := e.hook(x, s.Code(sym.Down)); r != nil {
		return r, again
	}

	return x, false
}

func (e *engine) symbol(s *sym.T) (cell.I, bool) {
	if r := e.rules(s, s.Rules(sym.Own)); r != nil {
		return r, true
	}

	if r, again := e.hook(s, s.Code(sym.Own)); r != nil {
		return r, again
	}

	return s, false
}

func (e *engine) hook(c cell.I, code kernel.Code) (cell.I, bool) {
	if code == nil {
		return nil, false
	}

	return code(e, c)
}

// rules returns the instantiated right-hand side of the first rule in rs
// whose pattern matches c, or nil if none do.
func (e *engine) rules(c cell.I, rs []sym.Rule) cell.I {
	for _, r := range rs {
		if m, ok := pattern.First(r.Pattern, c, nil); ok {
			return e.subst.Apply(r.Value, m.Captures)
		}
	}

	return nil
}

// dispatch returns the symbol rules for c are attached to, if any.
func dispatch(c cell.I) *sym.T {
	s, _ := expr.AtomHead(c).(*sym.T)

	return s
}

// splice replaces, recursively, every part with the head h by its parts.
func splice(parts []cell.I, h *sym.T) []cell.I {
	found := false

	for _, p := range parts {
		if expr.HasHead(p, h) {
			found = true

			break
		}
	}

	if !found {
		return parts
	}

	spliced := make([]cell.I, 0, len(parts))

	for _, p := range parts {
		if expr.HasHead(p, h) {
			spliced = append(spliced, splice(expr.To(p).Parts(), h)...)
		} else {
			spliced = append(spliced, p)
		}
	}

	return spliced
}
