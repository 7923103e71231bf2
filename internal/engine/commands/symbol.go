// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/kernel"
	"github.com/osmium-lang/osmium/internal/common/type/expr"
	"github.com/osmium-lang/osmium/internal/common/type/str"
	"github.com/osmium-lang/osmium/internal/common/type/sym"
)

func (n *native) set(k kernel.I, e *expr.T) (cell.I, bool) {
	n.assign(k, n.symbols.Set, e.Part(0), e.Part(1))

	return e.Part(1), false
}

func (n *native) setDelayed(k kernel.I, e *expr.T) (cell.I, bool) {
	n.assign(k, n.symbols.SetDelayed, e.Part(0), e.Part(1))

	return n.symbols.Null, false
}

func (n *native) upSet(k kernel.I, e *expr.T) (cell.I, bool) {
	n.assignUp(k, n.symbols.UpSet, e.Part(0), e.Part(1))

	return e.Part(1), false
}

func (n *native) upSetDelayed(k kernel.I, e *expr.T) (cell.I, bool) {
	n.assignUp(k, n.symbols.UpSetDelayed, e.Part(0), e.Part(1))

	return n.symbols.Null, false
}

// assign attaches lhs -> rhs to a symbol lhs as an own-value, or to the
// dispatch symbol of an expression lhs as a down-value.
func (n *native) assign(k kernel.I, by *sym.T, lhs, rhs cell.I) {
	switch t := lhs.(type) {
	case *sym.T:
		n.define(k, by, t, sym.Own, lhs, rhs)

		return
	case *expr.T:
		if s, ok := expr.AtomHead(t).(*sym.T); ok {
			n.define(k, by, s, sym.Down, lhs, rhs)

			return
		}
	}

	n.message(k, by, "setraw", "Cannot assign to raw object %s.", k.Format(lhs))
}

// assignUp attaches lhs -> rhs as an up-value to the dispatch symbol of
// every part of lhs that is not a pattern.
func (n *native) assignUp(k kernel.I, by *sym.T, lhs, rhs cell.I) {
	attached := false

	if e, ok := lhs.(*expr.T); ok {
		for _, p := range e.Parts() {
			if s, ok := expr.AtomHead(p).(*sym.T); ok && !n.form(s) {
				n.define(k, by, s, sym.Up, lhs, rhs)

				attached = true
			}
		}
	}

	if !attached {
		n.message(k, by, "nosym", "%s does not contain a symbol to attach a rule to.", k.Format(lhs))
	}
}

// form returns true if s introduces a special pattern form.
func (n *native) form(s *sym.T) bool {
	switch s {
	case n.symbols.Blank, n.symbols.BlankNullSequence, n.symbols.BlankSequence,
		n.symbols.Condition, n.symbols.Pattern:
		return true
	}

	return false
}

func (n *native) define(k kernel.I, by, s *sym.T, c sym.Class, lhs, rhs cell.I) {
	if s.Has(sym.Protected) {
		n.message(k, by, "wrsym", "Symbol %s is Protected.", n.table.Short(s))

		return
	}

	s.Define(c, sym.Rule{LHS: lhs, Pattern: k.Compile(lhs), Value: rhs})
}

func (n *native) clear(k kernel.I, e *expr.T) (cell.I, bool) {
	for _, p := range e.Parts() {
		ss, ok := n.symbolsIn(p)
		if !ok {
			n.message(k, n.symbols.Clear, "ssym", "%s is not a symbol or a string.", k.Format(p))

			continue
		}

		for _, s := range ss {
			if s.Has(sym.Protected) {
				n.message(k, n.symbols.Clear, "wrsym", "Symbol %s is Protected.", n.table.Short(s))

				continue
			}

			s.Clear()
		}
	}

	return n.symbols.Null, false
}

func (n *native) attributes(k kernel.I, e *expr.T) (cell.I, bool) {
	ss, ok := n.symbolsIn(e.Part(0))
	if !ok || len(ss) != 1 {
		n.message(k, n.symbols.Attributes, "ssle",
			"Symbol or string expected at position 1 in %s.", k.Format(e))

		return nil, false
	}

	return n.attributeList(ss[0].Attributes()), false
}

func (n *native) setAttributes(k kernel.I, e *expr.T) (cell.I, bool) {
	return n.changeAttributes(k, e, func(s *sym.T, a sym.Attributes) {
		s.SetAttributes(s.Attributes() | a)
	})
}

func (n *native) clearAttributes(k kernel.I, e *expr.T) (cell.I, bool) {
	return n.changeAttributes(k, e, func(s *sym.T, a sym.Attributes) {
		s.SetAttributes(s.Attributes() &^ a)
	})
}

func (n *native) changeAttributes(
	k kernel.I, e *expr.T, change func(s *sym.T, a sym.Attributes),
) (cell.I, bool) {
	by := e.Head().(*sym.T)

	ss, ok := n.symbolsIn(e.Part(0))
	if !ok {
		n.message(k, by, "sym", "Argument %s at position 1 is expected to be a symbol.", k.Format(e.Part(0)))

		return nil, false
	}

	a, ok := n.flags(k, e.Part(1))
	if !ok {
		return nil, false
	}

	for _, s := range ss {
		switch {
		case s.Has(sym.Locked):
			n.message(k, by, "locked", "Symbol %s is locked.", n.table.Short(s))
		case s.Has(sym.Protected) && a&^sym.Protected != 0:
			n.message(k, by, "write", "Tag %s in Attributes[%s] is Protected.",
				n.table.Short(s), n.table.Short(s))
		default:
			change(s, a)
		}
	}

	return n.symbols.Null, false
}

// flags returns the attributes named by c, a symbol or a list of symbols.
func (n *native) flags(k kernel.I, c cell.I) (sym.Attributes, bool) {
	if expr.HasHead(c, n.symbols.List) {
		var a sym.Attributes

		for _, p := range expr.To(c).Parts() {
			f, ok := n.flags(k, p)
			if !ok {
				return 0, false
			}

			a |= f
		}

		return a, true
	}

	if s, ok := c.(*sym.T); ok {
		if a, ok := sym.Attribute(s.Short()); ok && n.symbols.Attribute(a) == s {
			return a, true
		}
	}

	n.message(k, n.symbols.Attributes, "attnf", "%s is not a known attribute.", k.Format(c))

	return 0, false
}

func (n *native) attributeList(a sym.Attributes) cell.I {
	names := a.Names()
	parts := make([]cell.I, len(names))

	for i, name := range names {
		f, _ := sym.Attribute(name)
		parts[i] = n.symbols.Attribute(f)
	}

	return n.symbols.MakeList(parts...)
}

func (n *native) protect(k kernel.I, e *expr.T) (cell.I, bool) {
	return n.protection(k, e, true)
}

func (n *native) unprotect(k kernel.I, e *expr.T) (cell.I, bool) {
	return n.protection(k, e, false)
}

// protection sets or clears Protected on the named symbols and returns
// the names of the symbols whose protection changed.
func (n *native) protection(k kernel.I, e *expr.T, on bool) (cell.I, bool) {
	var changed []cell.I

	for _, p := range e.Parts() {
		ss, ok := n.symbolsIn(p)
		if !ok {
			n.message(k, e.Head().(*sym.T), "ssym", "%s is not a symbol or a string.", k.Format(p))

			continue
		}

		for _, s := range ss {
			if s.Has(sym.Protected) == on || s.Has(sym.Locked) {
				continue
			}

			s.SetAttributes(s.Attributes() ^ sym.Protected)

			changed = append(changed, str.New(n.table.Short(s)))
		}
	}

	return n.symbols.MakeList(changed...), false
}
