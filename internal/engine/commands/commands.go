// Released under an MIT license. See LICENSE.

// Package commands provides the native code behind System` functions.
package commands

import (
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/kernel"
	"github.com/osmium-lang/osmium/internal/common/struct/message"
	"github.com/osmium-lang/osmium/internal/common/struct/table"
	"github.com/osmium-lang/osmium/internal/common/type/expr"
	"github.com/osmium-lang/osmium/internal/common/type/sym"
	"github.com/osmium-lang/osmium/internal/common/validate"
	"github.com/osmium-lang/osmium/internal/engine/symbols"
)

// A maximum of variadic accepts any number of arguments past the minimum.
const variadic = -1

type command struct {
	attrs sym.Attributes
	min   int
	max   int
	fn    func(k kernel.I, e *expr.T) (cell.I, bool)
}

type native struct {
	symbols *symbols.T
	table   *table.T
}

// Register sets the attributes of the System` functions and installs
// their native code as down hooks.
func Register(s *symbols.T, t *table.T) {
	n := &native{symbols: s, table: t}

	for f, c := range n.commands() {
		f.SetAttributes(f.Attributes() | c.attrs)

		if c.fn != nil {
			f.SetCode(sym.Down, wrap(f, c))
		}
	}
}

func (n *native) commands() map[*sym.T]command {
	s := n.symbols

	arith := sym.Flat | sym.Listable | sym.NumericFunction | sym.OneIdentity | sym.Orderless
	assign := sym.SequenceHold

	return map[*sym.T]command{
		s.And:             {sym.Flat | sym.HoldAll | sym.OneIdentity, 0, variadic, n.and},
		s.Append:          {0, 2, 2, n.append},
		s.Apply:           {0, 1, 2, n.apply},
		s.Attributes:      {sym.HoldAll | sym.Listable, 1, 1, n.attributes},
		s.Clear:           {sym.HoldAll, 0, variadic, n.clear},
		s.ClearAttributes: {sym.HoldFirst, 2, 2, n.clearAttributes},
		s.Condition:       {sym.HoldAll, 0, 0, nil},
		s.Head:            {0, 1, 1, n.head},
		s.Hold:            {sym.HoldAll, 0, 0, nil},
		s.HoldComplete:    {sym.HoldAllComplete, 0, 0, nil},
		s.Length:          {0, 1, 1, n.length},
		s.MatchQ:          {0, 2, 2, n.matchQ},
		s.Names:           {0, 0, 1, n.names},
		s.Pattern:         {sym.HoldFirst, 0, 0, nil},
		s.Plus:            {arith, 0, variadic, n.plus},
		s.Protect:         {sym.HoldAll, 0, variadic, n.protect},
		s.SameQ:           {0, 0, variadic, n.sameQ},
		s.Set:             {sym.HoldFirst | assign, 2, 2, n.set},
		s.SetAttributes:   {sym.HoldFirst, 2, 2, n.setAttributes},
		s.SetDelayed:      {sym.HoldAll | assign, 2, 2, n.setDelayed},
		s.Times:           {arith, 0, variadic, n.times},
		s.Unprotect:       {sym.HoldAll, 0, variadic, n.unprotect},
		s.UpSet:           {sym.HoldFirst | assign, 2, 2, n.upSet},
		s.UpSetDelayed:    {sym.HoldAll | assign, 2, 2, n.upSetDelayed},
	}
}

// wrap adapts c to a down hook for s. The hook applies only to expressions
// whose immediate head is s and that have an acceptable number of parts.
func wrap(s *sym.T, c command) kernel.Code {
	return func(k kernel.I, v cell.I) (cell.I, bool) {
		e, ok := v.(*expr.T)
		if !ok || e.Head() != cell.I(s) {
			return nil, false
		}

		if m := validate.Fixed(s.Short(), e.Len(), c.min, c.max); m != nil {
			k.Message(m)

			return nil, false
		}

		return c.fn(k, e)
	}
}

func (n *native) message(k kernel.I, s *sym.T, tag, format string, args ...interface{}) {
	k.Message(message.New(s.Short(), tag, format, args...))
}

// symbolsIn returns the symbols named by c: a symbol, a string naming
// symbols with a glob, or a list of either.
func (n *native) symbolsIn(c cell.I) ([]*sym.T, bool) {
	switch t := c.(type) {
	case *sym.T:
		return []*sym.T{t}, true
	case *expr.T:
		if t.Head() != cell.I(n.symbols.List) {
			return nil, false
		}

		var ss []*sym.T

		for _, p := range t.Parts() {
			s, ok := n.symbolsIn(p)
			if !ok {
				return nil, false
			}

			ss = append(ss, s...)
		}

		return ss, true
	}

	if glob, ok := text(c); ok {
		return n.lookup(glob), true
	}

	return nil, false
}
