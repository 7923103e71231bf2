// Released under an MIT license. See LICENSE.

// Package pattern compiles pattern-shaped values into matchers.
//
// Special forms are recognized by the identity of their head symbol:
//
//	Blank[], Blank[h]                      exactly one value
//	BlankSequence[], BlankSequence[h]      one or more values
//	BlankNullSequence[], ...[h]            zero or more values
//	Pattern[name, p]                       p, binding what it consumed to name
//	Condition[p, test]                     p, if test evaluates to True
//
// Anything else is a literal, except that an expression with a non-literal
// head or part compiles into an expression pattern.
package pattern

import (
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/literal"
	"github.com/osmium-lang/osmium/internal/common/interface/pattern"
	"github.com/osmium-lang/osmium/internal/common/struct/capture"
	"github.com/osmium-lang/osmium/internal/common/type/expr"
	"github.com/osmium-lang/osmium/internal/common/type/sym"
)

// Forms holds the symbols that introduce special pattern forms.
type Forms struct {
	Blank             cell.I
	BlankSequence     cell.I
	BlankNullSequence cell.I
	Condition         cell.I
	Pattern           cell.I
}

// Compiler turns values into compiled patterns.
type Compiler struct {
	forms Forms
	head  func(c cell.I) cell.I
	test  func(cond cell.I, b *capture.T) bool

	cache map[string]pattern.I
}

// NewCompiler creates a compiler. The head function returns the head of any
// value (atoms included) and is used by head-constrained blanks. The test
// function decides Condition tests under a set of bindings.
func NewCompiler(
	forms Forms,
	head func(c cell.I) cell.I,
	test func(cond cell.I, b *capture.T) bool,
) *Compiler {
	return &Compiler{
		forms: forms,
		head:  head,
		test:  test,
		cache: map[string]pattern.I{},
	}
}

// Compile returns the compiled pattern for p. Compilation depends only on
// the structure of p so results are cached by p's FullForm.
func (c *Compiler) Compile(p cell.I) pattern.I {
	key := literal.String(p)
	if cp, ok := c.cache[key]; ok {
		return cp
	}

	cp := c.compile(p)
	c.cache[key] = cp

	return cp
}

// Cached returns the number of cached patterns.
func (c *Compiler) Cached() int {
	return len(c.cache)
}

func (c *Compiler) compile(p cell.I) pattern.I {
	e, ok := p.(*expr.T)
	if !ok {
		return &lit{p}
	}

	switch h := e.Head(); {
	case h == c.forms.Blank:
		if e.Len() < 2 {
			return &blank{head: optional(e), of: c.head}
		}
	case h == c.forms.BlankSequence, h == c.forms.BlankNullSequence:
		if e.Len() < 2 {
			return &blanks{
				head: optional(e),
				null: h == c.forms.BlankNullSequence,
				of:   c.head,
			}
		}
	case h == c.forms.Pattern:
		if e.Len() == 2 && sym.Is(e.Part(0)) {
			return &named{name: e.Part(0), p: c.compile(e.Part(1))}
		}
	case h == c.forms.Condition:
		if e.Len() == 2 {
			return &condition{p: c.compile(e.Part(0)), cond: e.Part(1), test: c.test}
		}
	}

	head := c.compile(e.Head())
	parts := make([]pattern.I, e.Len())
	literals := isLiteral(head)

	for i, part := range e.Parts() {
		parts[i] = c.compile(part)
		literals = literals && isLiteral(parts[i])
	}

	if literals {
		return &lit{p}
	}

	return &compound{head: head, parts: parts}
}

func isLiteral(p pattern.I) bool {
	_, ok := p.(*lit)

	return ok
}

func optional(e *expr.T) cell.I {
	if e.Len() == 0 {
		return nil
	}

	return e.Part(0)
}
