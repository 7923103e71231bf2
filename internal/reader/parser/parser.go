// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for osmium input.
package parser

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/osmium-lang/osmium/internal/common"
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/struct/table"
	"github.com/osmium-lang/osmium/internal/common/struct/token"
	"github.com/osmium-lang/osmium/internal/common/type/expr"
	"github.com/osmium-lang/osmium/internal/common/type/num"
	"github.com/osmium-lang/osmium/internal/common/type/str"
	"github.com/osmium-lang/osmium/internal/common/type/sym"
	"github.com/osmium-lang/osmium/internal/reader/lexer"
)

// Resolver turns the names that appear in input into symbols.
type Resolver interface {
	Resolve(name string) (*sym.T, error)
}

// T holds the state of the parser.
type T struct {
	depth    int        // Open brackets, braces and parentheses.
	index    int        // Index of the lookahead token.
	resolver Resolver   // Symbol lookup.
	tokens   []*token.T // Tokens ending with EOF.
}

// New creates a new parser for tokens.
func New(r Resolver, tokens []*token.T) *T {
	return &T{resolver: r, tokens: tokens}
}

// Parse returns every expression in the input. Expressions are separated
// by newlines or semicolons. If the input ends before an expression is
// complete, Parse returns lexer.ErrIncomplete.
func (p *T) Parse() (cs []cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		err = common.Error(r)

		cs = nil
	}()

	for {
		p.newlines()

		if p.peek().Is(token.EOF) {
			return cs, nil
		}

		cs = append(cs, p.assignment())

		switch t := p.peek(); t.Class() {
		case token.EOF, token.Newline:
		case ';':
			p.consume()
		default:
			p.unexpected(t)
		}
	}
}

func (p *T) consume() *token.T {
	t := p.peek()
	if !t.Is(token.EOF) {
		p.index++
	}

	return t
}

func (p *T) expect(c token.Class) {
	if t := p.peek(); !t.Is(c) {
		if t.Is(token.EOF) {
			panic(lexer.ErrIncomplete)
		}

		panic(fmt.Sprintf("%s: expected %s got %q", t.Source(), c, t.Value()))
	}

	p.consume()
}

func (p *T) newlines() {
	for p.tokens[p.index].Is(token.Newline) {
		p.index++
	}
}

// peek returns the lookahead token. Newlines are insignificant inside
// brackets.
func (p *T) peek() *token.T {
	if p.depth > 0 {
		p.newlines()
	}

	return p.tokens[p.index]
}

func (p *T) system(name string) *sym.T {
	return p.symbol(table.System+name, nil)
}

func (p *T) symbol(name string, t *token.T) *sym.T {
	s, err := p.resolver.Resolve(name)
	if err != nil {
		if t != nil {
			panic(fmt.Errorf("%s: %w", t.Source(), err))
		}

		panic(err)
	}

	return s
}

func (p *T) unexpected(t *token.T) {
	if t.Is(token.EOF) {
		panic(lexer.ErrIncomplete)
	}

	panic(fmt.Sprintf("%s: unexpected %q", t.Source(), t.Value()))
}

// T state functions.

// <assignment> ::= <condition> (('=' | ':=' | '^=' | '^:=') <assignment>)?
func (p *T) assignment() cell.I {
	c := p.condition()

	var head string

	switch p.peek().Class() {
	case token.Set:
		head = "Set"
	case token.SetDelayed:
		head = "SetDelayed"
	case token.UpSet:
		head = "UpSet"
	case token.UpSetDelayed:
		head = "UpSetDelayed"
	default:
		return c
	}

	p.consume()
	p.newlines()

	return expr.New(p.system(head), c, p.assignment())
}

// <condition> ::= <unary> ('/;' <unary>)*
func (p *T) condition() cell.I {
	c := p.unary()

	for p.peek().Is(token.Condition) {
		p.consume()
		p.newlines()

		c = expr.New(p.system("Condition"), c, p.unary())
	}

	return c
}

// <unary> ::= '-' <unary> | <application>
func (p *T) unary() cell.I {
	if !p.peek().Is('-') {
		return p.application()
	}

	p.consume()

	c := p.unary()
	if n, ok := c.(num.I); ok {
		return n.Neg()
	}

	return expr.New(p.system("Times"), num.Int(-1), c)
}

// <application> ::= <primary> ('[' <sequence> ']')*
func (p *T) application() cell.I {
	c := p.primary()

	for p.peek().Is('[') {
		p.consume()

		c = expr.Own(c, p.sequence(']'))
	}

	return c
}

// <sequence> ::= (<assignment> (',' <assignment>)*)? close
func (p *T) sequence(close token.Class) []cell.I {
	p.depth++
	defer func() { p.depth-- }()

	var cs []cell.I

	if p.peek().Is(close) {
		p.consume()

		return cs
	}

	for {
		cs = append(cs, p.assignment())

		if !p.peek().Is(',') {
			break
		}

		p.consume()
	}

	p.expect(close)

	return cs
}

// <primary> ::= Number | String | Symbol | Blank | '{' <sequence> '}' | '(' <assignment> ')'
func (p *T) primary() cell.I {
	t := p.peek()

	switch t.Class() {
	case token.Blank:
		p.consume()

		return p.blank(t)
	case token.Number:
		p.consume()

		n, err := num.Parse(t.Value())
		if err != nil {
			panic(fmt.Sprintf("%s: invalid number %q", t.Source(), t.Value()))
		}

		return n
	case token.String:
		p.consume()

		v := t.Value()

		s, err := adapted.ActualBytes(v[1 : len(v)-1])
		if err != nil {
			panic(fmt.Errorf("%s: %w", t.Source(), err))
		}

		return str.New(s)
	case token.Symbol:
		p.consume()

		return p.symbol(t.Value(), t)
	case '{':
		p.consume()

		return expr.Own(p.system("List"), p.sequence('}'))
	case '(':
		p.consume()

		p.depth++
		c := p.assignment()
		p.expect(')')
		p.depth--

		return c
	}

	p.unexpected(t)

	return nil
}

// blank expands name_head, name__head and name___head.
func (p *T) blank(t *token.T) cell.I {
	v := t.Value()
	i := strings.Index(v, "_")
	name, rest := v[:i], v[i:]
	head := strings.TrimLeft(rest, "_")

	var form string

	switch len(rest) - len(head) {
	case 1:
		form = "Blank"
	case 2:
		form = "BlankSequence"
	case 3:
		form = "BlankNullSequence"
	default:
		panic(fmt.Sprintf("%s: invalid pattern %q", t.Source(), v))
	}

	if strings.Contains(head, "_") {
		panic(fmt.Sprintf("%s: invalid pattern %q", t.Source(), v))
	}

	b := expr.New(p.system(form))
	if head != "" {
		b = expr.New(p.system(form), p.symbol(head, t))
	}

	if name == "" {
		return b
	}

	return expr.New(p.system("Pattern"), p.symbol(name, t), b)
}
