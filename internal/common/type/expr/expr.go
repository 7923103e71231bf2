// Released under an MIT license. See LICENSE.

// Package expr provides osmium's expression type.
package expr

import (
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/literal"
)

const name = "expression"

// T (expr) is a head applied to an ordered sequence of parts.
// Expressions are never modified after they are created.
type T struct {
	head  cell.I
	parts []cell.I
}

type expr = T

// New creates an expression with the head h and the parts ps.
// The parts slice is copied.
func New(h cell.I, ps ...cell.I) *expr {
	if h == nil {
		panic("expression head cannot be nil")
	}

	parts := make([]cell.I, len(ps))
	copy(parts, ps)

	return &expr{head: h, parts: parts}
}

// Own creates an expression that takes ownership of the parts slice ps.
// The caller must not modify ps afterwards.
func Own(h cell.I, ps []cell.I) *expr {
	if h == nil {
		panic("expression head cannot be nil")
	}

	return &expr{head: h, parts: ps}
}

// Equal returns true if c is an expression with an equal head and equal parts.
func (e *expr) Equal(c cell.I) bool {
	o, ok := c.(*expr)
	if !ok {
		return false
	}

	if e == o {
		return true
	}

	return cell.Equal(e.parts, o.parts) && e.head.Equal(o.head)
}

// Literal returns the FullForm representation of the expression e.
func (e *expr) Literal() string {
	return literal.String(e.head) + "[" + literal.Join(e.parts, ", ") + "]"
}

// Name returns the type name for the expression e.
func (e *expr) Name() string {
	return name
}

// String returns the text of the expression e.
func (e *expr) String() string {
	return e.Literal()
}

// Functions specific to expr.

// Head returns the head of the expression e.
func (e *expr) Head() cell.I {
	return e.head
}

// Len returns the number of parts in the expression e.
func (e *expr) Len() int {
	return len(e.parts)
}

// Part returns the i-th part (zero-based) of the expression e.
func (e *expr) Part(i int) cell.I {
	return e.parts[i]
}

// Parts returns the parts of the expression e. The slice must not be modified.
func (e *expr) Parts() []cell.I {
	return e.parts
}

// AtomHead returns the leftmost atom reached by repeatedly taking the head of c.
// For an atom, this is the atom itself.
func AtomHead(c cell.I) cell.I {
	for {
		e, ok := c.(*expr)
		if !ok {
			return c
		}

		c = e.head
	}
}

// HasHead returns true if c is an expression whose immediate head is h.
// Heads are compared by identity, which is the correct test for symbols.
func HasHead(c cell.I, h cell.I) bool {
	e, ok := c.(*expr)

	return ok && e.head == h
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t expr

	// The expr type is a cell.
	_ = cell.I(&t)

	// The expr type has a literal representation.
	_ = literal.I(&t)
}
