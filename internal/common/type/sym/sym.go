// Released under an MIT license. See LICENSE.

// Package sym provides osmium's symbol type.
//
// A symbol is created once, by the symbol table, for each fully-qualified
// name and lives as long as the table. Symbols are compared by identity.
// Their attributes and rules are mutated in place so every holder of a
// symbol sees every definition.
package sym

import (
	"strings"

	"github.com/osmium-lang/osmium/internal/common"
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/kernel"
	"github.com/osmium-lang/osmium/internal/common/interface/literal"
	"github.com/osmium-lang/osmium/internal/common/interface/pattern"
)

const name = "symbol"

// Separator separates context segments in a fully-qualified name.
const Separator = "`"

// Class selects one of a symbol's three kinds of rules.
type Class int

// Rule classes.
const (
	// Own rules apply when the bare symbol is evaluated.
	Own Class = iota
	// Up rules apply when the symbol appears as a part of another expression.
	Up
	// Down rules apply when the symbol is the expression's dispatch symbol.
	Down
)

// String returns the name used for the class c, as in OwnValues.
func (c Class) String() string {
	switch c {
	case Own:
		return "OwnValues"
	case Up:
		return "UpValues"
	case Down:
		return "DownValues"
	}

	return "Values"
}

// Rule is a compiled left-hand side and the value it rewrites to.
type Rule struct {
	LHS     cell.I    // The pattern as written.
	Pattern pattern.I // The compiled pattern.
	Value   cell.I    // The right-hand side.
}

// T (sym) is a symbol record.
type T struct {
	name  string
	attrs Attributes
	rules [3][]Rule
	code  [3]kernel.Code
}

type sym = T

// New creates a symbol with the fully-qualified name v.
// Only the symbol table should call New.
func New(v string) *sym {
	return &sym{name: v}
}

// Equal returns true if c is the same symbol as s.
func (s *sym) Equal(c cell.I) bool {
	o, ok := c.(*sym)

	return ok && o == s
}

// Literal returns the fully-qualified name of the symbol s.
func (s *sym) Literal() string {
	return s.name
}

// Name returns the type name for the symbol s.
func (s *sym) Name() string {
	return name
}

// String returns the fully-qualified name of the symbol s.
func (s *sym) String() string {
	return s.name
}

// Methods specific to sym.

// Context returns the context part of the symbol's name, including the
// trailing separator.
func (s *sym) Context() string {
	i := strings.LastIndex(s.name, Separator)

	return s.name[:i+1]
}

// Short returns the symbol's name without its context.
func (s *sym) Short() string {
	i := strings.LastIndex(s.name, Separator)

	return s.name[i+1:]
}

// Attributes returns the attributes of the symbol s.
func (s *sym) Attributes() Attributes {
	return s.attrs
}

// Has returns true if the symbol s has every attribute in a.
func (s *sym) Has(a Attributes) bool {
	return s.attrs&a == a
}

// SetAttributes replaces the attributes of the symbol s.
func (s *sym) SetAttributes(a Attributes) {
	s.attrs = a
}

// Rules returns the rules of class c, most recently defined first.
// The slice must not be modified.
func (s *sym) Rules(c Class) []Rule {
	return s.rules[c]
}

// Define adds r as the first rule of class c. A rule with a structurally
// equal left-hand side is replaced, since the new rule would shadow it.
func (s *sym) Define(c Class, r Rule) {
	old := s.rules[c]

	rules := make([]Rule, 1, len(old)+1)
	rules[0] = r

	for _, o := range old {
		if !o.LHS.Equal(r.LHS) {
			rules = append(rules, o)
		}
	}

	s.rules[c] = rules
}

// Clear removes every rule of every class.
func (s *sym) Clear() {
	s.rules = [3][]Rule{}
}

// Code returns the native hook for class c, if any.
func (s *sym) Code(c Class) kernel.Code {
	return s.code[c]
}

// SetCode installs fn as the native hook for class c.
func (s *sym) SetCode(c Class, fn kernel.Code) {
	s.code[c] = fn
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
