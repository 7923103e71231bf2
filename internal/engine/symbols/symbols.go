// Released under an MIT license. See LICENSE.

// Package symbols holds the System` symbols the evaluator and its native
// code refer to directly.
package symbols

import (
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/struct/table"
	"github.com/osmium-lang/osmium/internal/common/type/expr"
	"github.com/osmium-lang/osmium/internal/common/type/num"
	"github.com/osmium-lang/osmium/internal/common/type/str"
	"github.com/osmium-lang/osmium/internal/common/type/sym"
)

// T (symbols) is the set of well-known System` symbols.
type T struct {
	// Pattern forms.
	Blank             *sym.T
	BlankNullSequence *sym.T
	BlankSequence     *sym.T
	Condition         *sym.T
	Pattern           *sym.T

	// Values.
	False    *sym.T
	List     *sym.T
	Null     *sym.T
	Sequence *sym.T
	True     *sym.T

	// Atom heads.
	Complex  *sym.T
	Integer  *sym.T
	Rational *sym.T
	Real     *sym.T
	String   *sym.T
	Symbol   *sym.T

	// Functions with native code.
	And             *sym.T
	Append          *sym.T
	Apply           *sym.T
	Attributes      *sym.T
	Clear           *sym.T
	ClearAttributes *sym.T
	Head            *sym.T
	Length          *sym.T
	MatchQ          *sym.T
	Names           *sym.T
	Plus            *sym.T
	Protect         *sym.T
	SameQ           *sym.T
	Set             *sym.T
	SetAttributes   *sym.T
	SetDelayed      *sym.T
	Times           *sym.T
	Unprotect       *sym.T
	UpSet           *sym.T
	UpSetDelayed    *sym.T

	// Holding wrappers.
	Hold         *sym.T
	HoldComplete *sym.T

	// Message owners.
	General        *sym.T
	IterationLimit *sym.T
	RecursionLimit *sym.T

	attributes map[sym.Attributes]*sym.T
}

type symbols = T

// New creates the well-known symbols in t's System` context.
func New(t *table.T) *symbols {
	get := func(name string) *sym.T {
		s, err := t.Lookup(table.System + name)
		if err != nil {
			panic(err.Error())
		}

		return s
	}

	s := &symbols{
		Blank:             get("Blank"),
		BlankNullSequence: get("BlankNullSequence"),
		BlankSequence:     get("BlankSequence"),
		Condition:         get("Condition"),
		Pattern:           get("Pattern"),

		False:    get("False"),
		List:     get("List"),
		Null:     get("Null"),
		Sequence: get("Sequence"),
		True:     get("True"),

		Complex:  get("Complex"),
		Integer:  get("Integer"),
		Rational: get("Rational"),
		Real:     get("Real"),
		String:   get("String"),
		Symbol:   get("Symbol"),

		And:             get("And"),
		Append:          get("Append"),
		Apply:           get("Apply"),
		Attributes:      get("Attributes"),
		Clear:           get("Clear"),
		ClearAttributes: get("ClearAttributes"),
		Head:            get("Head"),
		Length:          get("Length"),
		MatchQ:          get("MatchQ"),
		Names:           get("Names"),
		Plus:            get("Plus"),
		Protect:         get("Protect"),
		SameQ:           get("SameQ"),
		Set:             get("Set"),
		SetAttributes:   get("SetAttributes"),
		SetDelayed:      get("SetDelayed"),
		Times:           get("Times"),
		Unprotect:       get("Unprotect"),
		UpSet:           get("UpSet"),
		UpSetDelayed:    get("UpSetDelayed"),

		Hold:         get("Hold"),
		HoldComplete: get("HoldComplete"),

		General:        get("General"),
		IterationLimit: get("$IterationLimit"),
		RecursionLimit: get("$RecursionLimit"),

		attributes: map[sym.Attributes]*sym.T{},
	}

	for _, name := range sym.Attributes(^uint32(0)).Names() {
		a, _ := sym.Attribute(name)
		s.attributes[a] = get(name)
	}

	return s
}

// Attribute returns the symbol that names the single attribute a.
func (s *symbols) Attribute(a sym.Attributes) *sym.T {
	return s.attributes[a]
}

// Bool returns True or False.
func (s *symbols) Bool(b bool) *sym.T {
	if b {
		return s.True
	}

	return s.False
}

// HeadOf returns the head of c. Atoms have the symbol naming their type as
// their head.
func (s *symbols) HeadOf(c cell.I) cell.I {
	switch t := c.(type) {
	case *expr.T:
		return t.Head()
	case *sym.T:
		return s.Symbol
	case *str.T:
		return s.String
	case num.I:
		switch t.Normalize().Kind() {
		case num.Integer:
			return s.Integer
		case num.Rational:
			return s.Rational
		case num.Real:
			return s.Real
		case num.Complex:
			return s.Complex
		}
	}

	panic("no head for " + c.Name())
}

// MakeList returns List[cs...].
func (s *symbols) MakeList(cs ...cell.I) *expr.T {
	return expr.Own(s.List, cs)
}
