// Released under an MIT license. See LICENSE.

package sym

import (
	"strings"
)

// Attributes is a set of flags controlling how a symbol evaluates.
type Attributes uint32

// Attribute flags.
const (
	Orderless Attributes = 1 << iota
	Flat
	OneIdentity
	Listable
	Constant
	NumericFunction
	Protected
	Locked
	ReadProtected
	HoldFirst
	HoldRest
	HoldAll
	HoldAllComplete
	NHoldFirst
	NHoldRest
	NHoldAll
	SequenceHold
	Temporary
	Stub
)

//nolint:gochecknoglobals
var names = []struct {
	a Attributes
	s string
}{
	{Constant, "Constant"},
	{Flat, "Flat"},
	{HoldAll, "HoldAll"},
	{HoldAllComplete, "HoldAllComplete"},
	{HoldFirst, "HoldFirst"},
	{HoldRest, "HoldRest"},
	{Listable, "Listable"},
	{Locked, "Locked"},
	{NHoldAll, "NHoldAll"},
	{NHoldFirst, "NHoldFirst"},
	{NHoldRest, "NHoldRest"},
	{NumericFunction, "NumericFunction"},
	{OneIdentity, "OneIdentity"},
	{Orderless, "Orderless"},
	{Protected, "Protected"},
	{ReadProtected, "ReadProtected"},
	{SequenceHold, "SequenceHold"},
	{Stub, "Stub"},
	{Temporary, "Temporary"},
}

// Attribute returns the flag named s.
func Attribute(s string) (Attributes, bool) {
	for _, n := range names {
		if n.s == s {
			return n.a, true
		}
	}

	return 0, false
}

// Names returns the names of the flags in a, in alphabetical order.
func (a Attributes) Names() []string {
	var s []string

	for _, n := range names {
		if a&n.a != 0 {
			s = append(s, n.s)
		}
	}

	return s
}

// String returns the attribute set a as {Flag1, Flag2}.
func (a Attributes) String() string {
	return "{" + strings.Join(a.Names(), ", ") + "}"
}
