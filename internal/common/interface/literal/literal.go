// Released under an MIT license. See LICENSE.

// Package literal defines the interface for osmium types that can be expressed as literals.
package literal

import (
	"strings"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed in FullForm.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell, if possible.
func String(c cell.I) string {
	l, ok := c.(I)
	if !ok {
		panic(c.Name() + " does not have a literal representation")
	}

	return l.Literal()
}

// Join returns the literal representations of cs separated by sep.
func Join(cs []cell.I, sep string) string {
	s := make([]string, len(cs))
	for i, c := range cs {
		s[i] = String(c)
	}

	return strings.Join(s, sep)
}
