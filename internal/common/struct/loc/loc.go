// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track the source of tokens.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Char int    // Character position (column).
	Line int    // Line number (row).
	Name string // Label for the source of this token.
}

type loc = T

// Next returns the location that follows r read at l.
func (l loc) Next(r rune) loc {
	if r == '\n' {
		l.Line++
		l.Char = 1
	} else {
		l.Char++
	}

	return l
}

// String returns the location as name:line:char.
func (l loc) String() string {
	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
