// Released under an MIT license. See LICENSE.

// Package capture provides the bindings produced by pattern matching.
//
// A capture set is a persistent list of (name, values) entries. Adding an
// entry returns a new set that shares the existing entries, so sibling
// branches of a backtracking match never see each other's bindings and
// abandoning a branch costs nothing.
package capture

import (
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
)

// T (capture) is an immutable set of bindings. The nil *T is the empty set.
type T struct {
	name   cell.I
	values []cell.I
	next   *capture
}

type capture = T

// With returns a new set that also binds name to values.
func (c *capture) With(name cell.I, values []cell.I) *capture {
	return &capture{name: name, values: values, next: c}
}

// Lookup returns the values bound to name, if any.
// Names are compared by identity.
func (c *capture) Lookup(name cell.I) ([]cell.I, bool) {
	for ; c != nil; c = c.next {
		if c.name == name {
			return c.values, true
		}
	}

	return nil, false
}

// Len returns the number of bindings in the set c.
func (c *capture) Len() int {
	n := 0
	for ; c != nil; c = c.next {
		n++
	}

	return n
}

// Each calls fn for every binding, oldest first.
func (c *capture) Each(fn func(name cell.I, values []cell.I)) {
	if c == nil {
		return
	}

	c.next.Each(fn)
	fn(c.name, c.values)
}
