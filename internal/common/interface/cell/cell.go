// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all osmium values.
package cell

// I (cell) is the basic unit of storage in osmium. Symbols, expressions,
// numbers and strings are all cells.
type I interface {
	Equal(c I) bool
	Name() string
}

// Equal returns true if every cell in a is equal to the corresponding cell in b.
func Equal(a, b []I) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
