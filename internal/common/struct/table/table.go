// Released under an MIT license. See LICENSE.

// Package table provides osmium's symbol table.
//
// The table interns symbols by fully-qualified name. Unqualified names are
// resolved against a search path of contexts, falling back to the current
// context, in the same way a shell resolves a command against $PATH.
package table

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/michaelmacinnis/adapted"
	"github.com/osmium-lang/osmium/internal/common/type/sym"
)

// ErrInvalidName is returned when a name is not a valid symbol name.
var ErrInvalidName = errors.New("invalid symbol name")

// Default contexts.
const (
	Global = "Global" + sym.Separator
	System = "System" + sym.Separator
)

// T (table) maps fully-qualified names to symbols.
type T struct {
	Context string   // Context new symbols are created in.
	Path    []string // Contexts searched for unqualified names.

	symbols map[string]*sym.T
}

type table = T

// New creates an empty table with the Global` context and a path of System`.
func New() *table {
	return &table{
		Context: Global,
		Path:    []string{System},
		symbols: map[string]*sym.T{},
	}
}

// Find returns the symbol with the fully-qualified name key, if it exists.
func (t *table) Find(key string) (*sym.T, error) {
	if !Valid(key) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, key)
	}

	return t.symbols[key], nil
}

// Lookup returns the symbol with the fully-qualified name key, creating it
// if it does not exist.
func (t *table) Lookup(key string) (*sym.T, error) {
	s, err := t.Find(key)
	if err != nil {
		return nil, err
	}

	if s == nil {
		s = sym.New(key)
		t.symbols[key] = s
	}

	return s, nil
}

// Resolve returns the symbol for name.
//
// A name that starts with the separator is relative to the current context.
// A name that contains the separator anywhere else is used as is. Otherwise
// the first context on the path that already has a symbol with that name
// wins and, failing that, the symbol is created in the current context.
func (t *table) Resolve(name string) (*sym.T, error) {
	if strings.HasPrefix(name, sym.Separator) {
		return t.Lookup(t.Context + name[1:])
	}

	if strings.Contains(name, sym.Separator) {
		return t.Lookup(name)
	}

	for _, context := range t.Path {
		s, err := t.Find(context + name)
		if err != nil {
			return nil, err
		}

		if s != nil {
			return s, nil
		}
	}

	return t.Lookup(t.Context + name)
}

// Names returns, sorted, the fully-qualified names that match the
// shell-style pattern glob.
func (t *table) Names(glob string) ([]string, error) {
	var names []string

	for k := range t.symbols {
		ok, err := adapted.Match(glob, k)
		if err != nil {
			return nil, err
		}

		if ok {
			names = append(names, k)
		}
	}

	sort.Strings(names)

	return names, nil
}

// Short returns the shortest name that resolves to s: its bare name when
// its context is current or on the path and nothing earlier shadows it.
func (t *table) Short(s *sym.T) string {
	short := s.Short()

	for _, context := range t.Path {
		if found := t.symbols[context+short]; found != nil {
			if found == s {
				return short
			}

			return s.String()
		}
	}

	if s.Context() == t.Context {
		return short
	}

	return s.String()
}

// Size returns the number of symbols in the table t.
func (t *table) Size() int {
	return len(t.symbols)
}

// Valid returns true if key is a syntactically valid fully-qualified name:
// one or more segments separated by the separator, each starting with a
// letter or $ and containing only letters, digits and $.
func Valid(key string) bool {
	if key == "" {
		return false
	}

	for _, segment := range strings.Split(key, sym.Separator) {
		if segment == "" {
			return false
		}

		for i, r := range segment {
			switch {
			case r == '$', unicode.IsLetter(r):
			case i > 0 && unicode.IsDigit(r):
			default:
				return false
			}
		}
	}

	return true
}
