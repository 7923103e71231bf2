// Released under an MIT license. See LICENSE.

// Package reader turns osmium source text into values.
package reader

import (
	"errors"
	"strings"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/reader/lexer"
	"github.com/osmium-lang/osmium/internal/reader/parser"
)

// ErrIncomplete indicates the text ended before the last expression did.
var ErrIncomplete = lexer.ErrIncomplete

// T (reader) accumulates lines until they hold complete expressions.
type T struct {
	label    string
	lines    []string
	resolver parser.Resolver
}

type reader = T

// New creates a new reader for input labeled name.
func New(r parser.Resolver, name string) *reader {
	return &reader{label: name, resolver: r}
}

// Pending returns true if the reader is holding an incomplete expression.
func (r *reader) Pending() bool {
	return len(r.lines) > 0
}

// Reset discards any incomplete expression.
func (r *reader) Reset() {
	r.lines = nil
}

// Scan adds line to the text read so far. It returns the expressions read
// once they are complete, or nothing if more lines are needed. On any
// other error the text read so far is discarded.
func (r *reader) Scan(line string) ([]cell.I, error) {
	r.lines = append(r.lines, line)

	cs, err := Read(r.resolver, r.label, strings.Join(r.lines, "\n"))
	if errors.Is(err, ErrIncomplete) {
		return nil, nil
	}

	r.lines = nil

	return cs, err
}

// Read returns every expression in text, labeled name in error messages.
func Read(r parser.Resolver, name, text string) ([]cell.I, error) {
	tokens, err := lexer.New(name, text).Tokens()
	if err != nil {
		return nil, err
	}

	return parser.New(r, tokens).Parse()
}
