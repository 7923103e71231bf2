// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for osmium input.
//
// The osmium lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide
// for more information.
package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/osmium-lang/osmium/internal/common/struct/loc"
	"github.com/osmium-lang/osmium/internal/common/struct/token"
)

// ErrIncomplete indicates the input ended inside a string, a comment or
// an expression that needs more text.
var ErrIncomplete = errors.New("incomplete input")

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	depth int    // Comment nesting.
	err   error  // First error encountered.

	at     loc.T // Location of the current byte.
	source loc.T // Location of the current token's first byte.
	tokens []*token.T
}

// New creates a new T for text. Label can be a file name or other identifier.
func New(label, text string) *T {
	start := loc.T{
		Char: 1,
		Line: 1,
		Name: label,
	}

	return &T{
		bytes:  text,
		at:     start,
		source: start,
	}
}

// Tokens scans the whole buffer. The last token is always EOF unless an
// error is returned.
func (l *T) Tokens() ([]*token.T, error) {
	for state := skipWhitespace; state != nil; {
		state = state(l)
	}

	if l.err != nil {
		return nil, l.err
	}

	return l.tokens, nil
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if w == 0 {
		return
	}

	l.at = l.at.Next(r)
	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.source

	l.tokens = append(l.tokens, token.New(c, v, &source))
	l.skip()
}

func (l *T) fail(err error) action {
	l.err = err

	return nil
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.source = l.at
	l.first = l.index
}

func (l *T) unexpected(r rune) action {
	return l.fail(fmt.Errorf("%s: unexpected %q", l.source.String(), r))
}

// T states.

func afterCaret(l *T) action {
	switch l.next() {
	case eof:
		return l.fail(ErrIncomplete)
	case '=':
		l.emit(token.UpSet, l.Text())

		return skipWhitespace
	case ':':
		if l.next() == '=' {
			l.emit(token.UpSetDelayed, l.Text())

			return skipWhitespace
		}
	}

	return l.unexpected('^')
}

func afterColon(l *T) action {
	if l.next() == '=' {
		l.emit(token.SetDelayed, l.Text())

		return skipWhitespace
	}

	return l.unexpected(':')
}

func afterOpenParen(l *T) action {
	r, w := l.peek()
	if r == '*' {
		l.accept(r, w)
		l.depth++

		return skipComment
	}

	l.emit('(', l.Text())

	return skipWhitespace
}

func afterSlash(l *T) action {
	if l.next() == ';' {
		l.emit(token.Condition, l.Text())

		return skipWhitespace
	}

	return l.unexpected('/')
}

func scanDigits(l *T) {
	for {
		r, w := l.peek()
		if !unicode.IsDigit(r) {
			return
		}

		l.accept(r, w)
	}
}

func scanNumber(l *T) action {
	scanDigits(l)

	if r, w := l.peek(); r == '.' {
		l.accept(r, w)
		scanDigits(l)
	}

	if strings.HasPrefix(l.bytes[l.index:], "*^") {
		l.accept('*', 1)
		l.accept('^', 1)

		if r, w := l.peek(); r == '-' || r == '+' {
			l.accept(r, w)
		}

		scanDigits(l)
	}

	l.emit(token.Number, strings.Replace(l.Text(), "*^", "e", 1))

	return skipWhitespace
}

func scanString(l *T) action {
	for {
		switch l.next() {
		case eof:
			return l.fail(ErrIncomplete)
		case '"':
			l.emit(token.String, l.Text())

			return skipWhitespace
		case '\\':
			if l.next() == eof {
				return l.fail(ErrIncomplete)
			}
		}
	}
}

func scanWord(l *T) action {
	blank := strings.Contains(l.Text(), "_")

	for {
		r, w := l.peek()

		switch {
		case r == '_':
			blank = true
		case r == '$', r == '`', unicode.IsLetter(r), unicode.IsDigit(r):
		default:
			if blank {
				l.emit(token.Blank, l.Text())
			} else {
				l.emit(token.Symbol, l.Text())
			}

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipComment(l *T) action {
	for {
		switch l.next() {
		case eof:
			return l.fail(ErrIncomplete)
		case '(':
			if r, w := l.peek(); r == '*' {
				l.accept(r, w)
				l.depth++
			}
		case '*':
			if r, w := l.peek(); r == ')' {
				l.accept(r, w)
				l.depth--

				if l.depth == 0 {
					l.skip()

					return skipWhitespace
				}
			}
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r := l.next()

		switch r {
		case ' ', '\r', '\t':
			l.skip()

			continue
		case eof:
			l.emit(token.EOF, "")

			return nil
		case '\n':
			l.emit(token.Newline, l.Text())
		case ')', ',', '-', ';', '[', ']', '{', '}':
			l.emit(token.Class(r), l.Text())
		case '"':
			return scanString
		case '(':
			return afterOpenParen
		case '/':
			return afterSlash
		case ':':
			return afterColon
		case '=':
			l.emit(token.Set, l.Text())
		case '^':
			return afterCaret
		default:
			if r == '.' || unicode.IsDigit(r) {
				return scanNumber
			}

			if r == '$' || r == '`' || r == '_' || unicode.IsLetter(r) {
				return scanWord
			}

			return l.unexpected(r)
		}

		return skipWhitespace
	}
}
