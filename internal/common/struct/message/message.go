// Released under an MIT license. See LICENSE.

// Package message provides the diagnostics osmium reports while evaluating.
// A message never aborts evaluation; it is delivered to a sink and
// evaluation continues with a best-effort value.
package message

import (
	"fmt"
	"io"
)

// T (message) is a diagnostic identified by a symbol and a tag,
// as in Set::wrsym.
type T struct {
	Symbol string // Short name of the symbol the message is attached to.
	Tag    string // Message tag.
	Text   string // Human readable text.
}

type message = T

// New creates a new message with text formatted from format and args.
func New(symbol, tag, format string, args ...interface{}) *message {
	return &message{
		Symbol: symbol,
		Tag:    tag,
		Text:   fmt.Sprintf(format, args...),
	}
}

// Error lets a message be used where an error is expected.
func (m *message) Error() string {
	return m.String()
}

// ID returns the message's name in Symbol::tag form.
func (m *message) ID() string {
	return m.Symbol + "::" + m.Tag
}

// String returns the text representation of the message m.
func (m *message) String() string {
	return m.ID() + ": " + m.Text
}

// Sink receives messages.
type Sink func(m *T)

// Writer returns a sink that prints each message on its own line to w.
func Writer(w io.Writer) Sink {
	return func(m *T) {
		fmt.Fprintln(w, m.String())
	}
}

// Collector returns a sink that appends messages to *ms.
func Collector(ms *[]*T) Sink {
	return func(m *T) {
		*ms = append(*ms, m)
	}
}
