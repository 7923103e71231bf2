package message

import (
	"bytes"
	"testing"
)

func TestMessage(t *testing.T) {
	m := New("Set", "wrsym", "Symbol %s is Protected.", "Plus")

	if m.ID() != "Set::wrsym" {
		t.Fatalf("unexpected ID %q", m.ID())
	}

	if m.Error() != "Set::wrsym: Symbol Plus is Protected." {
		t.Fatalf("unexpected text %q", m.Error())
	}
}

func TestSinks(t *testing.T) {
	b := &bytes.Buffer{}

	var ms []*T

	w, c := Writer(b), Collector(&ms)

	for _, tag := range []string{"a", "b"} {
		m := New("General", tag, "text")

		w(m)
		c(m)
	}

	if b.String() != "General::a: text\nGeneral::b: text\n" {
		t.Fatalf("unexpected output %q", b.String())
	}

	if len(ms) != 2 || ms[1].Tag != "b" {
		t.Fatalf("unexpected messages %v", ms)
	}
}
