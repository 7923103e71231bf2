package loc

import (
	"testing"
)

func TestNext(t *testing.T) {
	l := T{Char: 1, Line: 1, Name: "test"}

	for _, r := range "ab\nc" {
		l = l.Next(r)
	}

	if s := l.String(); s != "test:2:2" {
		t.Fatalf("expected test:2:2; got %s", s)
	}
}
