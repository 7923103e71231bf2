package table

import (
	"errors"
	"strings"
	"testing"
)

func TestLookupInterns(t *testing.T) {
	tbl := New()

	a, err := tbl.Lookup("Global`x")
	if err != nil {
		t.Fatal(err)
	}

	b, _ := tbl.Lookup("Global`x")
	if a != b {
		t.Fatal("looking up the same name twice should return the same symbol")
	}

	if tbl.Size() != 1 {
		t.Fatalf("expected 1 symbol; got %d", tbl.Size())
	}
}

func TestResolve(t *testing.T) {
	tbl := New()

	plus, _ := tbl.Lookup(System + "Plus")

	s, err := tbl.Resolve("Plus")
	if err != nil {
		t.Fatal(err)
	}

	if s != plus {
		t.Fatalf("expected System`Plus; got %s", s)
	}

	s, _ = tbl.Resolve("x")
	if s.String() != "Global`x" {
		t.Fatalf("expected Global`x; got %s", s)
	}

	s, _ = tbl.Resolve("`Plus")
	if s.String() != "Global`Plus" {
		t.Fatalf("expected Global`Plus; got %s", s)
	}

	s, _ = tbl.Resolve("a`b`c")
	if s.String() != "a`b`c" || s.Context() != "a`b`" || s.Short() != "c" {
		t.Fatalf("unexpected symbol %s", s)
	}
}

func TestInvalid(t *testing.T) {
	tbl := New()

	for _, name := range []string{"", "1x", "a``b", "x`", "a-b", "x_"} {
		if _, err := tbl.Lookup(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("%q: expected ErrInvalidName; got %v", name, err)
		}
	}

	for _, name := range []string{"x", "$x", "x1", "Global`x", "a`b`$c"} {
		if !Valid(name) {
			t.Errorf("%q should be valid", name)
		}
	}
}

func TestNames(t *testing.T) {
	tbl := New()

	for _, name := range []string{"Set", "SetDelayed", "Plus"} {
		_, _ = tbl.Lookup(System + name)
	}

	_, _ = tbl.Lookup(Global + "Setting")

	names, err := tbl.Names(System + "Set*")
	if err != nil {
		t.Fatal(err)
	}

	if got := strings.Join(names, " "); got != "System`Set System`SetDelayed" {
		t.Fatalf("unexpected names %q", got)
	}

	names, _ = tbl.Names("*`Set?ing")
	if len(names) != 1 || names[0] != "Global`Setting" {
		t.Fatalf("unexpected names %v", names)
	}

	if _, err := tbl.Names("[x"); err == nil {
		t.Fatal("expected an error for a malformed pattern")
	}
}

func TestShort(t *testing.T) {
	tbl := New()

	plus, _ := tbl.Lookup(System + "Plus")
	x, _ := tbl.Lookup(Global + "x")
	shadowed, _ := tbl.Lookup(Global + "Plus")
	other, _ := tbl.Lookup("Other`y")

	tests := map[string]string{
		tbl.Short(plus):     "Plus",
		tbl.Short(x):        "x",
		tbl.Short(shadowed): "Global`Plus",
		tbl.Short(other):    "Other`y",
	}

	for got, want := range tests {
		if got != want {
			t.Errorf("expected %s; got %s", want, got)
		}
	}
}
