package sym

import (
	"testing"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/type/str"
)

func TestAttributes(t *testing.T) {
	s := New("Global`f")

	s.SetAttributes(HoldAll | Protected)

	if !s.Has(HoldAll) || !s.Has(HoldAll|Protected) || s.Has(Flat) {
		t.Fatalf("unexpected attributes %s", s.Attributes())
	}

	if got := s.Attributes().String(); got != "{HoldAll, Protected}" {
		t.Fatalf("unexpected attribute names %s", got)
	}

	if a, ok := Attribute("SequenceHold"); !ok || a != SequenceHold {
		t.Fatal("expected SequenceHold")
	}

	if _, ok := Attribute("Bogus"); ok {
		t.Fatal("Bogus is not an attribute")
	}
}

func TestDefine(t *testing.T) {
	s := New("Global`f")

	rule := func(lhs, value string) Rule {
		return Rule{LHS: str.New(lhs), Value: str.New(value)}
	}

	s.Define(Down, rule("a", "1"))
	s.Define(Down, rule("b", "2"))
	s.Define(Down, rule("a", "3"))

	rules := s.Rules(Down)
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules; got %d", len(rules))
	}

	if !rules[0].Value.Equal(str.New("3")) || !rules[1].LHS.Equal(str.New("b")) {
		t.Fatalf("unexpected rules %v", rules)
	}

	if len(s.Rules(Own)) != 0 || len(s.Rules(Up)) != 0 {
		t.Fatal("rules of one class should not affect another")
	}

	s.SetAttributes(Flat)
	s.Clear()

	if len(s.Rules(Down)) != 0 || !s.Has(Flat) {
		t.Fatal("Clear should remove rules but keep attributes")
	}
}

func TestNames(t *testing.T) {
	s := New("a`b`c")

	if s.Context() != "a`b`" || s.Short() != "c" || s.String() != "a`b`c" {
		t.Fatalf("unexpected name parts for %s", s)
	}

	var c cell.I = s

	if !c.Equal(s) || c.Equal(New("a`b`c")) {
		t.Fatal("symbols should be compared by identity")
	}
}
