package engine

import (
	"testing"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/kernel"
	"github.com/osmium-lang/osmium/internal/common/struct/message"
	"github.com/osmium-lang/osmium/internal/common/type/sym"
	"github.com/osmium-lang/osmium/internal/reader"
)

type harness struct {
	*testing.T

	engine   *T
	messages []*message.T
}

func setup(t *testing.T) *harness {
	h := &harness{T: t, engine: New()}

	h.engine.Messages(message.Collector(&h.messages))

	return h
}

func (h *harness) read(text string) []cell.I {
	h.Helper()

	cs, err := reader.Read(h.engine.Table(), h.Name(), text)
	if err != nil {
		h.Fatalf("%q: %v", text, err)
	}

	return cs
}

// run evaluates every expression in text and returns the last result.
func (h *harness) run(text string) string {
	h.Helper()

	var last cell.I

	for _, c := range h.read(text) {
		last = h.engine.Evaluate(c)
	}

	if last == nil {
		h.Fatalf("%q: nothing to evaluate", text)
	}

	return h.engine.Format(last)
}

func (h *harness) expect(text, expected string) {
	h.Helper()

	if actual := h.run(text); actual != expected {
		h.Fatalf("%q: expected %s; got %s", text, expected, actual)
	}
}

func (h *harness) reported(id string) bool {
	for _, m := range h.messages {
		if m.ID() == id {
			return true
		}
	}

	return false
}

func TestAnd(t *testing.T) {
	h := setup(t)

	h.expect("And[True, x, True]", "x")
	h.expect("And[True, True]", "True")
	h.expect("And[]", "True")
	h.expect("And[a, False, b = 1]", "False")
	h.expect("b", "b")
	h.expect("And[a, b]", "And[a, b]")
}

func TestAppendAndApply(t *testing.T) {
	h := setup(t)

	h.expect("Append[f[a], b]", "f[a, b]")
	h.expect("Append[{1}, 2]", "{1, 2}")
	h.expect("Apply[g, f[a, b]]", "g[a, b]")
	h.expect("Apply[g][f[a]]", "g[a]")
	h.expect("Apply[g, 1]", "1")

	h.run("Append[1, 2]")

	if !h.reported("Append::normal") {
		t.Fatalf("expected Append::normal; got %v", h.messages)
	}
}

func TestArithmetic(t *testing.T) {
	h := setup(t)

	h.expect("Plus[1, 2]", "3")
	h.expect("Plus[1, x, 2]", "Plus[x, 3]")
	h.expect("Plus[x, 0]", "x")
	h.expect("Plus[x, y]", "Plus[x, y]")
	h.expect("Plus[x]", "x")
	h.expect("Plus[]", "0")
	h.expect("Plus[1, 2.5]", "3.5")
	h.expect("Times[2, 3, x]", "Times[x, 6]")
	h.expect("Times[x, 1]", "x")
	h.expect("Times[]", "1")
	h.expect("Times[-1, 5]", "-5")
	h.expect("-x", "Times[-1, x]")
	h.expect("Plus[1, Plus[x, 2]]", "Plus[x, 3]")
}

func TestAttributes(t *testing.T) {
	h := setup(t)

	h.expect("Attributes[SetDelayed]", "{HoldAll, Protected, SequenceHold}")
	h.expect("SetAttributes[f, {Flat, HoldFirst}]", "Null")
	h.expect("Attributes[f]", "{Flat, HoldFirst}")
	h.expect("ClearAttributes[f, Flat]", "Null")
	h.expect("Attributes[f]", "{HoldFirst}")

	h.run("SetAttributes[f, Bogus]")

	if !h.reported("Attributes::attnf") {
		t.Fatalf("expected Attributes::attnf; got %v", h.messages)
	}

	h.run("SetAttributes[Plus, HoldAll]")

	if !h.reported("SetAttributes::write") {
		t.Fatalf("expected SetAttributes::write; got %v", h.messages)
	}
}

func TestArityMessage(t *testing.T) {
	h := setup(t)

	h.expect("Set[a]", "Set[a]")

	if !h.reported("Set::argrx") {
		t.Fatalf("expected Set::argrx; got %v", h.messages)
	}

	h.expect("Head[a, b]", "Head[a, b]")

	if !h.reported("Head::argr") {
		t.Fatalf("expected Head::argr; got %v", h.messages)
	}

	h.expect("Apply[f, g[x], 1]", "Apply[f, g[x], 1]")

	if !h.reported("Apply::argt") {
		t.Fatalf("expected Apply::argt; got %v", h.messages)
	}
}

func TestClear(t *testing.T) {
	h := setup(t)

	h.run("a = 1\nf[x_] := x")
	h.expect("Clear[a, f]", "Null")
	h.expect("a", "a")
	h.expect("f[2]", "f[2]")

	h.run("b = 1")
	h.expect(`Clear["b"]`, "Null")
	h.expect("b", "b")

	h.run("Clear[Plus]")

	if !h.reported("Clear::wrsym") {
		t.Fatalf("expected Clear::wrsym; got %v", h.messages)
	}
}

func TestCondition(t *testing.T) {
	h := setup(t)

	h.run(`f[x_ /; SameQ[x, 1]] := "one"`)

	h.expect("f[1]", `"one"`)
	h.expect("f[2]", "f[2]")
}

func TestDownValueArity(t *testing.T) {
	h := setup(t)

	h.run("f[_] := x")

	h.expect("f[y]", "x")
	h.expect("f[y, z]", "f[y, z]")
	h.expect("f[]", "f[]")
}

func TestFlat(t *testing.T) {
	h := setup(t)

	h.run("SetAttributes[g, Flat]")

	h.expect("g[a, g[b, g[c]], d]", "g[a, b, c, d]")
	h.expect("k[a, k[b]]", "k[a, k[b]]")
}

func TestHeadAndLength(t *testing.T) {
	h := setup(t)

	h.expect("Head[1]", "Integer")
	h.expect("Head[1.5]", "Real")
	h.expect(`Head["s"]`, "String")
	h.expect("Head[x]", "Symbol")
	h.expect("Head[f[x]]", "f")
	h.expect("Head[f[x][y]]", "f[x]")
	h.expect("Length[f[a, b]]", "2")
	h.expect("Length[x]", "0")
}

func TestHold(t *testing.T) {
	h := setup(t)

	h.run("a = 1\nSetAttributes[k, HoldAll]")

	h.expect("k[a]", "k[a]")
	h.expect("j[a]", "j[1]")
	h.expect("Hold[a, Plus[1, 2]]", "Hold[a, Plus[1, 2]]")

	h.run("SetAttributes[first, HoldFirst]\nSetAttributes[rest, HoldRest]")

	h.expect("first[a, a]", "first[a, 1]")
	h.expect("rest[a, a]", "rest[1, a]")

	// Hold attributes come from the evaluated head, not the symbol the
	// expression's rules are attached to.
	h.expect("k[a][a]", "k[a][1]")
}

func TestIdempotence(t *testing.T) {
	h := setup(t)

	h.run("f[x_] := g[x]\na = 2")

	for _, text := range []string{
		"f[a]", "Plus[1, x]", "{a, f[b]}", `"s"`, "1.5", "Hold[a]", "a",
	} {
		c := h.read(text)[0]

		once := h.engine.Evaluate(c)
		twice := h.engine.Evaluate(once)

		if !once.Equal(twice) {
			t.Fatalf("%q: %s then %s", text, h.engine.Format(once), h.engine.Format(twice))
		}
	}
}

func TestIsMatch(t *testing.T) {
	h := setup(t)

	p := h.read("f[x_, x_]")[0]

	if !h.engine.IsMatch(p, h.read("f[1, 1]")[0]) {
		t.Fatal("f[1, 1] should match f[x_, x_]")
	}

	if h.engine.IsMatch(p, h.read("f[1, 2]")[0]) {
		t.Fatal("f[1, 2] should not match f[x_, x_]")
	}

	h.expect("MatchQ[f[a, b, c], f[___, c]]", "True")
	h.expect("MatchQ[f[], f[__]]", "False")
}

func TestIterationLimit(t *testing.T) {
	h := setup(t)

	h.engine.IterationLimit = 20

	h.run("a := b\nb := a")
	h.run("a")

	if !h.reported("$IterationLimit::itlim") {
		t.Fatalf("expected $IterationLimit::itlim; got %v", h.messages)
	}

	h.engine.IterationLimit = 5

	h.run("step[n_] := step[Plus[n, 1]]")

	// The last value reached is returned as is.
	h.expect("step[0]", "step[Plus[4, 1]]")
}

func TestLastArgument(t *testing.T) {
	h := setup(t)

	h.run("f[___, x_] := x")

	h.expect("f[a, b, c]", "c")
	h.expect("f[a]", "a")
	h.expect("f[]", "f[]")
}

func TestMessageSuppression(t *testing.T) {
	h := setup(t)

	h.run("Clear[Plus, Plus, Plus, Plus, Plus]")

	n := 0

	for _, m := range h.messages {
		if m.ID() == "Clear::wrsym" {
			n++
		}
	}

	if n != 3 || !h.reported("General::stop") {
		t.Fatalf("expected 3 copies and General::stop; got %v", h.messages)
	}

	h.messages = nil

	h.run("Clear[Plus]")

	if !h.reported("Clear::wrsym") {
		t.Fatalf("expected Clear::wrsym after a new evaluation; got %v", h.messages)
	}
}

func TestNames(t *testing.T) {
	h := setup(t)

	h.expect(`Names["SetA*"]`, `{"SetAttributes"}`)
	h.expect(`Names["Set*"]`, `{"Set", "SetAttributes", "SetDelayed"}`)

	h.run("myVariable = 1")

	h.expect(`Names["my*"]`, `{"myVariable"}`)
	h.expect(`Names["Global`+"`"+`my*"]`, `{"myVariable"}`)
}

func TestOwnValues(t *testing.T) {
	h := setup(t)

	h.run("b = x\na = b\nb = y")
	h.expect("a", "x")

	h.run("d := x\nc := d\nd := y")
	h.expect("c", "y")
}

func TestProtected(t *testing.T) {
	h := setup(t)

	h.expect("Plus = 1", "1")
	h.expect("Plus[1, 2]", "3")

	if !h.reported("Set::wrsym") {
		t.Fatalf("expected Set::wrsym; got %v", h.messages)
	}

	h.expect("Protect[p, q]", `{"p", "q"}`)
	h.expect("Protect[p]", "{}")

	h.messages = nil

	h.run("p = 1")

	if !h.reported("Set::wrsym") {
		t.Fatalf("expected Set::wrsym; got %v", h.messages)
	}

	h.expect("Unprotect[p]", `{"p"}`)
	h.expect("p = 1", "1")
	h.expect("p", "1")
}

func TestRecursionLimit(t *testing.T) {
	h := setup(t)

	h.engine.RecursionLimit = 30

	h.run("g[n_] := h[g[n]]")
	h.run("g[1]")

	if !h.reported("$RecursionLimit::reclim") {
		t.Fatalf("expected $RecursionLimit::reclim; got %v", h.messages)
	}
}

func TestRepeatedNames(t *testing.T) {
	h := setup(t)

	h.run(`f[x_, x_] := "same"`)

	h.expect("f[1, 1]", `"same"`)
	h.expect("f[1, 2]", "f[1, 2]")
}

func TestSameQ(t *testing.T) {
	h := setup(t)

	h.expect("SameQ[f[a], f[a]]", "True")
	h.expect("SameQ[1, 1.]", "False")
	h.expect("SameQ[a, a, b]", "False")
	h.expect("SameQ[]", "True")
}

func TestSequence(t *testing.T) {
	h := setup(t)

	h.expect("f[Sequence[a, b], c]", "f[a, b, c]")
	h.expect("f[Sequence[]]", "f[]")
	h.expect("HoldComplete[Sequence[a]]", "HoldComplete[Sequence[a]]")
	h.expect("f[Sequence[Sequence[a], b], c]", "f[a, b, c]")

	h.run("SetAttributes[held, SequenceHold]")

	h.expect("held[Sequence[a, b]]", "held[Sequence[a, b]]")
	h.expect("Length[held[Sequence[a, b], c]]", "2")

	h.run("g[x__] := {x}")

	h.expect("g[1, 2, 3]", "{1, 2, 3}")

	h.run("k[x__] := j[x]")

	h.expect("k[1, 2]", "j[1, 2]")
}

func TestSetDelayedOnExpression(t *testing.T) {
	h := setup(t)

	h.expect("f[x_] := g[x]", "Null")
	h.expect("f[1]", "g[1]")
	h.expect("f[x_] := k[x]", "Null")
	h.expect("f[1]", "k[1]")

	f := h.engine.Symbol("f")
	if n := len(f.Rules(sym.Down)); n != 1 {
		t.Fatalf("expected the rule to be replaced; got %d rules", n)
	}

	h.run("1 = 2")

	if !h.reported("Set::setraw") {
		t.Fatalf("expected Set::setraw; got %v", h.messages)
	}
}

func TestUpValues(t *testing.T) {
	h := setup(t)

	p1 := h.engine.Symbol("p1")
	p1.SetCode(sym.Up, func(k kernel.I, c cell.I) (cell.I, bool) {
		return h.engine.Str("hook"), false
	})

	h.run(`area[x_, p2] ^:= "rule"`)

	if n := len(h.engine.Symbol("p2").Rules(sym.Up)); n != 1 {
		t.Fatalf("expected an up-value on p2; got %d", n)
	}

	h.expect("area[p1, p2]", `"rule"`)
	h.expect("area[p1, q]", `"hook"`)
	h.expect("area[q, p2]", `"rule"`)

	h.run("circle[r] ^= 3")

	h.expect("circle[r]", "3")
	h.expect("circle[s]", "circle[s]")

	h.run("Length[UpSet[1, 2]]")

	if !h.reported("UpSet::nosym") {
		t.Fatalf("expected UpSet::nosym; got %v", h.messages)
	}
}
