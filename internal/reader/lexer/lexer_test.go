package lexer

import (
	"errors"
	"testing"

	"github.com/osmium-lang/osmium/internal/common/struct/token"
)

type expected struct {
	class token.Class
	value string
}

func scan(t *testing.T, text string, tokens ...expected) {
	t.Helper()

	actual, err := New(t.Name(), text).Tokens()
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", text, err)
	}

	tokens = append(tokens, expected{token.EOF, ""})

	if len(actual) != len(tokens) {
		t.Fatalf("%q: expected %d tokens; got %v", text, len(tokens), actual)
	}

	for i, e := range tokens {
		if a := actual[i]; !a.Is(e.class) || a.Value() != e.value {
			t.Fatalf("%q: token %d: expected %s %q; got %v", text, i, e.class, e.value, a)
		}
	}
}

func TestAssignments(t *testing.T) {
	for op, class := range map[string]token.Class{
		"=":   token.Set,
		":=":  token.SetDelayed,
		"^=":  token.UpSet,
		"^:=": token.UpSetDelayed,
	} {
		scan(t, "a "+op+" b",
			expected{token.Symbol, "a"},
			expected{class, op},
			expected{token.Symbol, "b"},
		)
	}
}

func TestBlanks(t *testing.T) {
	for _, s := range []string{"_", "__", "___", "x_", "x_h", "x___Integer", "_System`List"} {
		scan(t, s, expected{token.Blank, s})
	}
}

func TestComments(t *testing.T) {
	scan(t, "a (* one (* two *) *) b",
		expected{token.Symbol, "a"},
		expected{token.Symbol, "b"},
	)
}

func TestCondition(t *testing.T) {
	scan(t, "x_ /; t",
		expected{token.Blank, "x_"},
		expected{token.Condition, "/;"},
		expected{token.Symbol, "t"},
	)
}

func TestExpression(t *testing.T) {
	scan(t, "f[x, {1, -2}]\n",
		expected{token.Symbol, "f"},
		expected{'[', "["},
		expected{token.Symbol, "x"},
		expected{',', ","},
		expected{'{', "{"},
		expected{token.Number, "1"},
		expected{',', ","},
		expected{'-', "-"},
		expected{token.Number, "2"},
		expected{'}', "}"},
		expected{']', "]"},
		expected{token.Newline, "\n"},
	)
}

func TestIncomplete(t *testing.T) {
	for _, s := range []string{`"open`, "(* open", `"\`} {
		if _, err := New(t.Name(), s).Tokens(); !errors.Is(err, ErrIncomplete) {
			t.Fatalf("%q: expected ErrIncomplete; got %v", s, err)
		}
	}
}

func TestNumbers(t *testing.T) {
	scan(t, "12 3.5 .25 1.5*^3 2*^-2",
		expected{token.Number, "12"},
		expected{token.Number, "3.5"},
		expected{token.Number, ".25"},
		expected{token.Number, "1.5e3"},
		expected{token.Number, "2e-2"},
	)
}

func TestStrings(t *testing.T) {
	scan(t, `"a \"quoted\" word"`, expected{token.String, `"a \"quoted\" word"`})
}

func TestSymbols(t *testing.T) {
	scan(t, "x $x System`Plus `local a1",
		expected{token.Symbol, "x"},
		expected{token.Symbol, "$x"},
		expected{token.Symbol, "System`Plus"},
		expected{token.Symbol, "`local"},
		expected{token.Symbol, "a1"},
	)
}

func TestUnexpected(t *testing.T) {
	for _, s := range []string{"a : b", "a / b", "a ^ b", "#"} {
		_, err := New(t.Name(), s).Tokens()
		if err == nil || errors.Is(err, ErrIncomplete) {
			t.Fatalf("%q: expected a syntax error; got %v", s, err)
		}
	}
}
