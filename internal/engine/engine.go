// Released under an MIT license. See LICENSE.

// Package engine rewrites osmium values to their normal form.
package engine

import (
	"os"
	"strings"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/kernel"
	"github.com/osmium-lang/osmium/internal/common/interface/literal"
	"github.com/osmium-lang/osmium/internal/common/interface/pattern"
	"github.com/osmium-lang/osmium/internal/common/struct/capture"
	"github.com/osmium-lang/osmium/internal/common/struct/message"
	"github.com/osmium-lang/osmium/internal/common/struct/table"
	"github.com/osmium-lang/osmium/internal/common/type/expr"
	"github.com/osmium-lang/osmium/internal/common/type/num"
	"github.com/osmium-lang/osmium/internal/common/type/str"
	"github.com/osmium-lang/osmium/internal/common/type/sym"
	"github.com/osmium-lang/osmium/internal/engine/boot"
	"github.com/osmium-lang/osmium/internal/engine/commands"
	compiler "github.com/osmium-lang/osmium/internal/engine/pattern"
	"github.com/osmium-lang/osmium/internal/engine/subst"
	"github.com/osmium-lang/osmium/internal/engine/symbols"
	"github.com/osmium-lang/osmium/internal/reader"
)

// Default limits.
const (
	IterationLimit = 4096
	RecursionLimit = 1024
)

// How many copies of one message are reported per top-level evaluation.
const repeats = 3

// T (engine) holds the state of an osmium kernel: its symbol table and
// the machinery for matching and rewriting.
type T struct {
	IterationLimit int // Passes allowed for a single value.
	RecursionLimit int // Nested evaluations allowed.

	compiler *compiler.Compiler
	depth    int
	reported map[string]int
	sink     message.Sink
	subst    *subst.T
	symbols  *symbols.T
	table    *table.T
}

type engine = T

// New creates a kernel with the System` symbols defined and protected.
func New() *engine {
	t := table.New()
	s := symbols.New(t)

	e := &engine{
		IterationLimit: IterationLimit,
		RecursionLimit: RecursionLimit,

		reported: map[string]int{},
		sink:     message.Writer(os.Stderr),
		subst:    subst.New(s.Sequence),
		symbols:  s,
		table:    t,
	}

	e.compiler = compiler.NewCompiler(compiler.Forms{
		Blank:             s.Blank,
		BlankNullSequence: s.BlankNullSequence,
		BlankSequence:     s.BlankSequence,
		Condition:         s.Condition,
		Pattern:           s.Pattern,
	}, s.HeadOf, e.test)

	commands.Register(s, t)

	cs, err := reader.Read(t, "boot", boot.Script())
	if err != nil {
		panic("boot: " + err.Error())
	}

	for _, c := range cs {
		e.Evaluate(c)
	}

	names, _ := t.Names(table.System + "*")
	for _, name := range names {
		if p, _ := t.Find(name); p != nil {
			p.SetAttributes(p.Attributes() | sym.Protected)
		}
	}

	return e
}

// Compile returns the compiled form of the pattern p.
func (e *engine) Compile(p cell.I) pattern.I {
	return e.compiler.Compile(p)
}

// Expr creates the expression h[ps...].
func (e *engine) Expr(h cell.I, ps ...cell.I) *expr.T {
	return expr.New(h, ps...)
}

// Format returns the text of c with symbols shortened where the current
// context and path allow, and lists written with braces.
func (e *engine) Format(c cell.I) string {
	switch t := c.(type) {
	case *sym.T:
		return e.table.Short(t)
	case *expr.T:
		parts := make([]string, t.Len())
		for i, p := range t.Parts() {
			parts[i] = e.Format(p)
		}

		if t.Head() == cell.I(e.symbols.List) {
			return "{" + strings.Join(parts, ", ") + "}"
		}

		return e.Format(t.Head()) + "[" + strings.Join(parts, ", ") + "]"
	case literal.I:
		return t.Literal()
	}

	return c.Name()
}

// Int creates an integer.
func (e *engine) Int(i int64) cell.I {
	return num.Int(i)
}

// IsMatch reports whether candidate matches pattern p.
func (e *engine) IsMatch(p, candidate cell.I) bool {
	_, ok := pattern.First(e.Compile(p), candidate, nil)

	return ok
}

// Message reports m to the sink. Repeats of the same message during a
// top-level evaluation are cut off with General::stop.
func (e *engine) Message(m *message.T) {
	id := m.ID()

	e.reported[id]++

	switch n := e.reported[id]; {
	case n < repeats:
		e.sink(m)
	case n == repeats:
		e.sink(m)
		e.sink(message.New(
			"General", "stop",
			"Further output of %s will be suppressed during this calculation.",
			id,
		))
	}
}

// Messages sets the sink messages are delivered to.
func (e *engine) Messages(sink message.Sink) {
	e.sink = sink
}

// Real creates a machine real.
func (e *engine) Real(f float64) cell.I {
	return num.Float(f)
}

// Resolve returns the symbol that name refers to, creating it in the
// current context if it does not exist.
func (e *engine) Resolve(name string) (*sym.T, error) {
	return e.table.Resolve(name)
}

// Set evaluates lhs = rhs.
func (e *engine) Set(lhs, rhs cell.I) cell.I {
	return e.Evaluate(e.Expr(e.symbols.Set, lhs, rhs))
}

// SetDelayed evaluates lhs := rhs.
func (e *engine) SetDelayed(lhs, rhs cell.I) cell.I {
	return e.Evaluate(e.Expr(e.symbols.SetDelayed, lhs, rhs))
}

// Str creates a string.
func (e *engine) Str(s string) cell.I {
	return str.New(s)
}

// Symbol is like Resolve but panics if name is not a valid symbol name.
func (e *engine) Symbol(name string) *sym.T {
	s, err := e.Resolve(name)
	if err != nil {
		panic(err)
	}

	return s
}

// Symbols returns the well-known System` symbols.
func (e *engine) Symbols() *symbols.T {
	return e.symbols
}

// Table returns the kernel's symbol table.
func (e *engine) Table() *table.T {
	return e.table
}

func (e *engine) test(cond cell.I, b *capture.T) bool {
	return e.Evaluate(e.subst.Apply(cond, b)) == cell.I(e.symbols.True)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t engine

	// The engine type is what native code sees.
	_ = kernel.I(&t)
}
