// Released under an MIT license. See LICENSE.

// Package kernel defines what native code can ask of the evaluator.
package kernel

import (
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/pattern"
	"github.com/osmium-lang/osmium/internal/common/struct/message"
)

// I (kernel) is the engine state handed to native code.
type I interface {
	Compile(c cell.I) pattern.I
	Evaluate(c cell.I) cell.I
	Format(c cell.I) string
	Message(m *message.T)
}

// Code is a native rewrite hook. It is consulted only after every rule in
// the same class failed to match. A nil result means the hook does not
// apply; otherwise again reports whether the result needs another pass.
type Code func(k I, c cell.I) (result cell.I, again bool)
