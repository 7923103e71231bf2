// Released under an MIT license. See LICENSE.

package commands

import (
	"sort"
	"strings"

	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/interface/kernel"
	"github.com/osmium-lang/osmium/internal/common/type/expr"
	"github.com/osmium-lang/osmium/internal/common/type/str"
	"github.com/osmium-lang/osmium/internal/common/type/sym"
)

func (n *native) head(_ kernel.I, e *expr.T) (cell.I, bool) {
	return n.symbols.HeadOf(e.Part(0)), false
}

// names lists the symbols whose names match a glob. An unqualified glob
// is tried in the current context and every context on the path.
func (n *native) names(k kernel.I, e *expr.T) (cell.I, bool) {
	glob := "*"

	if e.Len() == 1 {
		s, ok := text(e.Part(0))
		if !ok {
			n.message(k, n.symbols.Names, "string", "String expected at position 1 in %s.", k.Format(e))

			return nil, false
		}

		glob = s
	}

	if _, err := n.table.Names(glob); err != nil {
		n.message(k, n.symbols.Names, "patv", "%s is not a valid string pattern.", glob)

		return nil, false
	}

	ss := n.lookup(glob)

	names := make([]string, len(ss))
	for i, s := range ss {
		names[i] = n.table.Short(s)
	}

	sort.Strings(names)

	parts := make([]cell.I, len(names))
	for i, name := range names {
		parts[i] = str.New(name)
	}

	return n.symbols.MakeList(parts...), false
}

// lookup returns the symbols whose names match glob, in name order.
// Symbols are never created.
func (n *native) lookup(glob string) []*sym.T {
	contexts := []string{""}

	if !strings.Contains(glob, sym.Separator) {
		contexts = append([]string{n.table.Context}, n.table.Path...)
	}

	seen := map[*sym.T]bool{}

	var ss []*sym.T

	for _, context := range contexts {
		names, err := n.table.Names(context + glob)
		if err != nil {
			return nil
		}

		for _, name := range names {
			s, _ := n.table.Find(name)
			if s != nil && !seen[s] {
				seen[s] = true
				ss = append(ss, s)
			}
		}
	}

	return ss
}

func text(c cell.I) (string, bool) {
	if s, ok := c.(*str.T); ok {
		return s.String(), true
	}

	return "", false
}
