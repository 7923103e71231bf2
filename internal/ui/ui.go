// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for osmium.
package ui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/osmium-lang/osmium/internal/common"
	"github.com/osmium-lang/osmium/internal/common/interface/cell"
	"github.com/osmium-lang/osmium/internal/common/struct/message"
	"github.com/osmium-lang/osmium/internal/common/type/sym"
	"github.com/osmium-lang/osmium/internal/engine"
	"github.com/osmium-lang/osmium/internal/reader"
	"github.com/osmium-lang/osmium/internal/system/history"
	"github.com/peterh/liner"
)

// T (ui) reads input a line at a time, evaluates each complete expression
// and prints the result.
type T struct {
	count    int
	engine   *engine.T
	numbered bool
	out      io.Writer
	reader   *reader.T
}

type ui = T

// New creates a new ui that prints results to out. A numbered ui labels
// inputs and outputs In[n] and Out[n].
func New(e *engine.T, name string, out io.Writer, numbered bool) *ui {
	return &ui{
		engine:   e,
		numbered: numbered,
		out:      out,
		reader:   reader.New(e.Table(), name),
	}
}

// Abort discards any partially read expression.
func (u *ui) Abort() {
	u.reader.Reset()
}

// Finish reports an error if the input ended inside an expression.
func (u *ui) Finish() error {
	if !u.reader.Pending() {
		return nil
	}

	u.reader.Reset()

	return reader.ErrIncomplete
}

// Line reads one line of input and evaluates the expressions it completes.
func (u *ui) Line(line string) {
	cs, err := u.reader.Scan(line)
	if err != nil {
		u.engine.Message(message.New("Syntax", "sntx", "%s", err.Error()))

		return
	}

	for _, c := range cs {
		u.evaluate(c)
	}
}

// Prompt returns the prompt for the next line.
func (u *ui) Prompt() string {
	if !u.numbered {
		return ""
	}

	p := fmt.Sprintf("In[%d]:= ", u.count+1)
	if u.reader.Pending() {
		return strings.Repeat(" ", len(p))
	}

	return p
}

// Text reads every line in text.
func (u *ui) Text(text string) error {
	for _, line := range strings.Split(text, "\n") {
		u.Line(line)
	}

	return u.Finish()
}

func (u *ui) complete(line string, pos int) (head string, cs []string, tail string) {
	rs := []rune(line)
	head, tail = string(rs[:pos]), string(rs[pos:])

	i := strings.LastIndexFunc(head, func(r rune) bool {
		return !(r == '$' || r == '`' || unicode.IsLetter(r) || unicode.IsDigit(r))
	})

	if i >= 0 {
		_, w := utf8.DecodeRuneInString(head[i:])
		i += w
	} else {
		i = 0
	}

	prefix := head[i:]
	if prefix == "" {
		return head, nil, tail
	}

	head = head[:i]

	t := u.engine.Table()

	contexts := []string{""}
	if !strings.Contains(prefix, sym.Separator) {
		contexts = append([]string{t.Context}, t.Path...)
	}

	seen := map[string]bool{}

	for _, context := range contexts {
		names, err := t.Names(context + prefix + "*")
		if err != nil {
			return head + prefix, nil, tail
		}

		for _, name := range names {
			name = strings.TrimPrefix(name, context)
			if !seen[name] {
				seen[name] = true
				cs = append(cs, name)
			}
		}
	}

	return head, cs, tail
}

func (u *ui) evaluate(c cell.I) {
	u.count++

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		u.engine.Message(message.New("General", "panic", "%s", common.Error(r)))
	}()

	v := u.engine.Evaluate(c)
	if v == cell.I(u.engine.Symbols().Null) {
		return
	}

	if u.numbered {
		fmt.Fprintf(u.out, "Out[%d]= %s\n\n", u.count, u.engine.Format(v))
	} else {
		fmt.Fprintln(u.out, u.engine.Format(v))
	}
}

// restore loads the history file with read. A missing file is not an error.
func (u *ui) restore(read func(r io.Reader) (int, error)) {
	err := history.Load(read)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return
	}

	u.engine.Message(message.New(
		"General", "hist", "Cannot read history from %s: %s.",
		history.Path(), err.Error(),
	))
}

// Run reads lines with a line editor until end of input. History is loaded
// before and saved after. The terminal is in cooked mode while evaluating.
func Run(u *ui) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(u.complete)

	u.restore(cli.ReadHistory)

	for {
		if err := uncooked.ApplyMode(); err != nil {
			return err
		}

		line, err := cli.Prompt(u.Prompt())

		if merr := cooked.ApplyMode(); merr != nil {
			return merr
		}

		switch err {
		case nil:
			if strings.TrimSpace(line) != "" {
				cli.AppendHistory(line)
			}
		case liner.ErrPromptAborted:
			u.Abort()

			continue
		case io.EOF:
			fmt.Fprintln(u.out)

			return history.Save(cli.WriteHistory)
		default:
			return err
		}

		u.Line(line)
	}
}
