// Released under an MIT license. See LICENSE.

/*
Osmium is a term-rewriting kernel in the style of the Wolfram Language.
Everything is an expression and evaluation applies rules until nothing
changes:

	f[x_] := Plus[x, 1]
	f[2]
	area[circle[r_]] ^:= Times[3, r, r]
	SetAttributes[g, HoldAll]
	Names["Set*"]

Run without arguments on a terminal to get an interactive session.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/osmium-lang/osmium/internal/engine"
	"github.com/osmium-lang/osmium/internal/system/config"
	"github.com/osmium-lang/osmium/internal/system/history"
	"github.com/osmium-lang/osmium/internal/system/options"
	"github.com/osmium-lang/osmium/internal/ui"
)

func main() {
	options.Parse()

	cfg, err := config.Load(options.Config())
	if err != nil {
		fatal(err)
	}

	e := engine.New()

	cfg.Apply(e)

	if n := options.IterationLimit(); n > 0 {
		e.IterationLimit = n
	}

	if n := options.RecursionLimit(); n > 0 {
		e.RecursionLimit = n
	}

	history.Use(cfg.History)

	switch {
	case options.Command() != "":
		err = ui.New(e, "command", os.Stdout, false).Text(options.Command())
	case options.Script() != "":
		err = source(e, options.Script())
	case options.Interactive():
		err = ui.Run(ui.New(e, "input", os.Stdout, true))
	default:
		err = read(e, "stdin", os.Stdin, os.Stdout)
	}

	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "osmium: %v\n", err)
	os.Exit(1)
}

func read(e *engine.T, name string, r io.Reader, w io.Writer) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	return ui.New(e, name, w, false).Text(string(b))
}

func source(e *engine.T, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return read(e, path, f, os.Stdout)
}
