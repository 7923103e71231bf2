// Released under an MIT license. See LICENSE.

// Package options parses osmium's command line.
package options

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "osmium 0.1.0"

//nolint:gochecknoglobals
var (
	command        string
	config         string
	interactive    bool
	iterationLimit int
	recursionLimit int
	script         string
	usage          = `osmium

Usage:
  osmium [options] SCRIPT
  osmium [options] -c EXPRESSION
  osmium [options] [-i] [-s]
  osmium -h
  osmium -v

Arguments:
  SCRIPT  Path to a file of osmium expressions.

Options:
  -c, --command=EXPRESSION  Evaluate EXPRESSION and print the result.
  --config=FILE             Read settings from FILE.
  --iteration-limit=N       Rewrite passes allowed for a single value.
  --recursion-limit=N       Nested evaluations allowed.
  -i, --interactive         Invert interactive mode.
  -s, --stdin               Read expressions from stdin.
  -h, --help                Display this help.
  -v, --version             Print osmium version.

If osmium's stdin is a TTY, and osmium was invoked with no SCRIPT or
EXPRESSION, input is read interactively with line editing and history.
`
)

// Command returns the expression passed with -c, if any.
func Command() string {
	return command
}

// Config returns the path of the settings file passed with --config, if any.
func Config() string {
	return config
}

// Interactive returns true if input should be read with a line editor.
func Interactive() bool {
	return interactive
}

// IterationLimit returns the iteration limit passed on the command line or 0.
func IterationLimit() int {
	return iterationLimit
}

// Parse parses os.Args, printing help and exiting on bad input.
func Parse() {
	err := parse(docopt.DefaultParser, os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
}

// RecursionLimit returns the recursion limit passed on the command line or 0.
func RecursionLimit() int {
	return recursionLimit
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}

func parse(p *docopt.Parser, argv []string, terminal bool) error {
	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	command, _ = opts.String("--command")
	config, _ = opts.String("--config")
	script, _ = opts.String("SCRIPT")

	iterationLimit, recursionLimit = 0, 0

	if _, ok := opts["--iteration-limit"].(string); ok {
		if iterationLimit, err = opts.Int("--iteration-limit"); err != nil {
			return err
		}
	}

	if _, ok := opts["--recursion-limit"].(string); ok {
		if recursionLimit, err = opts.Int("--recursion-limit"); err != nil {
			return err
		}
	}

	interactive = command == "" && script == "" && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	return nil
}
