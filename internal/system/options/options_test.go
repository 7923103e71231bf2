package options

import (
	"testing"

	"github.com/docopt/docopt-go"
)

func parsed(t *testing.T, terminal bool, argv ...string) {
	t.Helper()

	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	// A nil argv makes docopt read os.Args.
	if err := parse(p, append([]string{}, argv...), terminal); err != nil {
		t.Fatalf("%v: %v", argv, err)
	}
}

func TestCommand(t *testing.T) {
	parsed(t, true, "-c", "Plus[1, 2]")

	if Command() != "Plus[1, 2]" {
		t.Fatalf("expected the command; got %q", Command())
	}

	if Interactive() {
		t.Fatal("a command should not be interactive")
	}
}

func TestInteractive(t *testing.T) {
	parsed(t, true)

	if !Interactive() {
		t.Fatal("a terminal with no script should be interactive")
	}

	parsed(t, true, "-i")

	if Interactive() {
		t.Fatal("-i should invert interactive mode")
	}

	parsed(t, false, "-s")

	if Interactive() {
		t.Fatal("piped input should not be interactive")
	}
}

func TestLimits(t *testing.T) {
	parsed(t, false, "--iteration-limit=100", "--recursion-limit", "50", "--config", "osmium.yaml", "x.m")

	if IterationLimit() != 100 || RecursionLimit() != 50 {
		t.Fatalf("expected limits 100 and 50; got %d and %d", IterationLimit(), RecursionLimit())
	}

	if Config() != "osmium.yaml" || Script() != "x.m" {
		t.Fatalf("expected config and script; got %q and %q", Config(), Script())
	}

	parsed(t, false)

	if IterationLimit() != 0 || RecursionLimit() != 0 {
		t.Fatal("limits should reset when not given")
	}
}

func TestNoArguments(t *testing.T) {
	parsed(t, false)

	if Command() != "" || Script() != "" || Config() != "" {
		t.Fatalf("expected no command, script or config; got %q, %q and %q", Command(), Script(), Config())
	}
}
