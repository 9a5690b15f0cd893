package readycli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintDocumentationStub(t *testing.T) {
	cmd := NewCommand("stub", "Nothing here", "stub").Build(nil)

	var out bytes.Buffer
	cause := cmd.PrintDocumentation(&out)
	if cause != ExitHelp {
		t.Fatalf("cause = %v, want help", cause)
	}
	want := "No documentation available for this command.\n"
	if out.String() != want {
		t.Errorf("stub output = %q, want %q", out.String(), want)
	}
}

func TestPrintDocumentationSections(t *testing.T) {
	cmd := ForCLI("copy", "Copies things").
		RequiredArgument("src", "Source path").
		RequiredArgument("dst", "Destination path").
		Option(NewOption("mode", "Transfer mode").
			Alias("m").
			Parameter("value", "mode name", "fast").
			Build()).
		Build(func(ctx *CommandContext) error { return nil })

	var out bytes.Buffer
	cmd.PrintDocumentation(&out)
	text := out.String()

	for _, want := range []string{
		"Command:\n\tcopy - Copies things\n",
		"Usage:\n\tcopy <src> <dst> [--mode <value>]\n",
		"Required arguments:\n\t(1)\t<src>:  Source path\n\t(2)\t<dst>:  Destination path\n",
		"Documentation options:\n\t--help, -h, ?:  prints this documentation\n",
		"Options:\n\t--mode, -m:  Transfer mode\n",
		"\t\tParameters:\n\t\t(1)\tvalue:  mode name (default value: \"fast\")\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("documentation missing section:\n%q\nfull output:\n%s", want, text)
		}
	}
}

func TestPrintDocumentationDedupsAliasedOptions(t *testing.T) {
	cmd := NewCommand("c", "", "c").
		Flag("verbose", "Talk more").
		Option(NewOption("quiet", "Talk less").Alias("q").Build()).
		Build(func(ctx *CommandContext) error { return nil })

	var out bytes.Buffer
	cmd.PrintDocumentation(&out)
	text := out.String()

	// an option reachable under two keys must render exactly once
	if got := strings.Count(text, "Talk less"); got != 1 {
		t.Errorf("aliased option rendered %d times, want 1\n%s", got, text)
	}
	// options section sorted by canonical name; anchor past the usage line,
	// which also mentions every option
	section := text[strings.Index(text, "Options:"):]
	qi := strings.Index(section, "\t--quiet, -q:  Talk less\n")
	vi := strings.Index(section, "\t--verbose:  Talk more\n")
	if qi < 0 || vi < 0 || qi > vi {
		t.Errorf("options out of order (quiet at %d, verbose at %d)\n%s", qi, vi, text)
	}
}

func TestPrintDocumentationSubCommands(t *testing.T) {
	root := NewCommand("git", "Version control", "git").
		SubCommand(ForCLI("push", "Uploads refs").
			RequiredArgument("remote", "Target remote").
			Build(func(ctx *CommandContext) error { return nil })).
		SubCommand(NewCommand("fetch", "Downloads refs", "fetch").
			Build(func(ctx *CommandContext) error { return nil })).
		Build(nil)

	var out bytes.Buffer
	cause := root.PrintDocumentation(&out)
	if cause != ExitHelp {
		t.Fatalf("cause = %v, want help", cause)
	}
	text := out.String()

	if !strings.Contains(text, "\tgit {<sub-command> <sub-command arguments ...>}\n") {
		t.Errorf("missing sub-command usage line:\n%s", text)
	}
	// sorted one-line summaries, without the subs' own arguments
	fi, pi := strings.Index(text, "\tfetch: Downloads refs"), strings.Index(text, "\tpush: Uploads refs")
	if fi < 0 || pi < 0 || fi > pi {
		t.Errorf("sub-command summaries missing or unsorted (fetch at %d, push at %d)\n%s", fi, pi, text)
	}
	if strings.Contains(text, "<remote>") {
		t.Errorf("sub-command summary leaks its arguments:\n%s", text)
	}
	if !strings.Contains(text, "(type: --help or -h or ? to get its documentation)") {
		t.Errorf("summary for push does not point at its documentation aliases:\n%s", text)
	}
}

func TestFullUsageWalksParentChain(t *testing.T) {
	leaf := ForCLI("leaf", "").Build(func(ctx *CommandContext) error { return nil })
	mid := NewCommand("mid", "", "mid --safe").SubCommand(leaf).Build(nil)
	NewCommand("root", "", "root").SubCommand(mid).Build(nil)

	if got := leaf.fullUsage(); got != "root mid --safe leaf" {
		t.Errorf("fullUsage() = %q, want %q", got, "root mid --safe leaf")
	}
}

func TestFullUsageSkipsEmptyFragments(t *testing.T) {
	// ForMain commands carry no usage fragment of their own
	leaf := ForCLI("sub", "").Build(func(ctx *CommandContext) error { return nil })
	ForMain("tool", "").SubCommand(leaf).Build(nil)

	if got := leaf.fullUsage(); got != "sub" {
		t.Errorf("fullUsage() = %q, want %q", got, "sub")
	}
}
