package readycli

import (
	"strings"
	"testing"
)

func mustPanic(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("panic value = %v (%T), want string", r, r)
		}
		if !strings.Contains(msg, substr) {
			t.Fatalf("panic message %q does not contain %q", msg, substr)
		}
	}()
	fn()
}

func TestBuilderProducesCommand(t *testing.T) {
	cmd := NewCommand("copy", "Copies a file", "copy").
		RequiredArgument("source", "The source file").
		RequiredArgument("destination", "The destination file").
		Flag("overwrite", "Replace the destination").
		Build(func(ctx *CommandContext) error { return nil })

	if cmd.Name() != "copy" {
		t.Errorf("Name() = %q, want %q", cmd.Name(), "copy")
	}
	args := cmd.RequiredArguments()
	if len(args) != 2 || args[0].Name() != "source" || args[1].Name() != "destination" {
		t.Errorf("RequiredArguments() = %v, want source then destination", args)
	}
	if _, ok := cmd.Options()["--overwrite"]; !ok {
		t.Error("Options() missing --overwrite key")
	}
}

func TestBuilderIsOneShot(t *testing.T) {
	b := NewCommand("one", "desc", "one")
	b.Build(nil)

	mustPanic(t, "builder already used", func() { b.Build(nil) })
	mustPanic(t, "builder already used", func() { b.RequiredArgument("x", "desc") })
	mustPanic(t, "builder already used", func() { b.Flag("f", "desc") })
}

func TestBuilderNameCollisions(t *testing.T) {
	// required argument vs required argument
	mustPanic(t, "already assigned", func() {
		NewCommand("c", "", "c").
			RequiredArgument("dup", "").
			RequiredArgument("dup", "")
	})

	// option key vs option key (via alias)
	mustPanic(t, "already assigned", func() {
		NewCommand("c", "", "c").
			Option(NewOption("long", "").Alias("x").Build()).
			Option(NewOption("other", "").Alias("x").Build())
	})

	// documentation alias vs option key: doc aliases live in the same
	// namespace as the prefixed option keys
	mustPanic(t, "already assigned", func() {
		NewCommand("c", "", "c", "--help").
			Option(NewOption("help", "").Build())
	})

	// sub-command vs sub-command
	mustPanic(t, "already assigned", func() {
		NewCommand("c", "", "c").
			SubCommand(NewCommand("sub", "", "sub").Build(nil)).
			SubCommand(NewCommand("sub", "", "sub").Build(nil))
	})

	// documentation alias vs sub-command name
	mustPanic(t, "already assigned", func() {
		NewCommand("c", "", "c", "docs").
			SubCommand(NewCommand("docs", "", "docs").Build(nil))
	})
}

func TestBuilderInvalidCommandName(t *testing.T) {
	mustPanic(t, "invalid name", func() { NewCommand("9lives", "", "") })
	mustPanic(t, "invalid name", func() { NewCommand("", "", "") })
}

func TestForMainAndForCLIDocAliases(t *testing.T) {
	main := ForMain("tool", "A tool").Build(nil)
	wantAliases := []string{"--help", "-h", "?"}
	got := main.DocumentationAliases()
	if len(got) != len(wantAliases) {
		t.Fatalf("DocumentationAliases() = %v, want %v", got, wantAliases)
	}
	for i := range wantAliases {
		if got[i] != wantAliases[i] {
			t.Fatalf("DocumentationAliases() = %v, want %v", got, wantAliases)
		}
	}
	if main.UsageString() != "" {
		t.Errorf("ForMain usage = %q, want empty", main.UsageString())
	}

	cli := ForCLI("tool", "A tool").Build(nil)
	if cli.UsageString() != "tool" {
		t.Errorf("ForCLI usage = %q, want %q", cli.UsageString(), "tool")
	}
}

func TestSubCommandParentWiring(t *testing.T) {
	sub := NewCommand("child", "", "child").Build(nil)
	parent := NewCommand("parent", "", "parent").SubCommand(sub).Build(nil)

	if sub.Parent() != parent {
		t.Error("sub-command parent back-reference not wired")
	}
	if parent.Parent() != nil {
		t.Error("root command should have no parent")
	}
}

func TestOptionTableSharesIdentity(t *testing.T) {
	opt := NewOption("verbose", "Verbosity").Alias("v").Build()
	cmd := NewCommand("c", "", "c").Option(opt).Build(nil)

	table := cmd.Options()
	if table["--verbose"] != table["-v"] {
		t.Error("--verbose and -v must map to the same Option identity")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	cmd := NewCommand("c", "", "c").
		RequiredArgument("a", "").
		Flag("f", "").
		Build(nil)

	opts := cmd.Options()
	delete(opts, "--f")
	if _, ok := cmd.Options()["--f"]; !ok {
		t.Error("mutating Options() copy affected the command")
	}

	subs := cmd.SubCommands()
	subs["ghost"] = cmd
	if _, ok := cmd.SubCommands()["ghost"]; ok {
		t.Error("mutating SubCommands() copy affected the command")
	}
}
