// Package readycli resolves command lines against a declarative tree of
// commands, required positional arguments, named options and sub-commands.
//
// A tree is declared once through one-shot builders and is immutable
// afterwards:
//
//	cmd := readycli.ForMain("copy", "Copies a file").
//		RequiredArgument("source", "The file to copy").
//		RequiredArgument("destination", "Where to copy it").
//		Flag("overwrite", "Replace the destination if it exists").
//		Option(readycli.NewOption("buffer", "Copy buffer configuration").
//			Alias("b").
//			Parameter("size", "Buffer size in bytes", "4096").
//			Build()).
//		Build(func(ctx *readycli.CommandContext) error {
//			src := ctx.Argument("source")
//			size := ctx.Option("buffer").Get("size")
//			...
//			return nil
//		})
//
//	cause := cmd.Execute(os.Args[1:])
//	os.Exit(cause.Code())
//
// Execute classifies each token as a documentation request, a sub-command
// invocation, a named option (consuming its declared parameter count), or a
// positional required argument, in that priority order. All values stay
// textual; every outcome is one of the closed ExitCause values, and every
// failure is reported on the output stream rather than returned as an error.
//
// The CLI type adds an interactive read-eval loop over a registry of
// commands, with a "?" summary and quote-aware line tokenization.
package readycli
