/*
Package cli provides command-line interface utilities for cldr.

The cli package includes output formatters, progress reporters, exit codes
and signal handling used by the cldr command.

Output Formatting:

Resources can be printed as text, JSON or YAML:

	formatter := cli.NewFormatter(cli.FormatYAML)
	if err := formatter.FormatTo(os.Stdout, res.Value); err != nil {
		return err
	}

Text output prints strings verbatim, lists one item per line and falls back
to YAML for nested mappings.

Progress Reporting:

	progress := cli.NewProgressReporter(os.Stderr, "Preloading")
	progress.Start(int64(len(types)))
	for range types {
		// Do work
		progress.Increment()
	}
	progress.Finish()

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
