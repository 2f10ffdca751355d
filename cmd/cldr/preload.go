package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"lingo-hq/cldr/pkg/cli"
	"lingo-hq/cldr/pkg/resources"
	"lingo-hq/cldr/pkg/telemetry/logging"
)

var preloadFlags struct {
	quiet bool
}

var preloadCmd = &cobra.Command{
	Use:   "preload <locale> [type...]",
	Short: "Load every resource of a locale",
	Long: `Load resource types for a locale into a fresh cache, reporting progress.
Without types, every type listed by "cldr types" is loaded. All types are
attempted; the command fails if any of them could not be loaded.

Use it to check that a locale parses and merges cleanly, or with
--metrics-file to measure load times.

Examples:
  cldr preload en
  cldr preload zh-tw numbers calendars --metrics-file /tmp/cldr.prom`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPreload,
}

func init() {
	rootCmd.AddCommand(preloadCmd)

	preloadCmd.Flags().BoolVarP(&preloadFlags.quiet, "quiet", "q", false, "do not print progress")
}

func runPreload(cmd *cobra.Command, args []string) error {
	a, err := newApp(currentFlags(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := cli.SetupSignalHandler(commandContext(cmd, "preload"))
	defer stop()
	ctx = logging.WithLocale(ctx, args[0])

	var progressOut io.Writer = cmd.ErrOrStderr()
	if preloadFlags.quiet {
		progressOut = io.Discard
	}

	loaded, err := preloadLocale(ctx, a.loader, args[0], args[1:], cli.NewProgressReporter(progressOut, "Preloading"))
	fmt.Fprintf(cmd.OutOrStdout(), "Preloaded %d resource(s) for %s\n", loaded, a.normalizer.Normalize(args[0]))
	if err != nil {
		return cli.NewCommandError("preload", err)
	}
	return nil
}

// preloadLocale loads each type through the loader and returns how many
// loaded successfully. Failures are joined.
func preloadLocale(ctx context.Context, loader *resources.Loader, loc string, types []string, progress cli.ProgressReporter) (int, error) {
	if len(types) == 0 {
		var err error
		types, err = loader.ResourceTypesFor(loc)
		if err != nil {
			return 0, err
		}
		if len(types) == 0 {
			return 0, fmt.Errorf("no resources found for locale %q", loc)
		}
	}

	progress.Start(int64(len(types)))

	var errs []error
	loaded := 0
	for _, typ := range types {
		if err := loader.PreloadLocale(ctx, loc, typ); err != nil {
			errs = append(errs, err)
			if ctx.Err() != nil {
				break
			}
		} else {
			loaded++
		}
		progress.Increment()
	}

	if err := errors.Join(errs...); err != nil {
		progress.Error(err)
		return loaded, err
	}
	progress.Finish()
	return loaded, nil
}
