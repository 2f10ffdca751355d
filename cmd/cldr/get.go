package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lingo-hq/cldr/pkg/cli"
	"lingo-hq/cldr/pkg/data"
	"lingo-hq/cldr/pkg/resources"
	"lingo-hq/cldr/pkg/telemetry/logging"
)

var getFlags struct {
	format string
	dig    string
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print a resource",
	Long: `Load a resource through the loader and print it.

Segments are joined with "/" and ".yml" is appended. A segment written
with a leading colon (":numbers") is treated as a symbol; it resolves to
the same path as the plain spelling.

Examples:
  # Structured resource at <root>/shared/currency_digits_and_rounding.yml
  cldr get yaml shared currency_digits_and_rounding

  # Locale resource at <root>/locales/zh-Hant/numbers.yml
  cldr get locale zh-tw numbers

  # Nested key as JSON
  cldr get locale en numbers --dig numbers.latn.symbols --format json

  # Plain text file, path used verbatim
  cldr get plain shared/segments/segments_root.txt`,
}

var getYAMLCmd = &cobra.Command{
	Use:   "yaml <segment>...",
	Short: "Print a structured resource",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd, func(ctx context.Context, l *resources.Loader) (*resources.Resource, error) {
			return l.GetYAMLResource(ctx, parseSegments(args)...)
		})
	},
}

var getLocaleCmd = &cobra.Command{
	Use:   "locale <locale> <segment>...",
	Short: "Print a locale resource",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd, func(ctx context.Context, l *resources.Loader) (*resources.Resource, error) {
			ctx = logging.WithLocale(ctx, args[0])
			return l.GetLocaleResource(ctx, args[0], parseSegments(args[1:])...)
		})
	},
}

var getPlainCmd = &cobra.Command{
	Use:   "plain <path>",
	Short: "Print a plain text resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd, func(ctx context.Context, l *resources.Loader) (*resources.Resource, error) {
			return l.GetPlainResource(ctx, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.AddCommand(getYAMLCmd, getLocaleCmd, getPlainCmd)

	getCmd.PersistentFlags().StringVarP(&getFlags.format, "format", "o", "text", "output format: text, json, yaml")
	getCmd.PersistentFlags().StringVar(&getFlags.dig, "dig", "", "dot-separated key path to print instead of the whole resource")
}

type lookupFunc func(ctx context.Context, l *resources.Loader) (*resources.Resource, error)

func runGet(cmd *cobra.Command, lookup lookupFunc) error {
	format, err := cli.ParseFormat(getFlags.format)
	if err != nil {
		return err
	}

	a, err := newApp(currentFlags(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := commandContext(cmd, "get")
	res, err := lookup(ctx, a.loader)
	if err != nil {
		return err
	}

	value, err := selectValue(res, getFlags.dig)
	if err != nil {
		return err
	}
	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), value)
}

// selectValue returns the part of res addressed by a dot-separated key path.
func selectValue(res *resources.Resource, path string) (any, error) {
	if path == "" {
		return res.Value, nil
	}
	if res.Kind != resources.KindYAML {
		return nil, fmt.Errorf("--dig requires a structured resource, %s is %s", res.Path, res.Kind)
	}

	keys := parseKeyPath(path)
	value, ok := res.Dig(keys...)
	if !ok {
		return nil, fmt.Errorf("key %q not found in %s", path, res.Path)
	}
	return value, nil
}

// parseSegments converts command-line segments; a leading colon marks a
// symbol.
func parseSegments(args []string) []data.Segment {
	segments := make([]data.Segment, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(arg, ":") {
			segments = append(segments, data.Symbol(strings.TrimPrefix(arg, ":")))
			continue
		}
		segments = append(segments, data.Text(arg))
	}
	return segments
}

func parseKeyPath(path string) []data.Symbol {
	parts := strings.Split(path, ".")
	keys := make([]data.Symbol, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		keys = append(keys, data.ToSymbol(part))
	}
	return keys
}

// commandContext tags the command's context with its name for logging.
func commandContext(cmd *cobra.Command, name string) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithCommand(ctx, name)
}
