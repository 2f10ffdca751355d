package main

import (
	"github.com/spf13/cobra"

	"lingo-hq/cldr/pkg/cli"
)

var listFlags struct {
	format string
}

var typesCmd = &cobra.Command{
	Use:   "types <locale>",
	Short: "List the resource types available for a locale",
	Long: `List the .yml resources directly under locales/<locale>/, without their
extension. The locale is canonicalized first, so "pt_br" lists pt-BR.

Examples:
  cldr types en
  cldr types zh-tw --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, func(a *app) ([]string, error) {
			return a.loader.ResourceTypesFor(args[0])
		})
	},
}

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List the locales present under locales/",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, func(a *app) ([]string, error) {
			return a.loader.AvailableLocales()
		})
	},
}

func init() {
	rootCmd.AddCommand(typesCmd, localesCmd)

	for _, cmd := range []*cobra.Command{typesCmd, localesCmd} {
		cmd.Flags().StringVarP(&listFlags.format, "format", "o", "text", "output format: text, json, yaml")
	}
}

func runList(cmd *cobra.Command, list func(*app) ([]string, error)) error {
	format, err := cli.ParseFormat(listFlags.format)
	if err != nil {
		return err
	}

	a, err := newApp(currentFlags(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	names, err := list(a)
	if err != nil {
		return err
	}
	if names == nil {
		names = []string{}
	}
	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), names)
}
