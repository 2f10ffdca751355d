package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lingo-hq/cldr/pkg/cli"
)

var (
	// Global flags
	cfgFile     string
	rootDir     string
	customRoot  string
	verbose     bool
	metricsFile string
)

var rootCmd = &cobra.Command{
	Use:   "cldr",
	Short: "cldr - inspect CLDR resource trees",
	Long: `cldr loads CLDR resources the way the resource loader does and prints them.

Resources are YAML files resolved relative to a resource root:
  - locale resources live under locales/<locale>/<type>.yml
  - locale spellings are canonicalized first (zh-tw → zh-Hant)
  - files under the custom root override top-level keys of the base file

Configuration is read from cldr.yaml when present. Every setting can be
overridden with CLDR_SECTION_FIELD environment variables or flags.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with a code derived from the
// returned error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "cldr.yaml", "config file path")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", "", "resource root directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&customRoot, "custom-root", "", "custom override directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
}
