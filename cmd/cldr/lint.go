package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"lingo-hq/cldr/pkg/cli"
	"lingo-hq/cldr/pkg/data"
	"lingo-hq/cldr/pkg/resources"
)

var lintFlags struct {
	strict      bool
	format      string
	watch       bool
	debounce    time.Duration
	metricsAddr string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Parse every resource file",
	Long: `Parse every .yml file under the resource root and the custom root.

The lint command loads each file through a fresh loader and reports:
  - YAML syntax errors (errors)
  - custom overrides without a matching base resource (warnings)
  - custom overrides that will be ignored because either document is not
    a mapping (warnings)

With --watch the tree is linted again whenever a file changes, until
interrupted.

Examples:
  # Lint the configured resource tree
  cldr lint

  # Strict mode (warnings as errors)
  cldr lint --strict

  # JSON output for CI/CD
  cldr lint --format json

  # Re-lint on change and expose metrics
  cldr lint --watch --metrics-addr :9464`,
	Args: cobra.NoArgs,
	RunE: lintResources,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().BoolVar(&lintFlags.strict, "strict", false, "treat warnings as errors")
	lintCmd.Flags().StringVarP(&lintFlags.format, "format", "o", "text", "output format: text, json")
	lintCmd.Flags().BoolVarP(&lintFlags.watch, "watch", "w", false, "re-lint when resource files change")
	lintCmd.Flags().DurationVar(&lintFlags.debounce, "debounce", 200*time.Millisecond, "quiet period before re-linting in watch mode")
	lintCmd.Flags().StringVar(&lintFlags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address in watch mode")
}

// LintResult represents the lint result for a single resource file.
type LintResult struct {
	File     string   `json:"file"`
	Root     string   `json:"root"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Lint roots.
const (
	rootBase   = "base"
	rootCustom = "custom"
)

func lintResources(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseFormat(lintFlags.format)
	if err != nil {
		return err
	}
	if format == cli.FormatYAML {
		return cli.NewConfigError("format", "lint supports text and json output")
	}

	a, err := newApp(currentFlags(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := cli.SetupSignalHandler(commandContext(cmd, "lint"))
	defer stop()

	out := cmd.OutOrStdout()
	runOnce := func() error {
		results, err := lintTree(ctx, a)
		if err != nil {
			return err
		}
		return reportLint(out, format, results, lintFlags.strict)
	}

	if !lintFlags.watch {
		return runOnce()
	}

	if lintFlags.metricsAddr != "" {
		srv := serveMetrics(a, lintFlags.metricsAddr)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	report := func() {
		if err := runOnce(); err != nil {
			a.logger.WarnContext(ctx, "lint failed", "error", err)
		}
	}
	report()
	return watchTree(ctx, a, lintDirs(a), lintFlags.debounce, report)
}

// lintDirs returns the directories to lint, keyed by root label. A
// disabled or missing custom root is skipped.
func lintDirs(a *app) map[string]string {
	dirs := map[string]string{rootBase: a.cfg.Resources.Root}
	if custom := a.customRootOption(); custom != "" {
		if info, err := os.Stat(custom); err == nil && info.IsDir() {
			dirs[rootCustom] = custom
		}
	}
	return dirs
}

// lintTree lints the base tree and, when enabled, the custom tree. Every run
// uses fresh loaders so edits are always seen.
func lintTree(ctx context.Context, a *app) ([]LintResult, error) {
	dirs := lintDirs(a)
	root := dirs[rootBase]
	custom := dirs[rootCustom]

	// The custom root often lives inside the resource root; its files are
	// never base resources.
	baseFiles, err := collectResourceFiles(root, a.cfg.Resources.CustomRoot)
	if err != nil {
		return nil, err
	}

	base := a.newLoader(root, "")
	results := make([]LintResult, 0, len(baseFiles))
	for _, rel := range baseFiles {
		result := LintResult{File: filepath.Join(root, rel), Root: rootBase, Valid: true}
		if _, err := base.GetYAMLResource(ctx, relSegments(rel)...); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
		results = append(results, result)
	}

	if custom == "" {
		return results, nil
	}

	customFiles, err := collectResourceFiles(custom, "")
	if err != nil {
		return nil, err
	}

	overrides := a.newLoader(custom, "")
	for _, rel := range customFiles {
		results = append(results, lintOverride(ctx, base, overrides, custom, rel))
	}
	return results, nil
}

func lintOverride(ctx context.Context, base, overrides *resources.Loader, custom, rel string) LintResult {
	result := LintResult{File: filepath.Join(custom, rel), Root: rootCustom, Valid: true}
	segments := relSegments(rel)

	override, err := overrides.GetYAMLResource(ctx, segments...)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	if !base.ResourceExists(segments...) {
		result.Warnings = append(result.Warnings, "override has no matching base resource")
		return result
	}
	if override.Map() == nil {
		result.Warnings = append(result.Warnings, "override is not a mapping and will be ignored")
		return result
	}

	// The base file was linted already; a cached error-free load is reused.
	baseRes, err := base.GetYAMLResource(ctx, segments...)
	if err == nil && baseRes.Map() == nil {
		result.Warnings = append(result.Warnings, "base resource is not a mapping, override will be ignored")
	}
	return result
}

// collectResourceFiles returns the slash-separated paths of .yml files under
// dir, relative to dir. The skip directory is not descended into.
func collectResourceFiles(dir, skip string) ([]string, error) {
	var files []string
	skipAbs := ""
	if skip != "" {
		skipAbs, _ = filepath.Abs(skip)
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipAbs != "" && path != dir {
				if abs, _ := filepath.Abs(path); abs == skipAbs {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if filepath.Ext(path) != resources.YAMLExt {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list resource files under %q: %w", dir, err)
	}
	return files, nil
}

func relSegments(rel string) []data.Segment {
	parts := strings.Split(strings.TrimSuffix(rel, resources.YAMLExt), "/")
	segments := make([]data.Segment, 0, len(parts))
	for _, part := range parts {
		segments = append(segments, data.Text(part))
	}
	return segments
}

func reportLint(w io.Writer, format cli.OutputFormat, results []LintResult, strict bool) error {
	totalErrors := 0
	totalWarnings := 0
	for _, result := range results {
		totalErrors += len(result.Errors)
		totalWarnings += len(result.Warnings)
	}

	if format == cli.FormatJSON {
		if err := cli.NewFormatter(cli.FormatJSON).FormatTo(w, results); err != nil {
			return err
		}
	} else {
		outputText(w, results, totalErrors, totalWarnings, strict)
	}

	if totalErrors > 0 || (strict && totalWarnings > 0) {
		return cli.NewCommandError("lint", errors.New("validation failed"))
	}
	return nil
}

func outputText(w io.Writer, results []LintResult, totalErrors, totalWarnings int, strict bool) {
	for _, result := range results {
		if len(result.Errors) == 0 && len(result.Warnings) == 0 {
			continue
		}

		fmt.Fprintf(w, "%s (%s)\n", result.File, result.Root)
		for _, msg := range result.Errors {
			fmt.Fprintf(w, "  ✗ Error: %s\n", msg)
		}
		for _, msg := range result.Warnings {
			fmt.Fprintf(w, "  ⚠  Warning: %s\n", msg)
		}
	}

	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  %d file(s), %d error(s), %d warning(s)\n", len(results), totalErrors, totalWarnings)
	if strict && totalWarnings > 0 {
		fmt.Fprintln(w, "  Strict mode enabled: treating warnings as errors")
	}
}

// watchTree calls run after every burst of changes to .yml files under dirs
// until ctx is canceled. Directories created later are watched too.
func watchTree(ctx context.Context, a *app, dirs map[string]string, debounce time.Duration, run func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := addWatchDirs(watcher, dir); err != nil {
			return err
		}
	}
	a.logger.InfoContext(ctx, "watching resource files", "dirs", len(watcher.WatchList()))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addWatchDirs(watcher, event.Name); err != nil {
						a.logger.WarnContext(ctx, "failed to watch new directory", "dir", event.Name, "error", err)
					}
					pending = time.After(debounce)
					continue
				}
			}
			if !relevantEvent(event) {
				continue
			}
			a.logger.DebugContext(ctx, "resource file changed", "file", event.Name, "op", event.Op.String())
			pending = time.After(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.WarnContext(ctx, "file watcher error", "error", err)

		case <-pending:
			pending = nil
			run()
		}
	}
}

func relevantEvent(event fsnotify.Event) bool {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return false
	}
	return filepath.Ext(event.Name) == resources.YAMLExt
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %q: %w", path, err)
		}
		return nil
	})
}

func serveMetrics(a *app, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	a.logger.Info("serving metrics", "addr", addr)
	return srv
}
