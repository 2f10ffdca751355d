package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeTree creates files below dir; keys are slash-separated paths.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

// fixtureRoot returns a resource root with a zh-Hant locale, a custom
// override and a plain text file.
func fixtureRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"locales/zh-Hant/numbers.yml":        ":numbers:\n  :symbols:\n    :decimal: \".\"\n",
		"locales/zh-Hant/units.yml":          ":units:\n  :length: {}\n",
		"locales/en/numbers.yml":             ":numbers:\n  :symbols:\n    :decimal: \".\"\n",
		"shared/segments/segments_root.txt":  "root segments\n",
		"custom/locales/zh-Hant/numbers.yml": ":extra: 1\n",
	})
	return root
}

// absentConfig returns a config path that does not exist, so defaults apply.
func absentConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.yaml")
}

// newTestApp builds an app rooted at root with default configuration.
func newTestApp(t *testing.T, root string) *app {
	t.Helper()
	a, err := newApp(globalFlags{configFile: absentConfig(t), root: root}, io.Discard)
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// resetFlags restores every package-level flag to its default.
func resetFlags() {
	cfgFile = "cldr.yaml"
	rootDir = ""
	customRoot = ""
	verbose = false
	metricsFile = ""

	getFlags.format = "text"
	getFlags.dig = ""
	listFlags.format = "text"
	preloadFlags.quiet = false

	lintFlags.strict = false
	lintFlags.format = "text"
	lintFlags.watch = false
	lintFlags.debounce = 200 * time.Millisecond
	lintFlags.metricsAddr = ""
}

// executeCommand runs the root command with args and returns stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}
