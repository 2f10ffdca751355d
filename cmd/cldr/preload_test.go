package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"lingo-hq/cldr/pkg/cli"
	"lingo-hq/cldr/pkg/data"
	"lingo-hq/cldr/pkg/resources"
)

func TestPreloadLocale_AllTypes(t *testing.T) {
	a := newTestApp(t, fixtureRoot(t))
	buf := &bytes.Buffer{}

	loaded, err := preloadLocale(t.Context(), a.loader, "zh-tw", nil, cli.NewProgressReporter(buf, "Preloading"))
	if err != nil {
		t.Fatalf("preloadLocale() error = %v", err)
	}
	if loaded != 2 {
		t.Errorf("loaded = %d, want 2", loaded)
	}
	for _, typ := range []string{"numbers", "units"} {
		if !a.loader.ResourceLoaded(resources.LocalesDir, data.Symbol("zh-Hant"), data.Text(typ)) {
			t.Errorf("expected %s to be cached", typ)
		}
	}
	if !strings.Contains(buf.String(), "(2/2)") {
		t.Errorf("expected completed progress, got %q", buf.String())
	}
}

func TestPreloadLocale_MissingType(t *testing.T) {
	a := newTestApp(t, fixtureRoot(t))
	buf := &bytes.Buffer{}

	loaded, err := preloadLocale(t.Context(), a.loader, "en", []string{"numbers", "dates"}, cli.NewProgressReporter(buf, "Preloading"))
	if err == nil {
		t.Fatal("expected error for missing type")
	}
	if !errors.Is(err, resources.ErrResourceNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
	if loaded != 1 {
		t.Errorf("loaded = %d, want 1", loaded)
	}
	if !strings.Contains(buf.String(), "Error:") {
		t.Errorf("expected progress error, got %q", buf.String())
	}
}

func TestPreloadLocale_NoResources(t *testing.T) {
	a := newTestApp(t, fixtureRoot(t))

	_, err := preloadLocale(t.Context(), a.loader, "fr", nil, cli.NewProgressReporter(&bytes.Buffer{}, ""))
	if err == nil {
		t.Fatal("expected error for a locale without resources")
	}
}

func TestPreloadCommand(t *testing.T) {
	root := fixtureRoot(t)

	out, err := executeCommand(t, "preload", "zh_tw", "--quiet", "--root", root, "--config", absentConfig(t))
	if err != nil {
		t.Fatalf("preload returned error: %v", err)
	}
	if out != "Preloaded 2 resource(s) for zh-Hant\n" {
		t.Errorf("unexpected output %q", out)
	}
}
