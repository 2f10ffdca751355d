package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"lingo-hq/cldr/pkg/config"
)

// Helper function to create test config
func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:             true,
		Namespace:           "test",
		Subsystem:           "resources",
		LoadDurationBuckets: []float64{0.001, 0.01, 0.1, 1.0},
	}
}

// TestCollector_NewCollector tests collector creation
func TestCollector_NewCollector(t *testing.T) {
	cfg := testConfig()
	registry := prometheus.NewRegistry()

	collector := NewCollector(cfg, registry)

	if collector == nil {
		t.Fatal("Expected non-nil collector")
	}
	if collector.config != cfg {
		t.Error("Collector config not set correctly")
	}
	if collector.Registry() != registry {
		t.Error("Collector registry not set correctly")
	}
}

func TestCollector_Defaults(t *testing.T) {
	cfg := &config.MetricsConfig{Enabled: true}
	collector := NewCollector(cfg, nil)

	if collector.Registry() == nil {
		t.Fatal("expected a registry to be created")
	}
	if cfg.Namespace != config.DefaultMetricsNamespace || cfg.Subsystem != config.DefaultMetricsSubsystem {
		t.Errorf("unexpected names %q/%q", cfg.Namespace, cfg.Subsystem)
	}
	if len(cfg.LoadDurationBuckets) == 0 {
		t.Error("expected default buckets")
	}
}

// TestCollector_CacheMetrics tests hit, miss and size recording
func TestCollector_CacheMetrics(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	collector.RecordMiss("yaml")
	collector.RecordHit("yaml")
	collector.RecordHit("yaml")
	collector.RecordHit("plain")
	collector.UpdateSize(3)

	if got := testutil.ToFloat64(collector.cacheMetrics.hitsTotal.WithLabelValues("yaml")); got != 2 {
		t.Errorf("expected 2 yaml hits, got %v", got)
	}
	if got := testutil.ToFloat64(collector.cacheMetrics.hitsTotal.WithLabelValues("plain")); got != 1 {
		t.Errorf("expected 1 plain hit, got %v", got)
	}
	if got := testutil.ToFloat64(collector.cacheMetrics.missesTotal.WithLabelValues("yaml")); got != 1 {
		t.Errorf("expected 1 yaml miss, got %v", got)
	}
	if got := testutil.ToFloat64(collector.cacheMetrics.entries); got != 3 {
		t.Errorf("expected 3 entries, got %v", got)
	}
}

// TestCollector_LoadMetrics tests load, not-found and override recording
func TestCollector_LoadMetrics(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	collector.RecordLoad("yaml", 2*time.Millisecond, nil)
	collector.RecordLoad("yaml", time.Millisecond, errors.New("parse error"))
	collector.RecordNotFound("plain")
	collector.RecordOverride()

	tests := []struct {
		name   string
		metric prometheus.Collector
		want   float64
	}{
		{"successful loads", collector.loadMetrics.loadsTotal.WithLabelValues("yaml", ResultSuccess), 1},
		{"failed loads", collector.loadMetrics.loadsTotal.WithLabelValues("yaml", ResultError), 1},
		{"not found", collector.loadMetrics.notFoundTotal.WithLabelValues("plain"), 1},
		{"overrides", collector.loadMetrics.overridesMerged, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testutil.ToFloat64(tt.metric); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if n := testutil.CollectAndCount(collector.loadMetrics.loadDuration); n != 1 {
		t.Errorf("expected 1 histogram series, got %d", n)
	}
}

// TestCollector_Disabled tests that a disabled collector records nothing
func TestCollector_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	collector := NewCollector(cfg, prometheus.NewRegistry())

	collector.RecordHit("yaml")
	collector.RecordMiss("yaml")
	collector.RecordLoad("yaml", time.Millisecond, nil)
	collector.RecordNotFound("yaml")
	collector.RecordOverride()
	collector.UpdateSize(5)

	if n := testutil.CollectAndCount(collector.cacheMetrics.hitsTotal); n != 0 {
		t.Errorf("expected no hit series, got %d", n)
	}
	if got := testutil.ToFloat64(collector.cacheMetrics.entries); got != 0 {
		t.Errorf("expected entries to stay 0, got %v", got)
	}
	if got := testutil.ToFloat64(collector.loadMetrics.overridesMerged); got != 0 {
		t.Errorf("expected no overrides, got %v", got)
	}
}

func TestCollector_WriteTextfile(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())
	collector.RecordHit("yaml")

	path := filepath.Join(t.TempDir(), "cldr.prom")
	if err := collector.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read textfile: %v", err)
	}
	if !strings.Contains(string(content), `test_resources_cache_hits_total{kind="yaml"} 1`) {
		t.Errorf("expected hit counter in textfile:\n%s", content)
	}
}

func TestCollector_WriteTextfile_BadPath(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	err := collector.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "cldr.prom"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestCollector_Handler(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())
	collector.RecordOverride()

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "test_resources_overrides_merged_total 1") {
		t.Errorf("expected override counter in output:\n%s", rec.Body.String())
	}
}
