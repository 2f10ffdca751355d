package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"lingo-hq/cldr/pkg/config"
)

// Collector owns the metrics registry and records resource loader events.
// It satisfies resources.Recorder.
//
// When the configuration disables metrics every Record method is a no-op,
// but the registry still exists so exports produce an empty document.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	cacheMetrics *CacheMetrics
	loadMetrics  *LoadMetrics
}

// NewCollector creates a new metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh registry is used.
//
// Example:
//
//	cfg := &config.MetricsConfig{
//		Enabled:   true,
//		Namespace: "cldr",
//		Subsystem: "resources",
//	}
//	collector := metrics.NewCollector(cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	// Set defaults if not specified
	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}
	if len(cfg.LoadDurationBuckets) == 0 {
		cfg.LoadDurationBuckets = append([]float64(nil), config.DefaultLoadDurationBuckets...)
	}

	return &Collector{
		config:       cfg,
		registry:     registry,
		cacheMetrics: NewCacheMetrics(cfg, registry),
		loadMetrics:  NewLoadMetrics(cfg, registry),
	}
}

// RecordHit records a lookup answered from the cache.
func (c *Collector) RecordHit(kind string) {
	if !c.config.Enabled {
		return
	}
	c.cacheMetrics.RecordHit(kind)
}

// RecordMiss records a lookup that had to load its resource.
func (c *Collector) RecordMiss(kind string) {
	if !c.config.Enabled {
		return
	}
	c.cacheMetrics.RecordMiss(kind)
}

// UpdateSize records the number of cached resources.
func (c *Collector) UpdateSize(entries int) {
	if !c.config.Enabled {
		return
	}
	c.cacheMetrics.UpdateSize(entries)
}

// RecordLoad records a load attempt and its duration.
//
// Example:
//
//	collector.RecordLoad("yaml", 3*time.Millisecond, nil)
func (c *Collector) RecordLoad(kind string, duration time.Duration, err error) {
	if !c.config.Enabled {
		return
	}
	c.loadMetrics.RecordLoad(kind, duration, err)
}

// RecordNotFound records a lookup of a missing base resource.
func (c *Collector) RecordNotFound(kind string) {
	if !c.config.Enabled {
		return
	}
	c.loadMetrics.RecordNotFound(kind)
}

// RecordOverride records a merged custom override.
func (c *Collector) RecordOverride() {
	if !c.config.Enabled {
		return
	}
	c.loadMetrics.RecordOverride()
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes every registered metric to path in the Prometheus
// text format, atomically replacing any existing file.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %q: %w", path, err)
	}
	return nil
}
