package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"lingo-hq/cldr/pkg/config"
)

// CacheMetrics tracks resource cache performance.
//
// Metrics:
//   - cache_hits_total: Total cache hits by resource kind
//   - cache_misses_total: Total cache misses by resource kind
//   - cache_entries: Current number of cached resources
//
// The cache never evicts, so there is no eviction counter.
type CacheMetrics struct {
	hitsTotal   *prometheus.CounterVec
	missesTotal *prometheus.CounterVec
	entries     prometheus.Gauge
}

// NewCacheMetrics creates and registers cache metrics with the provided registry.
func NewCacheMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CacheMetrics {
	cm := &CacheMetrics{
		hitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_hits_total",
				Help:      "Total number of resource lookups answered from the cache",
			},
			[]string{"kind"},
		),

		missesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_misses_total",
				Help:      "Total number of resource lookups that missed the cache",
			},
			[]string{"kind"},
		),

		entries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_entries",
				Help:      "Current number of cached resources",
			},
		),
	}

	registry.MustRegister(
		cm.hitsTotal,
		cm.missesTotal,
		cm.entries,
	)

	return cm
}

// RecordHit records a cache hit.
//
// Example:
//
//	cm.RecordHit("yaml")
func (cm *CacheMetrics) RecordHit(kind string) {
	cm.hitsTotal.WithLabelValues(kind).Inc()
}

// RecordMiss records a cache miss.
func (cm *CacheMetrics) RecordMiss(kind string) {
	cm.missesTotal.WithLabelValues(kind).Inc()
}

// UpdateSize updates the current size of the cache.
func (cm *CacheMetrics) UpdateSize(size int) {
	cm.entries.Set(float64(size))
}

// Hit rate is a query, not a metric:
//
//	rate(cldr_resources_cache_hits_total[5m]) /
//	(rate(cldr_resources_cache_hits_total[5m]) +
//	 rate(cldr_resources_cache_misses_total[5m]))
