package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"lingo-hq/cldr/pkg/config"
)

// Load results.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// LoadMetrics tracks file loads performed on cache misses.
type LoadMetrics struct {
	loadsTotal      *prometheus.CounterVec
	loadDuration    *prometheus.HistogramVec
	notFoundTotal   *prometheus.CounterVec
	overridesMerged prometheus.Counter
}

// NewLoadMetrics creates and registers load metrics with the provided registry.
func NewLoadMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *LoadMetrics {
	lm := &LoadMetrics{
		loadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "loads_total",
				Help:      "Total number of resource file loads by kind and result",
			},
			[]string{"kind", "result"},
		),

		loadDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "load_duration_seconds",
				Help:      "Time spent reading, parsing and merging a resource",
				Buckets:   cfg.LoadDurationBuckets,
			},
			[]string{"kind"},
		),

		notFoundTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "not_found_total",
				Help:      "Total number of lookups for missing resources",
			},
			[]string{"kind"},
		),

		overridesMerged: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "overrides_merged_total",
				Help:      "Total number of custom overrides merged into resources",
			},
		),
	}

	registry.MustRegister(
		lm.loadsTotal,
		lm.loadDuration,
		lm.notFoundTotal,
		lm.overridesMerged,
	)

	return lm
}

// RecordLoad records one load attempt.
func (lm *LoadMetrics) RecordLoad(kind string, duration time.Duration, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	lm.loadsTotal.WithLabelValues(kind, result).Inc()
	lm.loadDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordNotFound records a lookup for a missing base file.
func (lm *LoadMetrics) RecordNotFound(kind string) {
	lm.notFoundTotal.WithLabelValues(kind).Inc()
}

// RecordOverride records a merged custom override.
func (lm *LoadMetrics) RecordOverride() {
	lm.overridesMerged.Inc()
}
