package config

import (
	"path/filepath"
	"time"
)

// Default values for configuration fields.
const (
	// Resource defaults
	DefaultResourcesRoot = "./resources"
	DefaultCustomSubdir  = "custom"

	// Logging defaults
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "text"

	// Metrics defaults
	DefaultMetricsNamespace = "cldr"
	DefaultMetricsSubsystem = "resources"

	// Tracing defaults
	DefaultTracingSampler     = "ratio"
	DefaultTracingSampleRatio = 0.1
	DefaultTracingExporter    = "otlp"
	DefaultTracingEndpoint    = "localhost:4317"
	DefaultTracingServiceName = "cldr"
	DefaultOTLPTimeout        = 10 * time.Second
)

// DefaultLoadDurationBuckets covers local file reads from sub-millisecond
// to one second.
var DefaultLoadDurationBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}

// ApplyDefaults fills every unset field with its default. Fields that
// already hold a value are left alone.
func ApplyDefaults(cfg *Config) {
	// Resource defaults
	if cfg.Resources.Root == "" {
		cfg.Resources.Root = DefaultResourcesRoot
	}
	if cfg.Resources.CustomRoot == "" {
		cfg.Resources.CustomRoot = filepath.Join(cfg.Resources.Root, DefaultCustomSubdir)
	}

	// Logging defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}

	// Metrics defaults
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if len(cfg.Telemetry.Metrics.LoadDurationBuckets) == 0 {
		cfg.Telemetry.Metrics.LoadDurationBuckets = append([]float64(nil), DefaultLoadDurationBuckets...)
	}

	// Tracing defaults
	if cfg.Telemetry.Tracing.Sampler == "" {
		cfg.Telemetry.Tracing.Sampler = DefaultTracingSampler
	}
	if cfg.Telemetry.Tracing.SampleRatio == 0 {
		cfg.Telemetry.Tracing.SampleRatio = DefaultTracingSampleRatio
	}
	if cfg.Telemetry.Tracing.Exporter == "" {
		cfg.Telemetry.Tracing.Exporter = DefaultTracingExporter
	}
	if cfg.Telemetry.Tracing.Endpoint == "" {
		cfg.Telemetry.Tracing.Endpoint = DefaultTracingEndpoint
	}
	if cfg.Telemetry.Tracing.ServiceName == "" {
		cfg.Telemetry.Tracing.ServiceName = DefaultTracingServiceName
	}
	if cfg.Telemetry.Tracing.OTLP.Timeout == 0 {
		cfg.Telemetry.Tracing.OTLP.Timeout = DefaultOTLPTimeout
	}
}

// Default returns a configuration holding only default values.
func Default() *Config {
	cfg := newConfig()
	ApplyDefaults(cfg)
	return cfg
}

// newConfig returns a Config with the boolean defaults set. YAML decoding
// leaves fields absent from the file untouched, so decoding into this value
// keeps those defaults.
func newConfig() *Config {
	cfg := &Config{}
	cfg.Resources.CustomEnabled = true
	cfg.Telemetry.Metrics.Enabled = true
	return cfg
}
