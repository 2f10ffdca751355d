package config

import "time"

// Config is the root configuration structure for the cldr tool.
// It is loaded from YAML and can be overridden with environment variables.
type Config struct {
	// Resources locates the resource tree and its custom overrides.
	Resources ResourcesConfig `yaml:"resources"`

	// Locales configures locale normalization.
	Locales LocalesConfig `yaml:"locales"`

	// Telemetry contains logging, metrics and tracing configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ResourcesConfig locates resource files on disk.
type ResourcesConfig struct {
	// Root is the directory all resource paths are relative to.
	// Default: "./resources"
	Root string `yaml:"root"`

	// CustomRoot holds user overrides mirroring the layout of Root.
	// Default: "<root>/custom"
	CustomRoot string `yaml:"custom_root"`

	// CustomEnabled controls whether custom overrides are merged.
	// Default: true
	CustomEnabled bool `yaml:"custom_enabled"`
}

// LocalesConfig configures locale normalization.
type LocalesConfig struct {
	// Aliases maps additional locale spellings to canonical tags, on top of
	// the built-in table. Example: {"fil": "tl"}
	Aliases map[string]string `yaml:"aliases"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains distributed tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text", "console"
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains metrics collection configuration.
type MetricsConfig struct {
	// Enabled controls whether loader metrics are collected.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	// Default: "cldr"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "resources"
	Subsystem string `yaml:"subsystem"`

	// LoadDurationBuckets defines histogram buckets for file loads (seconds).
	// Default: [0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1]
	LoadDurationBuckets []float64 `yaml:"load_duration_buckets"`

	// Textfile, when set, receives the metrics in Prometheus text format
	// when the command exits.
	Textfile string `yaml:"textfile"`
}

// TracingConfig contains distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether distributed tracing is active.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Sampler determines the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "ratio"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of traces to sample (0.0 to 1.0).
	// Only used when Sampler is "ratio".
	// Default: 0.1
	SampleRatio float64 `yaml:"sample_ratio"`

	// Exporter determines the trace exporter to use.
	// Options: "otlp"
	// Default: "otlp"
	Exporter string `yaml:"exporter"`

	// Endpoint is the trace collector endpoint.
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// ServiceName is the service name in traces.
	// Default: "cldr"
	ServiceName string `yaml:"service_name"`

	// OTLP contains OTLP exporter specific configuration.
	OTLP OTLPConfig `yaml:"otlp"`
}

// OTLPConfig contains OTLP exporter configuration.
type OTLPConfig struct {
	// Insecure disables TLS for the OTLP connection.
	Insecure bool `yaml:"insecure"`

	// Timeout is the timeout for OTLP exports.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`
}
