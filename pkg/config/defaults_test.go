package config

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input Config
		check func(*testing.T, *Config)
	}{
		{
			name:  "empty config gets all defaults",
			input: Config{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Resources.Root != DefaultResourcesRoot {
					t.Errorf("expected root %q, got %q", DefaultResourcesRoot, cfg.Resources.Root)
				}
				wantCustom := filepath.Join(DefaultResourcesRoot, DefaultCustomSubdir)
				if cfg.Resources.CustomRoot != wantCustom {
					t.Errorf("expected custom root %q, got %q", wantCustom, cfg.Resources.CustomRoot)
				}
				if cfg.Telemetry.Logging.Level != DefaultLoggingLevel {
					t.Errorf("expected logging level %q, got %q", DefaultLoggingLevel, cfg.Telemetry.Logging.Level)
				}
				if cfg.Telemetry.Logging.Format != DefaultLoggingFormat {
					t.Errorf("expected logging format %q, got %q", DefaultLoggingFormat, cfg.Telemetry.Logging.Format)
				}
				if cfg.Telemetry.Metrics.Namespace != DefaultMetricsNamespace {
					t.Errorf("expected namespace %q, got %q", DefaultMetricsNamespace, cfg.Telemetry.Metrics.Namespace)
				}
				if !reflect.DeepEqual(cfg.Telemetry.Metrics.LoadDurationBuckets, DefaultLoadDurationBuckets) {
					t.Errorf("expected default buckets, got %v", cfg.Telemetry.Metrics.LoadDurationBuckets)
				}
				if cfg.Telemetry.Tracing.Sampler != DefaultTracingSampler {
					t.Errorf("expected sampler %q, got %q", DefaultTracingSampler, cfg.Telemetry.Tracing.Sampler)
				}
				if cfg.Telemetry.Tracing.OTLP.Timeout != DefaultOTLPTimeout {
					t.Errorf("expected OTLP timeout %v, got %v", DefaultOTLPTimeout, cfg.Telemetry.Tracing.OTLP.Timeout)
				}
			},
		},
		{
			name: "custom root follows root",
			input: Config{
				Resources: ResourcesConfig{Root: "/data/cldr"},
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Resources.CustomRoot != filepath.Join("/data/cldr", "custom") {
					t.Errorf("unexpected custom root %q", cfg.Resources.CustomRoot)
				}
			},
		},
		{
			name: "existing values are preserved",
			input: Config{
				Resources: ResourcesConfig{Root: "/data", CustomRoot: "/overrides"},
				Telemetry: TelemetryConfig{
					Logging: LoggingConfig{Level: "debug", Format: "json"},
					Tracing: TracingConfig{OTLP: OTLPConfig{Timeout: time.Second}},
				},
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Resources.CustomRoot != "/overrides" {
					t.Errorf("expected custom root preserved, got %q", cfg.Resources.CustomRoot)
				}
				if cfg.Telemetry.Logging.Level != "debug" || cfg.Telemetry.Logging.Format != "json" {
					t.Errorf("expected logging preserved, got %+v", cfg.Telemetry.Logging)
				}
				if cfg.Telemetry.Tracing.OTLP.Timeout != time.Second {
					t.Errorf("expected timeout preserved, got %v", cfg.Telemetry.Tracing.OTLP.Timeout)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.input
			ApplyDefaults(&cfg)
			tt.check(t, &cfg)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.Resources.CustomEnabled {
		t.Error("expected custom overrides enabled by default")
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("expected metrics enabled by default")
	}
	if cfg.Telemetry.Tracing.Enabled {
		t.Error("expected tracing disabled by default")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("expected default config to be valid, got %v", err)
	}
}

func TestApplyDefaults_BucketsAreCopied(t *testing.T) {
	cfg := Config{}
	ApplyDefaults(&cfg)
	cfg.Telemetry.Metrics.LoadDurationBuckets[0] = 42

	if DefaultLoadDurationBuckets[0] == 42 {
		t.Error("modifying a config's buckets must not change the package defaults")
	}
}
