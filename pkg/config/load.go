package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any errors.
// Environment variables are not consulted; use LoadConfigWithEnvOverrides
// for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Parse decodes YAML configuration bytes and applies defaults. It does not
// validate.
func Parse(data []byte) (*Config, error) {
	cfg := newConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	ApplyDefaults(cfg)
	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention CLDR_SECTION_FIELD (e.g., CLDR_RESOURCES_ROOT).
// Environment variables always take precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
//
// A missing file is not an error here: defaults plus environment are used.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(path); err != nil && os.IsNotExist(err) {
		cfg = Default()
	} else {
		cfg, err = LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	derivedCustom := cfg.Resources.CustomRoot == filepath.Join(cfg.Resources.Root, DefaultCustomSubdir)
	applyEnvOverrides(cfg)

	// A custom root derived from the file's root follows an overridden root.
	if derivedCustom && os.Getenv("CLDR_RESOURCES_CUSTOM_ROOT") == "" {
		cfg.Resources.CustomRoot = filepath.Join(cfg.Resources.Root, DefaultCustomSubdir)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables use the format CLDR_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Resource overrides
	if val := os.Getenv("CLDR_RESOURCES_ROOT"); val != "" {
		cfg.Resources.Root = val
	}
	if val := os.Getenv("CLDR_RESOURCES_CUSTOM_ROOT"); val != "" {
		cfg.Resources.CustomRoot = val
	}
	if val := os.Getenv("CLDR_RESOURCES_CUSTOM_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Resources.CustomEnabled = b
		}
	}

	// Telemetry overrides
	if val := os.Getenv("CLDR_TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("CLDR_TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("CLDR_TELEMETRY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("CLDR_TELEMETRY_METRICS_TEXTFILE"); val != "" {
		cfg.Telemetry.Metrics.Textfile = val
	}
	if val := os.Getenv("CLDR_TELEMETRY_TRACING_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Tracing.Enabled = b
		}
	}
	if val := os.Getenv("CLDR_TELEMETRY_TRACING_ENDPOINT"); val != "" {
		cfg.Telemetry.Tracing.Endpoint = val
	}
	if val := os.Getenv("CLDR_TELEMETRY_TRACING_SAMPLE_RATIO"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Telemetry.Tracing.SampleRatio = f
		}
	}
	if val := os.Getenv("CLDR_TELEMETRY_TRACING_OTLP_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Telemetry.Tracing.OTLP.Timeout = d
		}
	}
}
