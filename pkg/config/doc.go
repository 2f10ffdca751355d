// Package config provides configuration management for the cldr tool.
//
// This package handles loading, validating, and defaulting configuration
// from YAML files with environment variable overrides.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("cldr.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("cldr.yaml")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention CLDR_SECTION_FIELD.
// For example:
//
//   - CLDR_RESOURCES_ROOT overrides resources.root
//   - CLDR_RESOURCES_CUSTOM_ROOT overrides resources.custom_root
//   - CLDR_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Example Configuration
//
//	resources:
//	  root: ./resources
//	  custom_root: ./resources/custom
//	  custom_enabled: true
//
//	locales:
//	  aliases:
//	    fil: tl
//
//	telemetry:
//	  logging:
//	    level: info
//	    format: text
//	  metrics:
//	    enabled: true
//	    textfile: /var/lib/node_exporter/cldr.prom
//	  tracing:
//	    enabled: false
//
// There is no package-level configuration instance. Commands load a Config
// and pass it to the components they build.
package config
