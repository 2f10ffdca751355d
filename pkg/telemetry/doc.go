// Package telemetry groups the observability packages used by cldr.
//
// # Components
//
//   - logging: log/slog setup with command, locale and trace fields
//   - metrics: Prometheus metrics for the resource loader
//   - tracing: OpenTelemetry spans around resource lookups
//
// Each is configured from the matching section of config.TelemetryConfig
// and wired into the resources Loader through its options.
package telemetry
