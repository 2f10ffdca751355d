// Package logging builds the structured logger used across cldr.
//
// # Overview
//
// The logging package configures Go's standard log/slog package:
//   - Structured logging with JSON, text, and console formats
//   - Configurable log levels (debug, info, warn, error)
//   - Context fields: the running command plus trace and span IDs of the
//     active OpenTelemetry span
//
// # Usage
//
//	logger, err := logging.New(logging.FromConfig(cfg.Telemetry.Logging, os.Stderr))
//	if err != nil {
//	    return err
//	}
//
//	ctx = logging.WithCommand(ctx, "get")
//	logger.InfoContext(ctx, "resource loaded", "path", "locales/en/numbers.yml")
//	// ... command=get path=locales/en/numbers.yml
package logging
