// Package tracing provides OpenTelemetry tracing for resource lookups.
//
// # Overview
//
// The resources Loader opens one span per lookup. Spans carry the resolved
// path, the resource kind and whether the lookup was served from the cache.
// Locale lookups add an event recording the raw and canonical locale.
//
// # Sampling Strategies
//
// Three sampling strategies are supported:
//   - always: Sample all traces (development/debugging)
//   - never: Sample no traces
//   - ratio: Sample a percentage of traces
//
// All samplers are wrapped in ParentBased so a caller's sampling decision
// wins over the configured one.
//
// # Usage
//
//	tracer, err := tracing.New(&cfg.Telemetry.Tracing)
//	if err != nil {
//	    return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	loader := resources.New(root, resources.WithTracer(tracer.Tracer()))
//
// When tracing is disabled New returns a Tracer backed by a noop provider.
// Tests use NewWithExporter with an in-memory exporter.
package tracing
