package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys use the "cldr.*" namespace.
const (
	// Resource attributes
	AttrResourcePath = "cldr.resource.path"
	AttrResourceKind = "cldr.resource.kind"

	// Cache attributes
	AttrCacheHit = "cldr.cache.hit"

	// Locale attributes
	AttrLocaleRaw       = "cldr.locale.raw"
	AttrLocaleCanonical = "cldr.locale.canonical"

	// Error attributes
	AttrErrorMessage = "error.message"
)

// ResourceAttributes returns the attributes identifying a resource lookup.
//
// Example:
//
//	tracer.Start(ctx, "resources.GetYAMLResource",
//	    trace.WithAttributes(ResourceAttributes("locales/en/numbers.yml", "yaml")...))
func ResourceAttributes(path, kind string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrResourcePath, path),
		attribute.String(AttrResourceKind, kind),
	}
}

// LocaleAttributes returns the attributes of a locale normalization.
func LocaleAttributes(raw, canonical string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrLocaleRaw, raw),
		attribute.String(AttrLocaleCanonical, canonical),
	}
}

// SetCacheHit records whether a lookup was answered from the cache.
func SetCacheHit(span trace.Span, hit bool) {
	span.SetAttributes(attribute.Bool(AttrCacheHit, hit))
}

// RecordError records err on the span and marks the span as failed.
// A nil err is ignored.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}

	span.SetAttributes(
		attribute.Bool("error", true),
		attribute.String(AttrErrorMessage, err.Error()),
	)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
