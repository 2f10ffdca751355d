package resources

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"lingo-hq/cldr/pkg/locale"
	"lingo-hq/cldr/pkg/yamlparse"
)

// Option configures a Loader.
type Option func(*Loader)

// WithCustomRoot enables override merging from dir, which mirrors the
// layout of the resource root. An empty dir disables overrides.
func WithCustomRoot(dir string) Option {
	return func(l *Loader) {
		l.customRoot = dir
	}
}

// WithFileSystem replaces the OS file system.
func WithFileSystem(fsys FileSystem) Option {
	return func(l *Loader) {
		if fsys != nil {
			l.fs = fsys
		}
	}
}

// WithParser replaces the structured parser. The parser is expected to
// symbolize mapping keys.
func WithParser(p yamlparse.Parser) Option {
	return func(l *Loader) {
		if p != nil {
			l.parser = p
		}
	}
}

// WithLocaleNormalizer replaces the locale normalizer.
func WithLocaleNormalizer(n locale.Normalizer) Option {
	return func(l *Loader) {
		if n != nil {
			l.normalizer = n
		}
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithMetrics sets the event recorder.
func WithMetrics(r Recorder) Option {
	return func(l *Loader) {
		if r != nil {
			l.metrics = r
		}
	}
}

// WithTracer sets the tracer used to wrap lookups in spans.
func WithTracer(t trace.Tracer) Option {
	return func(l *Loader) {
		if t != nil {
			l.tracer = t
		}
	}
}
