package resources

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"lingo-hq/cldr/pkg/data"
	"lingo-hq/cldr/pkg/locale"
	"lingo-hq/cldr/pkg/telemetry/tracing"
	"lingo-hq/cldr/pkg/yamlparse"
)

// TracerName is the instrumentation name used when no tracer is supplied.
const TracerName = "lingo-hq/cldr/resources"

// Loader resolves resource identifiers to files under a root directory,
// parses them, merges custom overrides and memoizes the result.
//
// A Loader owns its cache; two Loaders never share entries. All methods
// are safe for concurrent use.
type Loader struct {
	root       string
	customRoot string

	fs         FileSystem
	parser     yamlparse.Parser
	normalizer locale.Normalizer
	cache      *Cache

	logger  *slog.Logger
	metrics Recorder
	tracer  trace.Tracer
}

// New creates a Loader reading from root. Without options it reads the
// local disk, parses YAML with symbolized keys, normalizes locales with
// the CLDR alias table and performs no override merging.
func New(root string, opts ...Option) *Loader {
	l := &Loader{
		root:       root,
		fs:         OSFileSystem{},
		parser:     yamlparse.New(true),
		normalizer: locale.NewCLDRNormalizer(nil),
		cache:      NewCache(),
		logger:     slog.Default(),
		metrics:    noopRecorder{},
		tracer:     otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Root returns the resource root directory.
func (l *Loader) Root() string {
	return l.root
}

// CustomRoot returns the override directory, or "" when overrides are
// disabled.
func (l *Loader) CustomRoot() string {
	return l.customRoot
}

// GetYAMLResource returns the parsed resource at segments joined with "/"
// plus ".yml". The first successful lookup reads, parses and merges the
// file; later lookups return the same *Resource without touching the file
// system.
//
// A missing base file yields a *NotFoundError. Parser errors are returned
// unchanged.
func (l *Loader) GetYAMLResource(ctx context.Context, segments ...data.Segment) (*Resource, error) {
	path := ResolvePath(YAMLExt, segments...)
	return l.get(ctx, "resources.GetYAMLResource", KindYAML, path, l.loadYAML)
}

// GetLocaleResource canonicalizes locale and returns the resource at
// locales/<canonical>/<segments>.yml. Spellings of one locale share a
// cache entry.
func (l *Loader) GetLocaleResource(ctx context.Context, loc string, segments ...data.Segment) (*Resource, error) {
	canonical := l.normalizer.Normalize(loc)
	trace.SpanFromContext(ctx).AddEvent("locale normalized", trace.WithAttributes(
		tracing.LocaleAttributes(loc, string(canonical))...,
	))

	full := make([]data.Segment, 0, len(segments)+2)
	full = append(full, LocalesDir, canonical)
	full = append(full, segments...)
	return l.GetYAMLResource(ctx, full...)
}

// GetPlainResource returns the file at path as text. path is used
// verbatim, including its extension. The parser and override merge are
// never involved.
func (l *Loader) GetPlainResource(ctx context.Context, path string) (*Resource, error) {
	return l.get(ctx, "resources.GetPlainResource", KindPlain, path, l.loadPlain)
}

// get is the shared cache dispatch for every lookup.
func (l *Loader) get(ctx context.Context, spanName string, kind Kind, path string, load func(context.Context, string) (*Resource, error)) (*Resource, error) {
	ctx, span := l.tracer.Start(ctx, spanName, trace.WithAttributes(
		tracing.ResourceAttributes(path, string(kind))...,
	))
	defer span.End()

	res, hit, err := l.cache.GetOrLoad(path, func() (*Resource, error) {
		return load(ctx, path)
	})
	tracing.SetCacheHit(span, hit)
	if hit {
		l.metrics.RecordHit(string(kind))
		return res, nil
	}

	l.metrics.RecordMiss(string(kind))
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	l.metrics.UpdateSize(l.cache.Len())
	return res, nil
}

func (l *Loader) loadYAML(ctx context.Context, path string) (*Resource, error) {
	start := time.Now()
	value, err := l.loadYAMLValue(ctx, path)
	l.metrics.RecordLoad(string(KindYAML), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &Resource{Path: path, Kind: KindYAML, Value: value}, nil
}

func (l *Loader) loadYAMLValue(ctx context.Context, path string) (any, error) {
	raw, err := l.readBase(ctx, KindYAML, path)
	if err != nil {
		return nil, err
	}
	value, err := l.parser.Parse(raw)
	if err != nil {
		return nil, err
	}

	customRaw, ok, err := l.readCustom(ctx, path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return value, nil
	}

	custom, err := l.parser.Parse(customRaw)
	if err != nil {
		return nil, err
	}
	merged, didMerge := data.MergeShallow(value, custom)
	if !didMerge {
		l.logger.WarnContext(ctx, "custom resource ignored, both documents must be mappings",
			"path", path,
			"custom_root", l.customRoot,
		)
		return value, nil
	}

	l.metrics.RecordOverride()
	l.logger.DebugContext(ctx, "merged custom resource",
		"path", path,
		"custom_root", l.customRoot,
	)
	return merged, nil
}

func (l *Loader) loadPlain(ctx context.Context, path string) (*Resource, error) {
	start := time.Now()
	raw, err := l.readBase(ctx, KindPlain, path)
	l.metrics.RecordLoad(string(KindPlain), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &Resource{Path: path, Kind: KindPlain, Value: string(raw)}, nil
}

// readBase reads a base resource. Absence is a hard failure.
func (l *Loader) readBase(ctx context.Context, kind Kind, path string) ([]byte, error) {
	abs := l.AbsolutePath(path)
	if !l.fs.Exists(abs) {
		l.metrics.RecordNotFound(string(kind))
		l.logger.DebugContext(ctx, "resource not found",
			"path", path,
			"root", l.root,
		)
		return nil, &NotFoundError{Path: path}
	}

	raw, err := l.fs.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %q: %w", path, err)
	}

	l.logger.DebugContext(ctx, "loaded resource file",
		"path", path,
		"kind", string(kind),
		"bytes", len(raw),
	)
	return raw, nil
}

// readCustom reads the override for path. ok is false when overrides are
// disabled or no override file exists; neither case is an error.
func (l *Loader) readCustom(ctx context.Context, path string) (raw []byte, ok bool, err error) {
	if l.customRoot == "" {
		return nil, false, nil
	}

	abs := filepath.Join(l.customRoot, filepath.FromSlash(path))
	if !l.fs.Exists(abs) {
		return nil, false, nil
	}

	raw, err = l.fs.ReadFile(abs)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read custom resource %q: %w", path, err)
	}

	l.logger.DebugContext(ctx, "loaded custom resource file",
		"path", path,
		"bytes", len(raw),
	)
	return raw, true, nil
}

// AbsolutePath joins rel onto the resource root.
func (l *Loader) AbsolutePath(rel string) string {
	return filepath.Join(l.root, filepath.FromSlash(rel))
}

// ResourceExists reports whether the base file for segments exists. It
// does not load or cache anything.
func (l *Loader) ResourceExists(segments ...data.Segment) bool {
	return l.fs.Exists(l.AbsolutePath(ResolvePath(YAMLExt, segments...)))
}

// LocaleResourceExists reports whether the base file of a locale-scoped
// resource exists.
func (l *Loader) LocaleResourceExists(loc string, segments ...data.Segment) bool {
	full := append([]data.Segment{LocalesDir, l.normalizer.Normalize(loc)}, segments...)
	return l.ResourceExists(full...)
}

// ResourceLoaded reports whether the resource for segments is cached.
func (l *Loader) ResourceLoaded(segments ...data.Segment) bool {
	return l.cache.Contains(ResolvePath(YAMLExt, segments...))
}

// CachedPaths returns the sorted paths currently held in the cache.
func (l *Loader) CachedPaths() []string {
	return l.cache.Paths()
}

// ResourceTypesFor lists the resource names available for a locale, that
// is the ".yml" files directly under locales/<canonical>/ without their
// extension. A locale without a directory has no resource types.
func (l *Loader) ResourceTypesFor(loc string) ([]string, error) {
	dir := l.AbsolutePath(ResolvePath("", LocalesDir, l.normalizer.Normalize(loc)))
	entries, err := l.readDir(dir)
	if err != nil {
		return nil, err
	}

	types := make([]string, 0, len(entries))
	for _, name := range entries {
		if strings.HasSuffix(name, "/") || filepath.Ext(name) != YAMLExt {
			continue
		}
		types = append(types, strings.TrimSuffix(name, YAMLExt))
	}
	return types, nil
}

// AvailableLocales lists the locale directories under locales/.
func (l *Loader) AvailableLocales() ([]string, error) {
	entries, err := l.readDir(l.AbsolutePath(string(LocalesDir)))
	if err != nil {
		return nil, err
	}

	locales := make([]string, 0, len(entries))
	for _, name := range entries {
		if strings.HasSuffix(name, "/") {
			locales = append(locales, strings.TrimSuffix(name, "/"))
		}
	}
	return locales, nil
}

func (l *Loader) readDir(dir string) ([]string, error) {
	lister, ok := l.fs.(DirReader)
	if !ok {
		return nil, ErrListingUnsupported
	}
	entries, err := lister.ReadDir(dir)
	if err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %q: %w", dir, err)
	}
	return entries, nil
}

// PreloadLocale loads resource types for a locale into the cache. With no
// types it loads everything ResourceTypesFor reports. Every type is
// attempted; failures are joined.
func (l *Loader) PreloadLocale(ctx context.Context, loc string, types ...string) error {
	if len(types) == 0 {
		var err error
		types, err = l.ResourceTypesFor(loc)
		if err != nil {
			return err
		}
	}

	var errs []error
	for _, typ := range types {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if _, err := l.GetLocaleResource(ctx, loc, data.Text(typ)); err != nil {
			errs = append(errs, err)
		}
	}

	l.logger.DebugContext(ctx, "preloaded locale resources",
		"locale", loc,
		"types", len(types),
		"errors", len(errs),
	)
	return errors.Join(errs...)
}
